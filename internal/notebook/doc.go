// Package notebook keeps notebook documents' embedded kernelspec references
// in sync with the configured kernels. Kernel assignment is a pure path
// heuristic: the longest kernel name appearing as a substring of the
// notebook's relative path wins, with fixed fallbacks. Rewrites preserve the
// rest of the document and are skipped entirely when the reference already
// matches.
package notebook

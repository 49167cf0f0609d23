// Package platform isolates cross-platform quirks from the core registration
// path. On Windows, Microsoft Store Python installs live inside a restricted
// WindowsApps sandbox that the notebook tool cannot always read through the
// shared kernelspec location, so registrations are additionally mirrored into
// a project-local directory; this package provides that capability-gated
// post-write hook plus Unix-permission handling.
package platform

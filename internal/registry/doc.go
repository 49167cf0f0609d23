// Package registry publishes provisioned kernel environments as Jupyter
// kernelspecs. Each registration is a directory under the shared kernelspec
// root holding a kernel.json; the directory name is derived from the
// configured prefix, the kernel name, and an optional variant. The
// environment and its registration are independent filesystem resources
// linked only by this derived name.
package registry

// Package userdata resolves the ~/.bundlekit/ directory layout: the local
// bundle store, the repository cache and the credential set directory. Every
// location can be overridden through a BUNDLEKIT_* environment variable.
package userdata

// Package driver hands collected inputs to the external bundle tool. It
// builds duffle-compatible command lines for install, upgrade, uninstall and
// export and runs them, streaming and capturing their output.
package driver

// Package source describes where templates and tables come from and loads
// their bytes from disk or from an fs.FS.
package source

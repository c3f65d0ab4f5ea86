// Package orchestrator wires the template loader, table reader, sign filler
// and output writer into one sequential run: rows are processed in table
// order, each sign identifier may appear only once, and the first failure
// stops the run. Files already written stay on disk.
package orchestrator

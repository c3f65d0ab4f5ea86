// Package wayfinding fills SVG trail-sign templates with rows from a CSV
// table, writing one SVG per sign. The subpackages hold the pieces; this
// package re-exports the common entry points.
package wayfinding

import (
	"context"

	"github.com/goliatone/go-wayfinding/pkg/orchestrator"
	"github.com/goliatone/go-wayfinding/pkg/source"
)

// Request describes one generation run.
type Request = orchestrator.Request

// Report lists the signs handled by a run.
type Report = orchestrator.Report

// ErrDuplicateSignID is returned when a sign identifier repeats within a run.
var ErrDuplicateSignID = orchestrator.ErrDuplicateSignID

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// GenerateFiles fills the template at templatePath once per row of the CSV
// at tablePath, writing outputPrefix+SignID+".svg" for each row.
func GenerateFiles(ctx context.Context, templatePath, tablePath, outputPrefix string, options ...orchestrator.Option) (Report, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Template:     source.FromFile(templatePath),
		Table:        source.FromFile(tablePath),
		OutputPrefix: outputPrefix,
	})
}

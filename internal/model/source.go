// Package model defines the data structures shared by the alert migration
// engine, the file driver and the reporting layer.
package model

// Path represents a file system path.
type Path string

// SourceText is the full contents of one source file at a point in time.
// Transformations never mutate a SourceText; each one returns a new value.
type SourceText string

// TransformResult is what the rewrite engine returns for one file.
type TransformResult struct {
	Text SourceText
	// Changed is true iff Text differs byte-for-byte from the input text.
	Changed bool
}

// StepInfo describes a transformation step for display.
type StepInfo struct {
	Name   string
	Marker string // text whose presence means the step is already applied
}

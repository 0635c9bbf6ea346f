package flatten

import "fmt"

// Stage names the step of a flatten pass that failed.
type Stage string

const (
	// StageDecode covers reading and decoding the source file.
	StageDecode Stage = "decode"
	// StageComposite covers splitting, compositing, conversion and resampling.
	StageComposite Stage = "composite"
	// StageEncode covers PNG encoding and writing the output file.
	StageEncode Stage = "encode"
)

// Error is the single "processing failed" outcome of Flatten, tagged with
// the stage and path it happened at.
type Error struct {
	Stage Stage
	Path  string
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Stage, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error { return e.Err }

// Cause returns the underlying error for github.com/pkg/errors.Cause.
func (e *Error) Cause() error { return e.Err }

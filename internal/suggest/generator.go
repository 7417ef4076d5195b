// Package suggest implements the item-specifics pipeline: prompt the
// generative backend for candidate aspect values, score each candidate's
// confidence, attribute its provenance, and validate it against the
// aspect's declared constraints.
package suggest

import "context"

// GenerateOptions tune one call to the generative backend. Exactly one
// candidate is always requested.
type GenerateOptions struct {
	// Temperature controls randomness; the pipeline favors determinism.
	Temperature float32
	// StopAtNewline cuts generation at the first line break, used when a
	// single bare value is wanted.
	StopAtNewline bool
	// JSONResponse asks the backend for a structured JSON object.
	JSONResponse bool
}

// Generator is the generative text backend. Implementations own transport,
// authentication and retry concerns.
type Generator interface {
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error)
}

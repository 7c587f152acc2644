package domain

import "go.trai.ch/zerr"

var (
	// ErrUnknownAlgorithm is returned when the digest provider does not
	// support the requested algorithm name.
	ErrUnknownAlgorithm = zerr.New("unknown digest algorithm")

	// ErrNoInputs is returned when a hash invocation names no files.
	ErrNoInputs = zerr.New("no input files specified")
)

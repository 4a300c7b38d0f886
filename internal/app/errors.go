package app

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrPersonNotFound     = errors.New("person not found")
	ErrProgramNotFound    = errors.New("program not found")
	ErrSessionNotFound    = errors.New("session not found")
	ErrActionItemNotFound = errors.New("action item not found")
	ErrArtifactNotFound   = errors.New("artifact not found")
	ErrRiskNotFound       = errors.New("risk not found")
	ErrDocumentNotFound   = errors.New("document not found")

	// ErrGenerationInFlight rejects a second submission while a generation
	// for the same target record is still running.
	ErrGenerationInFlight = errors.New("a generation for this record is already in progress")

	// ErrTargetGone marks a completed generation whose target record was
	// deleted while the call was in flight; the result is discarded.
	ErrTargetGone = errors.New("generation target no longer exists")

	ErrDocumentEnqueue = errors.New("document enqueue failed")
)

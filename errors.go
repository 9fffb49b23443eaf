package gamewatch

import "errors"

var (
	// ErrInvalidConfig wraps every Config.Validate failure.
	ErrInvalidConfig = errors.New("invalid config")
	// ErrUnknownStorage is returned for a storage backend other than file, redis or memory.
	ErrUnknownStorage = errors.New("unknown storage backend")
	// ErrBuilderUsed is returned by a second Build on the same Builder.
	ErrBuilderUsed = errors.New("builder already used")
	// ErrAuditPath is returned when audit is enabled with neither a sink nor a path.
	ErrAuditPath = errors.New("audit enabled without sink or path")
)

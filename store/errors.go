package store

import "github.com/ottorg/jtravail/internal/apperr"

// ErrCorruptState wraps every condition that makes a state file unusable.
var ErrCorruptState = &apperr.Error{
	Message: "error while loading state file %s",
}

var (
	ErrParse = &apperr.Error{
		Message: "parse error",
	}

	ErrUnexpectedContent = &apperr.Error{
		Message: "unexpected content",
	}

	ErrUnknownStatus = &apperr.Error{
		Message: "unknown status %q",
	}

	ErrNoStartTime = &apperr.Error{
		Message: "no start time defined",
	}

	ErrInvalidStartTime = &apperr.Error{
		Message: "invalid start time %q",
	}

	ErrNoIteration = &apperr.Error{
		Message: "no iteration defined",
	}

	ErrInvalidIteration = &apperr.Error{
		Message: "invalid iteration format %q",
	}
)

package config

import "github.com/ottorg/jtravail/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file %s failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing config file %s failed",
	}

	errInvalidOption = &apperr.Error{
		Message: "%s must be a whole number of minutes, got %q",
	}

	errInvalidPeriodOption = &apperr.Error{
		Message: "long pause period must be a whole number, got %q",
	}

	errInvalidDuration = &apperr.Error{
		Message: "%s duration must be between %v and %v, got %v",
	}

	errInvalidLongPausePeriod = &apperr.Error{
		Message: "long pause period must be at least %d, got %d",
	}

	errInvalidFormat = &apperr.Error{
		Message: "invalid status format",
	}

	errInvalidPeriod = &apperr.Error{
		Message: "period must be one of: %s",
	}

	errInvalidDate = &apperr.Error{
		Message: "invalid %s date %q",
	}

	errInvalidRange = &apperr.Error{
		Message: "since date (%s) must be before until date (%s)",
	}
)

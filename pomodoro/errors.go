package pomodoro

import "github.com/ottorg/jtravail/internal/apperr"

var ErrInvalidPeriod = &apperr.Error{
	Message: "long pause period must be at least 1, got %d",
}

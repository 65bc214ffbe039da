package timer

import "github.com/ottorg/jtravail/internal/apperr"

var errNoSession = &apperr.Error{
	Message: "timer needs a session to display",
}

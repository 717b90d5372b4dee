package services

import (
	"errors"
	"fmt"
)

// ErrInvalidCredentials is returned for any authentication failure. Unknown
// email and wrong password are deliberately indistinguishable to the caller.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ValidationError reports user input that failed a precondition. Each
// validation step produces a distinct field/message pair so the user sees a
// specific reason for the rejection.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// AsValidationError unwraps err into a *ValidationError if it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

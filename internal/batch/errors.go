package batch

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-jmap-sync/models"
)

var (
	// ErrMethodResponseNotFound is returned for an invocation the server did
	// not answer.
	ErrMethodResponseNotFound = errors.New("method response not found")
	// ErrMethodError matches every *MethodError via errors.Is.
	ErrMethodError = errors.New("method error")
	// ErrUnexpectedMethod is returned when the main response of an invocation
	// carries a different method name than the invocation.
	ErrUnexpectedMethod = errors.New("unexpected method response")
	// ErrDecodingResult is returned when a method result does not decode into
	// the requested type.
	ErrDecodingResult = errors.New("cannot decode method result")
)

// MethodError is a server-declared failure of one invocation. Further
// responses that shared its correlation id are kept in Additional.
type MethodError struct {
	Type        string
	Description string
	Additional  []models.ResponseInvocation
}

func (e *MethodError) Error() string {
	if e.Description == "" {
		return fmt.Sprintf("method error: %s", e.Type)
	}
	return fmt.Sprintf("method error: %s: %s", e.Type, e.Description)
}

func (e *MethodError) Is(target error) bool {
	return target == ErrMethodError
}

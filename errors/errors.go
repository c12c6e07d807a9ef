package errors

import "fmt"

const (
	stBadParameterErrorMsg         = "Bad value for parameter '%s': '%v'"
	stBadParameterErrorExpectedMsg = "Bad value for parameter '%s': '%v' (expected: '%v')"
	stNotFoundErrorMsg             = "%s with name '%s' not found"
)

type simpleError struct {
	message string
}

func (err simpleError) Error() string {
	return err.message
}

// InternalError means that the operation failed for some internal,
// unexpected reason, e.g. a post-save notification arriving without a
// matching pre-save snapshot. It signals a programming or integration
// defect, not a recoverable runtime condition.
type InternalError struct {
	simpleError
}

// NewInternalError returns the custom defined error of type InternalError.
func NewInternalError(msg string) InternalError {
	return InternalError{simpleError{msg}}
}

// BadParameterError means that a parameter was not as required, e.g. a
// receiver was registered for a field name that does not exist on the
// model or for a field kind that is not supported.
type BadParameterError struct {
	parameter        string
	value            interface{}
	expectedValue    interface{}
	hasExpectedValue bool
}

// Error implements the error interface
func (err BadParameterError) Error() string {
	if err.hasExpectedValue {
		return fmt.Sprintf(stBadParameterErrorExpectedMsg, err.parameter, err.value, err.expectedValue)
	}
	return fmt.Sprintf(stBadParameterErrorMsg, err.parameter, err.value)
}

// Expected sets the optional expectedValue parameter on the BadParameterError
func (err BadParameterError) Expected(expected interface{}) BadParameterError {
	err.expectedValue = expected
	err.hasExpectedValue = true
	return err
}

// NewBadParameterError returns the custom defined error of type BadParameterError.
func NewBadParameterError(param string, actual interface{}) BadParameterError {
	return BadParameterError{parameter: param, value: actual}
}

// NotFoundError means the object specified for the operation does not exist
type NotFoundError struct {
	entity string
	Name   string
}

func (err NotFoundError) Error() string {
	return fmt.Sprintf(stNotFoundErrorMsg, err.entity, err.Name)
}

// NewNotFoundError returns the custom defined error of type NotFoundError.
func NewNotFoundError(entity string, name string) NotFoundError {
	return NotFoundError{entity: entity, Name: name}
}

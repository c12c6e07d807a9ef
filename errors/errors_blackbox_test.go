package errors_test

import (
	"testing"

	"github.com/fabric8-services/fabric8-fieldsignals/errors"
	"github.com/fabric8-services/fabric8-fieldsignals/resource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBadParameterError(t *testing.T) {
	t.Parallel()
	resource.Require(t, resource.UnitTest)

	param := "fields"
	value := "Assignees"
	err := errors.NewBadParameterError(param, value)
	assert.Equal(t, "Bad value for parameter 'fields': 'Assignees'", err.Error())

	expected := "a non-relation field"
	err = err.Expected(expected)
	assert.Equal(t, "Bad value for parameter 'fields': 'Assignees' (expected: 'a non-relation field')", err.Error())
}

func TestNewInternalError(t *testing.T) {
	t.Parallel()
	resource.Require(t, resource.UnitTest)

	err := errors.NewInternalError("system disk could not be read")
	require.Equal(t, "system disk could not be read", err.Error())
}

func TestNewNotFoundError(t *testing.T) {
	t.Parallel()
	resource.Require(t, resource.UnitTest)

	err := errors.NewNotFoundError("field", "Title")
	assert.Equal(t, "field with name 'Title' not found", err.Error())
}

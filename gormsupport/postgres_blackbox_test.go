package gormsupport_test

import (
	"testing"

	"github.com/fabric8-services/fabric8-fieldsignals/gormsupport"
	"github.com/fabric8-services/fabric8-fieldsignals/resource"
	"github.com/lib/pq"
	errs "github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestIsCheckViolation(t *testing.T) {
	t.Parallel()
	resource.Require(t, resource.UnitTest)

	constraintName := "my_check_constraint"

	t.Run("nil error", func(t *testing.T) {
		t.Parallel()
		require.False(t, gormsupport.IsCheckViolation(nil, constraintName))
	})
	t.Run("not a pq error", func(t *testing.T) {
		t.Parallel()
		require.False(t, gormsupport.IsCheckViolation(errs.New("foo"), constraintName))
	})
	t.Run("matching violation", func(t *testing.T) {
		t.Parallel()
		err := &pq.Error{Code: "23514", Constraint: constraintName}
		require.True(t, gormsupport.IsCheckViolation(err, constraintName))
	})
	t.Run("wrong constraint", func(t *testing.T) {
		t.Parallel()
		err := &pq.Error{Code: "23514", Constraint: "other_constraint"}
		require.False(t, gormsupport.IsCheckViolation(err, constraintName))
	})
}

func TestIsUniqueViolation(t *testing.T) {
	t.Parallel()
	resource.Require(t, resource.UnitTest)

	indexName := "my_unique_index"

	t.Run("nil error", func(t *testing.T) {
		t.Parallel()
		require.False(t, gormsupport.IsUniqueViolation(nil, indexName))
	})
	t.Run("not a pq error", func(t *testing.T) {
		t.Parallel()
		require.False(t, gormsupport.IsUniqueViolation(errs.New("foo"), indexName))
	})
	t.Run("matching violation", func(t *testing.T) {
		t.Parallel()
		err := &pq.Error{Code: "23505", Constraint: indexName}
		require.True(t, gormsupport.IsUniqueViolation(err, indexName))
	})
	t.Run("wrong index", func(t *testing.T) {
		t.Parallel()
		err := &pq.Error{Code: "23505", Constraint: "other_index"}
		require.False(t, gormsupport.IsUniqueViolation(err, indexName))
	})
}

func TestIsForeignKeyViolation(t *testing.T) {
	t.Parallel()
	resource.Require(t, resource.UnitTest)

	indexName := "my_fk_index"

	t.Run("matching violation", func(t *testing.T) {
		t.Parallel()
		err := &pq.Error{Code: "23503", Constraint: indexName}
		require.True(t, gormsupport.IsForeignKeyViolation(err, indexName))
	})
	t.Run("nil error", func(t *testing.T) {
		t.Parallel()
		require.False(t, gormsupport.IsForeignKeyViolation(nil, indexName))
	})
}

func TestIsInvalidCatalogName(t *testing.T) {
	t.Parallel()
	resource.Require(t, resource.UnitTest)

	t.Run("matching error", func(t *testing.T) {
		t.Parallel()
		err := &pq.Error{Code: "3D000"}
		require.True(t, gormsupport.IsInvalidCatalogName(err))
	})
	t.Run("other pq error", func(t *testing.T) {
		t.Parallel()
		err := &pq.Error{Code: "23505"}
		require.False(t, gormsupport.IsInvalidCatalogName(err))
	})
}

package ptr_test

import (
	"testing"
	"time"

	"github.com/fabric8-services/fabric8-fieldsignals/ptr"
	"github.com/fabric8-services/fabric8-fieldsignals/resource"
	uuid "github.com/satori/go.uuid"
	"github.com/stretchr/testify/require"
)

func TestPtr(t *testing.T) {
	t.Parallel()
	resource.Require(t, resource.UnitTest)

	t.Run("string", func(t *testing.T) {
		p := ptr.String("foo")
		require.NotNil(t, p)
		require.Equal(t, "foo", *p)
	})
	t.Run("bool", func(t *testing.T) {
		p := ptr.Bool(true)
		require.NotNil(t, p)
		require.True(t, *p)
	})
	t.Run("int", func(t *testing.T) {
		p := ptr.Int(42)
		require.NotNil(t, p)
		require.Equal(t, 42, *p)
	})
	t.Run("int64", func(t *testing.T) {
		p := ptr.Int64(42)
		require.NotNil(t, p)
		require.Equal(t, int64(42), *p)
	})
	t.Run("float64", func(t *testing.T) {
		p := ptr.Float64(1.5)
		require.NotNil(t, p)
		require.Equal(t, 1.5, *p)
	})
	t.Run("time", func(t *testing.T) {
		now := time.Now()
		p := ptr.Time(now)
		require.NotNil(t, p)
		require.True(t, now.Equal(*p))
	})
	t.Run("uuid", func(t *testing.T) {
		id := uuid.NewV4()
		p := ptr.UUID(id)
		require.NotNil(t, p)
		require.Equal(t, id, *p)
	})
	t.Run("interface", func(t *testing.T) {
		p := ptr.Interface("foo")
		require.NotNil(t, p)
		require.Equal(t, "foo", *p)
	})
}

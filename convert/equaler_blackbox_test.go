package convert_test

import (
	"testing"
	"time"

	"github.com/fabric8-services/fabric8-fieldsignals/convert"
	"github.com/fabric8-services/fabric8-fieldsignals/resource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// foo implements the Equaler interface
type foo struct{}

// Ensure foo implements the Equaler interface
var _ convert.Equaler = foo{}
var _ convert.Equaler = (*foo)(nil)

func (f foo) Equal(u convert.Equaler) bool {
	_, ok := u.(foo)
	return ok
}

func (f foo) EqualValue(u convert.Equaler) bool {
	_, ok := u.(foo)
	return ok
}

func Test_Equal(t *testing.T) {
	t.Parallel()
	resource.Require(t, resource.UnitTest)

	a := convert.DummyEqualer{}
	b := convert.DummyEqualer{}

	// Test for type difference
	assert.False(t, a.Equal(foo{}))

	// Test for equality
	assert.True(t, a.Equal(b))
}

func Test_EqualValue(t *testing.T) {
	t.Parallel()
	resource.Require(t, resource.UnitTest)

	a := convert.DummyEqualer{}
	b := convert.DummyEqualer{}

	// Test for type difference
	assert.False(t, a.EqualValue(foo{}))

	// Test for equality
	assert.True(t, a.EqualValue(b))
}

// field is a named attribute with a timestamp that EqualValue ignores.
type field struct {
	Name      string
	TrackedAt time.Time // Will be ignored by EqualValue
}

// model embeds a field and adds its own meta timestamp.
type model struct {
	field
	Kind      string
	UpdatedAt time.Time // Will be ignored by EqualValue
}

func (f field) Equal(u convert.Equaler) bool {
	other, ok := u.(field)
	if !ok {
		return false
	}
	if f.Name != other.Name {
		return false
	}
	if f.TrackedAt != other.TrackedAt {
		return false
	}
	return true
}

func (f field) EqualValue(u convert.Equaler) bool {
	other, ok := u.(field)
	if !ok {
		return false
	}
	f.TrackedAt = other.TrackedAt
	return f.Equal(other)
}

func (m model) Equal(u convert.Equaler) bool {
	other, ok := u.(model)
	if !ok {
		return false
	}
	if m.Kind != other.Kind {
		return false
	}
	if m.UpdatedAt != other.UpdatedAt {
		return false
	}
	// cascade into the embedded struct with whatever equality the
	// outermost caller asked for
	return convert.CascadeEqual(m.field, other.field)
}

func (m model) EqualValue(u convert.Equaler) bool {
	other, ok := u.(model)
	if !ok {
		return false
	}
	m.UpdatedAt = other.UpdatedAt
	return m.Equal(other)
}

func Test_CascadeEqual(t *testing.T) {
	now := time.Now()
	nowPlus := now.Add(time.Hour * 10)

	f1 := field{Name: "Title", TrackedAt: now}
	// Change time on top-level
	f2 := field{Name: "Title", TrackedAt: nowPlus}
	m1 := model{field: f1, Kind: "string", UpdatedAt: now}
	// Change time on top-level
	m2 := model{field: f1, Kind: "string", UpdatedAt: nowPlus}
	// Change time on lower-level embedded struct
	m3 := model{field: f2, Kind: "string", UpdatedAt: now}

	t.Run("equality with itself", func(t *testing.T) {
		require.True(t, f1.Equal(f1))
		require.True(t, f1.EqualValue(f1))
		require.True(t, convert.CascadeEqual(f1, f1))

		require.True(t, m1.Equal(m1))
		require.True(t, m1.EqualValue(m1))
		require.True(t, convert.CascadeEqual(m1, m1))
	})

	t.Run("change on top-level", func(t *testing.T) {
		require.False(t, m1.Equal(m2))
		require.True(t, m1.EqualValue(m2))
		require.False(t, convert.CascadeEqual(m1, m2))
	})

	t.Run("change on lower-level embedded struct", func(t *testing.T) {
		require.False(t, m1.Equal(m3))
		require.True(t, m1.EqualValue(m3))
		require.False(t, convert.CascadeEqual(m1, m3))
	})
}

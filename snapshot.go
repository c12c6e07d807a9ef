package fieldsignals

import (
	"reflect"
	"time"

	"github.com/fabric8-services/fabric8-fieldsignals/change"
	"github.com/fabric8-services/fabric8-fieldsignals/convert"
	"github.com/jinzhu/gorm"
)

// snapshot maps a tracked field name to the value it had when the save
// operation began. A snapshot belongs to exactly one in-flight save; it
// is stored on the operation's scope and dies with it.
type snapshot map[string]interface{}

// takeSnapshot captures the current values of all tracked fields of the
// instance behind the given scope.
func takeSnapshot(scope *gorm.Scope, tracked map[string]struct{}) snapshot {
	snap := snapshot{}
	for _, field := range scope.Fields() {
		if _, ok := tracked[field.Name]; !ok {
			continue
		}
		snap[field.Name] = copyValue(field.Field.Interface())
	}
	return snap
}

// changeSet computes the diff of the snapshot against the instance's
// current values, in schema declaration order. Only fields present in
// the snapshot are considered.
func changeSet(scope *gorm.Scope, snap snapshot) change.Set {
	set := change.Set{}
	for _, field := range scope.Fields() {
		oldValue, ok := snap[field.Name]
		if !ok {
			continue
		}
		newValue := field.Field.Interface()
		if valuesEqual(oldValue, newValue) {
			continue
		}
		set = append(set, change.Change{
			AttributeName: field.Name,
			OldValue:      oldValue,
			NewValue:      copyValue(newValue),
		})
	}
	return set
}

// valuesEqual compares two field values. Values implementing
// convert.Equaler are compared with their own equality, time.Time with
// time.Time.Equal, everything else with reflect.DeepEqual.
func valuesEqual(a, b interface{}) bool {
	if a == nil && b == nil {
		return true
	}
	if ea, ok := a.(convert.Equaler); ok && !isNilPointer(a) {
		if eb, ok := b.(convert.Equaler); ok && !isNilPointer(b) {
			return ea.Equal(eb)
		}
	}
	if ta, ok := a.(time.Time); ok {
		if tb, ok := b.(time.Time); ok {
			return ta.Equal(tb)
		}
		return false
	}
	return reflect.DeepEqual(a, b)
}

func isNilPointer(v interface{}) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Ptr && rv.IsNil()
}

// copyValue returns a value that will not alias mutable state of the
// given one: slices, maps and pointers are copied recursively, all
// other kinds already have value semantics when passed around as
// interface{}. Without the copy a later in-place mutation of the
// instance would rewrite the snapshot as well and make the change
// undetectable.
func copyValue(v interface{}) interface{} {
	if v == nil {
		return nil
	}
	return deepCopy(reflect.ValueOf(v)).Interface()
}

func deepCopy(v reflect.Value) reflect.Value {
	switch v.Kind() {
	case reflect.Slice:
		if v.IsNil() {
			return v
		}
		c := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		for i := 0; i < v.Len(); i++ {
			c.Index(i).Set(deepCopy(v.Index(i)))
		}
		return c
	case reflect.Map:
		if v.IsNil() {
			return v
		}
		c := reflect.MakeMap(v.Type())
		for _, k := range v.MapKeys() {
			c.SetMapIndex(k, deepCopy(v.MapIndex(k)))
		}
		return c
	case reflect.Ptr:
		if v.IsNil() {
			return v
		}
		c := reflect.New(v.Type().Elem())
		c.Elem().Set(deepCopy(v.Elem()))
		return c
	default:
		return v
	}
}

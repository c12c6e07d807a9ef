package change

// Change holds the name of a single attribute of an entity together
// with its value before and after a save operation.
type Change struct {
	AttributeName string
	OldValue      interface{}
	NewValue      interface{}
}

// Set is a set of changes to an entity, ordered by the entity's
// declared attribute order. A Set is constructed once per save
// operation and is never modified afterwards.
type Set []Change

// IsEmpty returns true if no attribute changed.
func (s Set) IsEmpty() bool {
	return len(s) == 0
}

// Contains returns true if the set contains a change for the given
// attribute name.
func (s Set) Contains(attributeName string) bool {
	_, ok := s.Find(attributeName)
	return ok
}

// Find returns the change for the given attribute name if the set
// contains one.
func (s Set) Find(attributeName string) (Change, bool) {
	for _, c := range s {
		if c.AttributeName == attributeName {
			return c, true
		}
	}
	return Change{}, false
}

// Filter returns a new set containing only the changes whose attribute
// name is in the given list. The receiver is left untouched.
func (s Set) Filter(attributeNames []string) Set {
	names := map[string]struct{}{}
	for _, name := range attributeNames {
		names[name] = struct{}{}
	}
	res := Set{}
	for _, c := range s {
		if _, ok := names[c.AttributeName]; ok {
			res = append(res, c)
		}
	}
	return res
}

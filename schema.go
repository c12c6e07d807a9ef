package fieldsignals

import (
	"github.com/fabric8-services/fabric8-fieldsignals/errors"
	"github.com/jinzhu/gorm"
)

// GORM relationship kinds that hold collections. Tracking those is not
// supported: a structural diff of a collection is not a field-level
// change.
const (
	relationKindHasMany    = "has_many"
	relationKindManyToMany = "many_to_many"
)

// resolveFields validates the given field names against the model's
// GORM schema and returns the resolved names in schema declaration
// order. A nil fieldNames selects every supported field, that is every
// plain column of the model; reference-valued relations (belongs_to,
// has_one) are only tracked when named explicitly.
func (r *Registry) resolveFields(model interface{}, fieldNames []string) ([]string, error) {
	structFields := r.db.NewScope(model).GetStructFields()

	byName := map[string]*gorm.StructField{}
	order := make([]string, 0, len(structFields))
	for _, f := range structFields {
		byName[f.Name] = f
		order = append(order, f.Name)
	}

	selected := map[string]struct{}{}
	if fieldNames == nil {
		for _, f := range structFields {
			if f.IsIgnored || f.Relationship != nil || !f.IsNormal {
				continue
			}
			selected[f.Name] = struct{}{}
		}
	} else {
		for _, name := range fieldNames {
			f, ok := byName[name]
			if !ok {
				return nil, errors.NewNotFoundError("field", name)
			}
			if f.IsIgnored {
				return nil, errors.NewBadParameterError("fields", name).Expected("a field that is not ignored by the schema")
			}
			if f.Relationship != nil {
				switch f.Relationship.Kind {
				case relationKindHasMany, relationKindManyToMany:
					return nil, errors.NewBadParameterError("fields", name).Expected("a non-collection field")
				}
			}
			selected[f.Name] = struct{}{}
		}
	}

	if len(selected) == 0 {
		return nil, errors.NewBadParameterError("fields", fieldNames).Expected("a non-empty set of trackable fields")
	}

	// schema declaration order, not the order the caller used
	res := make([]string, 0, len(selected))
	for _, name := range order {
		if _, ok := selected[name]; ok {
			res = append(res, name)
		}
	}
	return res, nil
}

// Package fieldsignals emits field-level change notifications on top of
// GORM's create and update callback chains.
//
// A receiver can be registered for a model type and an optional subset
// of its fields. Two dispatch points exist for every save operation:
//
//   - pre-save-changed: fires before the SQL write, with the diff of
//     the values captured at the beginning of the save against the
//     current in-memory values. It fires even when nothing changed.
//   - post-save-changed: fires after the SQL write succeeded, with the
//     diff of the captured values against the values the persistence
//     call left behind (auto-assigned timestamps, version bumps). It
//     fires only when at least one tracked field changed and never for
//     first-time creations.
//
// Usage:
//
//	registry := fieldsignals.New(db)
//	err := registry.PostSaveChanged(&Task{}, []string{"Title", "State"},
//		func(model interface{}, changes change.Set, created bool) error {
//			if c, ok := changes.Find("State"); ok {
//				fmt.Printf("state went from %v to %v\n", c.OldValue, c.NewValue)
//			}
//			return nil
//		})
//
// Registration validates the field names against the model's schema and
// fails immediately for unknown fields and for collection-valued
// relations (has_many, many_to_many). An error returned by a receiver
// fails the surrounding save operation.
package fieldsignals

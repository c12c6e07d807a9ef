package fieldsignals

import (
	"reflect"

	"github.com/fabric8-services/fabric8-fieldsignals/errors"
	"github.com/fabric8-services/fabric8-fieldsignals/log"
	"github.com/jinzhu/gorm"
)

const (
	callbackNameSnapshot = "fieldsignals:snapshot"
	callbackNamePreSave  = "fieldsignals:pre_save_changed"
	callbackNamePostSave = "fieldsignals:post_save_changed"

	// key under which the snapshot is stored on the scope. GORM's
	// InstanceSet suffixes it with the scope's per-operation instance
	// ID, so concurrent in-flight saves cannot see each other's
	// snapshot, not even for the same model instance.
	snapshotKey = "fieldsignals:originals"
)

// scopeModelType returns the struct type of the instance being saved,
// or false for operations this dispatcher does not handle (e.g. batch
// updates without a model instance).
func scopeModelType(scope *gorm.Scope) (reflect.Type, bool) {
	if scope.IndirectValue().Kind() != reflect.Struct {
		return nil, false
	}
	return modelType(scope.Value)
}

// captureSnapshotCallback runs first in both the create and the update
// callback chain and captures the values of all tracked fields.
func (r *Registry) captureSnapshotCallback(scope *gorm.Scope) {
	if scope.HasError() {
		return
	}
	typ, ok := scopeModelType(scope)
	if !ok || !r.hasRegistrations(typ) {
		return
	}
	scope.InstanceSet(snapshotKey, takeSnapshot(scope, r.trackedFields(typ)))
}

func (r *Registry) preSaveCreateCallback(scope *gorm.Scope) {
	r.dispatchPreSave(scope, true)
}

func (r *Registry) preSaveUpdateCallback(scope *gorm.Scope) {
	r.dispatchPreSave(scope, false)
}

// dispatchPreSave fires the pre-save-changed receivers with the diff of
// the snapshot against the instance's current in-memory values. It runs
// after the model's own before hooks but before GORM assigns auto-now
// timestamps, so the values it observes are the pre-persistence ones.
// Pre-save-changed receivers fire even when the change set is empty.
func (r *Registry) dispatchPreSave(scope *gorm.Scope, created bool) {
	if scope.HasError() {
		return
	}
	typ, ok := scopeModelType(scope)
	if !ok {
		return
	}
	regs := r.lookup(typ, preSaveChanged)
	if len(regs) == 0 {
		return
	}
	snap, err := r.snapshotFromScope(scope)
	if err != nil {
		_ = scope.Err(err)
		return
	}
	set := changeSet(scope, snap)
	log.Debug(nil, map[string]interface{}{
		"model":   typ.String(),
		"changes": len(set),
		"created": created,
	}, "dispatching pre-save-changed")
	for _, reg := range regs {
		if err := reg.receiver(scope.Value, set.Filter(reg.fields), created); err != nil {
			_ = scope.Err(err)
			return
		}
	}
}

// postSaveCallback fires the post-save-changed receivers after the
// update statement was executed. It is only registered on the update
// chain: a first-time creation has no previous record to diff against,
// so creation saves never produce post-save-changed notifications.
func (r *Registry) postSaveCallback(scope *gorm.Scope) {
	if scope.HasError() {
		return
	}
	typ, ok := scopeModelType(scope)
	if !ok {
		return
	}
	regs := r.lookup(typ, postSaveChanged)
	if len(regs) == 0 {
		return
	}
	snap, err := r.snapshotFromScope(scope)
	if err != nil {
		_ = scope.Err(err)
		return
	}
	set := changeSet(scope, snap)
	if set.IsEmpty() {
		return
	}
	log.Debug(nil, map[string]interface{}{
		"model":   typ.String(),
		"changes": len(set),
	}, "dispatching post-save-changed")
	for _, reg := range regs {
		subset := set.Filter(reg.fields)
		if subset.IsEmpty() {
			continue
		}
		if err := reg.receiver(scope.Value, subset, false); err != nil {
			_ = scope.Err(err)
			return
		}
	}
}

// snapshotFromScope retrieves the snapshot captured at the beginning of
// the save and verifies that it covers every field tracked right now. A
// missing snapshot (or a tracked field that was not captured) means a
// receiver was registered while the save was already in flight; that is
// a defect in the registration timing of the caller and must not
// silently pass as an empty change set.
func (r *Registry) snapshotFromScope(scope *gorm.Scope) (snapshot, error) {
	typ, _ := scopeModelType(scope)

	value, ok := scope.InstanceGet(snapshotKey)
	if !ok {
		return nil, errors.NewInternalError("no field snapshot found for model " + typ.String() +
			": receivers must not be registered while a save is in flight")
	}
	snap, ok := value.(snapshot)
	if !ok {
		return nil, errors.NewInternalError("field snapshot for model " + typ.String() + " has unexpected type")
	}
	for name := range r.trackedFields(typ) {
		if _, ok := snap[name]; !ok {
			return nil, errors.NewInternalError("field " + name + " of model " + typ.String() +
				" is tracked but missing from the snapshot: receivers must not be registered while a save is in flight")
		}
	}
	return snap, nil
}

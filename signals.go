package fieldsignals

import (
	"reflect"
	"sync"

	"github.com/fabric8-services/fabric8-fieldsignals/change"
	"github.com/fabric8-services/fabric8-fieldsignals/errors"
	"github.com/fabric8-services/fabric8-fieldsignals/log"
	"github.com/jinzhu/gorm"
)

// A ReceiverFunc is called when tracked fields of a model have changed
// across a save operation. The model parameter is the instance that was
// saved (in whatever form it was handed to GORM, usually a pointer),
// changes holds one entry per changed field, and created tells whether
// the save was a first-time creation. Post-save-changed receivers never
// see created == true because creation saves are suppressed: there is
// no previous record to diff against.
//
// An error returned by a receiver fails (and rolls back) the save
// operation it was called from. Errors are propagated untouched, never
// retried and never logged by the dispatcher.
type ReceiverFunc func(model interface{}, changes change.Set, created bool) error

// signal distinguishes the two dispatch points of a save operation.
type signal int

const (
	preSaveChanged signal = iota
	postSaveChanged
)

func (s signal) String() string {
	if s == preSaveChanged {
		return "pre-save-changed"
	}
	return "post-save-changed"
}

// registration is one receiver bound to a signal and a resolved set of
// fields of one model type. The field slice preserves the schema
// declaration order.
type registration struct {
	signal     signal
	fields     []string
	fieldSet   map[string]struct{}
	receiver   ReceiverFunc
	receiverID uintptr
}

// Registry holds the change receivers for one *gorm.DB. Registrations
// are meant to happen once during application startup, after the models
// are known; the callbacks installed by New read the registry on every
// save.
type Registry struct {
	db *gorm.DB

	mu            sync.RWMutex
	registrations map[reflect.Type][]*registration
}

// New creates a Registry and installs its callbacks into the given
// database handle's create and update callback chains. Call it once per
// *gorm.DB.
func New(db *gorm.DB) *Registry {
	r := &Registry{
		db:            db,
		registrations: map[reflect.Type][]*registration{},
	}

	// The snapshot is taken at the very beginning of the callback
	// chain, before any model hook had a chance to touch the instance.
	// The pre-save-changed dispatch sits after the model's own before
	// hooks but before GORM assigns the auto-now timestamps, so those
	// assignments are only visible to post-save-changed receivers.
	db.Callback().Create().Before("gorm:begin_transaction").Register(callbackNameSnapshot, r.captureSnapshotCallback)
	db.Callback().Create().Before("gorm:update_time_stamp").Register(callbackNamePreSave, r.preSaveCreateCallback)
	// on the update chain the snapshot has to happen before GORM
	// assigns explicit update attributes into the model, so that
	// db.Model(x).Update(...) calls show up as changes too
	db.Callback().Update().Before("gorm:assign_updating_attributes").Register(callbackNameSnapshot, r.captureSnapshotCallback)
	db.Callback().Update().Before("gorm:update_time_stamp").Register(callbackNamePreSave, r.preSaveUpdateCallback)
	db.Callback().Update().After("gorm:after_update").Register(callbackNamePostSave, r.postSaveCallback)

	return r
}

// PreSaveChanged registers a receiver that fires before every save of
// the given model type, carrying the changes made to the instance since
// the save began (typically by the model's own before hooks). It fires
// unconditionally, even with an empty change set. fieldNames restricts
// the tracked fields; nil means all supported fields of the model.
func (r *Registry) PreSaveChanged(model interface{}, fieldNames []string, receiver ReceiverFunc) error {
	return r.register(preSaveChanged, model, fieldNames, receiver)
}

// PostSaveChanged registers a receiver that fires after a save of the
// given model type persisted a new value for at least one of the
// tracked fields. It does not fire when nothing changed and it does not
// fire for first-time creations. fieldNames restricts the tracked
// fields; nil means all supported fields of the model.
func (r *Registry) PostSaveChanged(model interface{}, fieldNames []string, receiver ReceiverFunc) error {
	return r.register(postSaveChanged, model, fieldNames, receiver)
}

func (r *Registry) register(sig signal, model interface{}, fieldNames []string, receiver ReceiverFunc) error {
	if receiver == nil {
		return errors.NewBadParameterError("receiver", receiver).Expected("a non-nil receiver function")
	}
	typ, ok := modelType(model)
	if !ok {
		return errors.NewBadParameterError("model", model).Expected("a struct or a pointer to a struct")
	}

	fields, err := r.resolveFields(model, fieldNames)
	if err != nil {
		return err
	}

	reg := &registration{
		signal:     sig,
		fields:     fields,
		fieldSet:   map[string]struct{}{},
		receiver:   receiver,
		receiverID: reflect.ValueOf(receiver).Pointer(),
	}
	for _, f := range fields {
		reg.fieldSet[f] = struct{}{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// registering the same receiver for the same signal, model and
	// field set twice is a no-op
	for _, existing := range r.registrations[typ] {
		if existing.signal == sig && existing.receiverID == reg.receiverID && sameFields(existing.fields, reg.fields) {
			return nil
		}
	}
	r.registrations[typ] = append(r.registrations[typ], reg)

	log.Debug(nil, map[string]interface{}{
		"model":  typ.String(),
		"signal": sig.String(),
		"fields": fields,
	}, "registered field change receiver")

	return nil
}

// lookup returns the registrations for the given model type, optionally
// restricted to one signal. The returned slice preserves registration
// order and must not be modified.
func (r *Registry) lookup(typ reflect.Type, sig signal) []*registration {
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := r.registrations[typ]
	res := make([]*registration, 0, len(all))
	for _, reg := range all {
		if reg.signal == sig {
			res = append(res, reg)
		}
	}
	return res
}

// hasRegistrations returns true if any receiver is registered for the
// given model type.
func (r *Registry) hasRegistrations(typ reflect.Type) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.registrations[typ]) > 0
}

// trackedFields returns the union of all tracked field names for the
// given model type.
func (r *Registry) trackedFields(typ reflect.Type) map[string]struct{} {
	r.mu.RLock()
	defer r.mu.RUnlock()
	union := map[string]struct{}{}
	for _, reg := range r.registrations[typ] {
		for f := range reg.fieldSet {
			union[f] = struct{}{}
		}
	}
	return union
}

// modelType returns the struct type behind the given model value,
// unwrapping any levels of pointer indirection.
func modelType(model interface{}) (reflect.Type, bool) {
	if model == nil {
		return nil, false
	}
	t := reflect.TypeOf(model)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, false
	}
	return t, true
}

func sameFields(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

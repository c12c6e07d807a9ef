package ptr

import (
	"time"

	uuid "github.com/satori/go.uuid"
)

// Interface returns the pointer to the given interface.
func Interface(o interface{}) *interface{} { return &o }

// String returns the pointer to the given string.
func String(o string) *string { return &o }

// Bool returns the pointer to the given bool.
func Bool(o bool) *bool { return &o }

// Time returns the pointer to the given time.Time.
func Time(o time.Time) *time.Time { return &o }

// UUID returns the pointer to the given uuid.UUID.
func UUID(o uuid.UUID) *uuid.UUID { return &o }

// Int returns the pointer to the given int.
func Int(o int) *int { return &o }

// Int64 returns the pointer to the given int64.
func Int64(o int64) *int64 { return &o }

// Float64 returns the pointer to the given float64.
func Float64(o float64) *float64 { return &o }

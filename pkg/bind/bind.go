// Package bind declares storage bindings for newtypes.
//
// A binding wires a newtype's codec and static key identity to the storage
// port, exposing exactly the operations its declared capabilities allow.
// Every binding has baseline load and save. At declaration time it may add
// one of two extras:
//
//   - WithClear: the value may be removed (Clear / ClearAt).
//   - WithAlwaysPresent: the value is guaranteed to exist once written
//     (LoadAlways / LoadAlwaysAt); finding nothing is storage corruption.
//
// The two are contradictory — a clearable value cannot be always present —
// so declaring both fails with ErrCapabilityConflict before the binding
// becomes usable.
//
// Bindings hold no runtime state beyond this static configuration. Every
// operation is one synchronous call into the storage port.
package bind

import (
	"errors"
	"fmt"
)

// Capability is a binding's declared extra capability. Exactly one variant
// is stored per binding; mutual exclusion between clearable and
// always-present is validated once, when the binding is declared.
type Capability uint8

const (
	// CapNone grants only baseline load and save.
	CapNone Capability = iota

	// CapClear adds idempotent removal.
	CapClear

	// CapAlwaysPresent adds load-always, which treats absence as
	// corruption.
	CapAlwaysPresent
)

var capabilityNames = [...]string{
	CapNone:          "none",
	CapClear:         "clear",
	CapAlwaysPresent: "always_present",
}

// String returns the capability name.
func (c Capability) String() string {
	if int(c) < len(capabilityNames) {
		return capabilityNames[c]
	}
	return "unknown"
}

// Declaration errors.
var (
	ErrCapabilityConflict = errors.New("clear and always-present are mutually exclusive")
	ErrNamespaceEmpty     = errors.New("namespace must not be empty")
	ErrNameEmpty          = errors.New("type name must not be empty")
)

// Operation errors for capabilities the binding did not declare.
var (
	ErrNotClearable     = errors.New("binding was not declared clearable")
	ErrNotAlwaysPresent = errors.New("binding was not declared always-present")
)

// ErrValueMissing is the cause recorded when a load-always operation finds
// no stored bytes.
var ErrValueMissing = errors.New("always-present value missing from store")

// CorruptionError is an internal-consistency violation: the bytes at a key
// are not what this layer would itself have produced, or an always-present
// value is missing. It indicates storage corruption or a storage port
// contract breach. Bindings panic with it rather than returning it; callers
// must never silently continue past one.
type CorruptionError struct {
	Key []byte
	Err error
}

func (e *CorruptionError) Error() string {
	return fmt.Sprintf("storage corruption at key %q: %v", e.Key, e.Err)
}

func (e *CorruptionError) Unwrap() error {
	return e.Err
}

// options collects declaration-time capability requests before validation.
type options struct {
	clear  bool
	always bool
}

// Option configures a binding at declaration time.
type Option func(*options)

// WithClear declares the binding clearable.
func WithClear() Option {
	return func(o *options) { o.clear = true }
}

// WithAlwaysPresent declares the binding always-present.
func WithAlwaysPresent() Option {
	return func(o *options) { o.always = true }
}

// resolve validates the declaration and collapses the requested options into
// a single Capability variant.
func resolve(namespace, name string, opts []Option) (Capability, error) {
	if namespace == "" {
		return CapNone, ErrNamespaceEmpty
	}
	if name == "" {
		return CapNone, ErrNameEmpty
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}
	switch {
	case o.clear && o.always:
		return CapNone, ErrCapabilityConflict
	case o.clear:
		return CapClear, nil
	case o.always:
		return CapAlwaysPresent, nil
	default:
		return CapNone, nil
	}
}

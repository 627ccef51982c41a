// Package classprop exposes a computed value as a read-only property of a
// type rather than of an instance.
//
// The getter receives the owning reflect.Type, never an instance, and runs
// on every access; nothing is cached. Assignment and deletion always fail
// with an error naming the property.
package classprop

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrReadOnly indicates an attempt to mutate or delete a property
var ErrReadOnly = errors.New("property is read-only")

// Getter computes the property value from the owning type
type Getter[V any] func(owner reflect.Type) V

// Property is a read-only attribute resolved against the owning type Owner
type Property[Owner any, V any] struct {
	name string
	get  Getter[V]
}

// New creates a property named name backed by get
func New[Owner any, V any](name string, get Getter[V]) *Property[Owner, V] {
	if get == nil {
		panic("classprop: getter cannot be nil")
	}
	return &Property[Owner, V]{name: name, get: get}
}

// Name returns the property name
func (p *Property[Owner, V]) Name() string {
	return p.name
}

// Get computes the value against the owning type. No instance of Owner is
// required.
func (p *Property[Owner, V]) Get() V {
	return p.get(reflect.TypeOf((*Owner)(nil)).Elem())
}

// Set always fails, naming the property
func (p *Property[Owner, V]) Set(V) error {
	return fmt.Errorf("cannot set %q: %w", p.name, ErrReadOnly)
}

// Delete always fails, naming the property
func (p *Property[Owner, V]) Delete() error {
	return fmt.Errorf("cannot delete %q: %w", p.name, ErrReadOnly)
}

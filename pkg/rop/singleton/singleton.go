// Package singleton keeps one lazily created instance per type for the whole
// process.
//
//	cfg := singleton.Get[Config]()               // new(Config) on first use
//	db := singleton.GetOr(func() *Store { ... }) // custom constructor on first use
package singleton

import (
	"reflect"
	"sync"
)

var (
	mu        sync.Mutex
	instances = make(map[reflect.Type]any)
)

// Get returns the instance of T, creating it with new(T) on first use.
func Get[T any]() *T {
	return GetOr(func() *T { return new(T) })
}

// GetOr returns the instance of T, creating it with build on first use.
// build runs at most once per type until Reset; it must not call back into
// this package.
func GetOr[T any](build func() *T) *T {
	key := reflect.TypeFor[T]()

	mu.Lock()
	defer mu.Unlock()

	if inst, ok := instances[key]; ok {
		return inst.(*T)
	}
	inst := build()
	instances[key] = inst
	return inst
}

// Reset forgets the instance of T.
func Reset[T any]() {
	mu.Lock()
	defer mu.Unlock()
	delete(instances, reflect.TypeFor[T]())
}

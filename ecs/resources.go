package ecs

import "reflect"

// Resources are world-scoped singletons keyed by type: tunables, registries,
// the current input frame. They are set once at startup or once per tick,
// never per entity.

// SetResource stores v as the world's singleton of type T.
func SetResource[T any](w *World, v T) {
	if w == nil {
		return
	}
	if w.resources == nil {
		w.resources = make(map[reflect.Type]any)
	}
	w.resources[reflect.TypeOf((*T)(nil)).Elem()] = v
}

// GetResource returns the world's singleton of type T, if set.
func GetResource[T any](w *World) (T, bool) {
	var zero T
	if w == nil || w.resources == nil {
		return zero, false
	}
	v, ok := w.resources[reflect.TypeOf((*T)(nil)).Elem()]
	if !ok {
		return zero, false
	}
	t, ok := v.(T)
	if !ok {
		return zero, false
	}
	return t, true
}

// MustResource returns the singleton of type T or its zero value.
func MustResource[T any](w *World) T {
	v, _ := GetResource[T](w)
	return v
}

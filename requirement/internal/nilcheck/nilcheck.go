package nilcheck

import "reflect"

// Interface reports whether value is nil, including typed-nil interfaces.
func Interface(value any) bool {
	if value == nil {
		return true
	}

	v := reflect.ValueOf(value)

	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return v.IsNil()
	default:
		return false
	}
}

// Lengther is satisfied by containers that report their own element count.
type Lengther interface {
	Len() int
}

// Len returns the element count of a countable value.
//
// Arrays, slices, maps, channels and strings are countable, as is anything
// implementing Lengther. Nil slices, maps and channels count as empty, named
// ones with a Len method included. A nil pointer Lengther is not countable.
// ok is false for untyped nil and for values that cannot be counted.
func Len(value any) (n int, ok bool) {
	if value == nil {
		return 0, false
	}

	v := reflect.ValueOf(value)

	if l, isLengther := value.(Lengther); isLengther {
		switch v.Kind() {
		case reflect.Chan, reflect.Map, reflect.Slice:
			if v.IsNil() {
				return 0, true
			}
		default:
			if Interface(value) {
				return 0, false
			}
		}

		return l.Len(), true
	}

	switch v.Kind() {
	case reflect.Array, reflect.Chan, reflect.Map, reflect.Slice, reflect.String:
		return v.Len(), true
	case reflect.Pointer:
		if !v.IsNil() && v.Elem().Kind() == reflect.Array {
			return v.Elem().Len(), true
		}

		return 0, false
	default:
		return 0, false
	}
}

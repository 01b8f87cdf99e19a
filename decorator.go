package devlog

import (
	"reflect"
	"runtime"
)

// Decorated is a function wrapped so that every call is timed.
// Fn has exactly the signature of the original and returns its results unchanged.
type Decorated[F any] struct {
	Fn F

	orig F
	name string
}

// Decorate wraps fn, which must be a non-nil function of any signature.
// Each call gets its own measurement and reports even when the call panics,
// so the wrapper is safe for recursive and concurrent use.
func Decorate[F any](t *Timer, fn F) (*Decorated[F], error) {
	v := reflect.ValueOf(fn)
	if !v.IsValid() || v.Kind() != reflect.Func || v.IsNil() {
		return nil, ErrNotFunc
	}

	variadic := v.Type().IsVariadic()
	wrapped := reflect.MakeFunc(v.Type(), func(args []reflect.Value) []reflect.Value {
		m := t.Start()
		defer m.Stop()
		// MakeFunc hands variadic arguments over already packed into a slice
		if variadic {
			return v.CallSlice(args)
		}
		return v.Call(args)
	})

	return &Decorated[F]{
		Fn:   wrapped.Interface().(F),
		orig: fn,
		name: funcName(v),
	}, nil
}

// Name returns the qualified name of the original function
func (d *Decorated[F]) Name() string {
	return d.name
}

// Unwrap returns the original, untimed function
func (d *Decorated[F]) Unwrap() F {
	return d.orig
}

// FuncName returns the qualified name of a function value, or "" if fn is not a function
func FuncName(fn any) string {
	v := reflect.ValueOf(fn)
	if !v.IsValid() || v.Kind() != reflect.Func || v.IsNil() {
		return ""
	}
	return funcName(v)
}

func funcName(v reflect.Value) string {
	if f := runtime.FuncForPC(v.Pointer()); f != nil {
		return f.Name()
	}
	return ""
}

// Func times a function without arguments
func Func[R any](t *Timer, fn func() R) func() R {
	return func() R {
		m := t.Start()
		defer m.Stop()
		return fn()
	}
}

// Func1 times a single-argument function
func Func1[A, R any](t *Timer, fn func(A) R) func(A) R {
	return func(a A) R {
		m := t.Start()
		defer m.Stop()
		return fn(a)
	}
}

// Func2 times a two-argument function
func Func2[A, B, R any](t *Timer, fn func(A, B) R) func(A, B) R {
	return func(a A, b B) R {
		m := t.Start()
		defer m.Stop()
		return fn(a, b)
	}
}

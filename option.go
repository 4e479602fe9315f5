// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package capfn

// Option represents a value that is either present (Some) or absent (None).
type Option[T any] struct {
	present bool
	value   T
}

// Some creates a present value.
func Some[T any](v T) Option[T] {
	return Option[T]{present: true, value: v}
}

// None creates an absent value.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome returns true if the value is present.
func (o Option[T]) IsSome() bool {
	return o.present
}

// IsNone returns true if the value is absent.
func (o Option[T]) IsNone() bool {
	return !o.present
}

// Get returns the contained value and true, or zero and false.
func (o Option[T]) Get() (T, bool) {
	if o.present {
		return o.value, true
	}
	var zero T
	return zero, false
}

// MatchOption pattern matches on the Option, calling onSome or onNone.
func MatchOption[T, R any](o Option[T], onSome func(T) R, onNone func() R) R {
	if o.present {
		return onSome(o.value)
	}
	return onNone()
}

// MapOption applies a function to the present value.
func MapOption[T, U any](o Option[T], f func(T) U) Option[U] {
	if o.present {
		return Some(f(o.value))
	}
	return None[U]()
}

// FlatMapOption sequences two Option computations.
func FlatMapOption[T, U any](o Option[T], f func(T) Option[U]) Option[U] {
	if o.present {
		return f(o.value)
	}
	return None[U]()
}

// OrElse resolves an Option with a lazy fallback.
// When o is present its contents are returned and fallback is never
// invoked — not even its allocation or computation happens. When o is
// absent, fallback is invoked exactly once and its result returned.
// OrElse cannot fail; it always produces a T.
//
// The fallback is a consuming handle, so a fallback that was already
// spent elsewhere is caught at the single invocation. A present value
// leaves the handle unspent; callers that care can Discard it.
func OrElse[T any](o Option[T], fallback *Thunk[T]) T {
	if o.present {
		return o.value
	}
	return fallback.Call(struct{}{})
}

// OrElseFunc resolves an Option with a plain fallback behavior,
// wrapped as a consuming handle only on the absent branch so the
// laziness guarantee is identical to [OrElse].
func OrElseFunc[T any](o Option[T], f func() T) T {
	if o.present {
		return o.value
	}
	return Lazy(f).Call(struct{}{})
}

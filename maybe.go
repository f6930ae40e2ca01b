package holdings

// Maybe holds a value that may not be representable: a per-unit figure of a
// holding with no units, or native totals over several currencies.
//
// The zero Maybe is not representable.
type Maybe[T any] struct {
	value T
	ok    bool
}

// Some returns a representable Maybe holding v.
func Some[T any](v T) Maybe[T] { return Maybe[T]{value: v, ok: true} }

// NotRepresentable returns a Maybe without value.
func NotRepresentable[T any]() Maybe[T] { return Maybe[T]{} }

// Get returns the value and whether it is representable.
func (m Maybe[T]) Get() (T, bool) { return m.value, m.ok }

// OK reports whether the value is representable.
func (m Maybe[T]) OK() bool { return m.ok }

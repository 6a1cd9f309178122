package mtx

import "sync"

// Mtx is a mutex-guarded value of any type T.
// The zero value holds the zero value of T and is ready to use.
type Mtx[T any] struct {
	sync.Mutex
	v T
}

// NewMtx creates a new Mtx containing the given value
func NewMtx[T any](v T) Mtx[T] {
	return Mtx[T]{v: v}
}

// Val gets a pointer to the underlying value, caller is responsible for
// locking/unlocking around its use
func (m *Mtx[T]) Val() *T {
	return &m.v
}

// Get returns a copy of the protected value
func (m *Mtx[T]) Get() (out T) {
	m.With(func(v *T) { out = *v })
	return
}

// Set replaces the protected value
func (m *Mtx[T]) Set(v T) {
	m.With(func(old *T) { *old = v })
}

// With runs the callback while holding the lock
func (m *Mtx[T]) With(clb func(v *T)) {
	_ = m.WithE(func(v *T) error {
		clb(v)
		return nil
	})
}

// WithE runs the callback while holding the lock, can return an error
func (m *Mtx[T]) WithE(clb func(v *T) error) error {
	m.Lock()
	defer m.Unlock()
	return clb(&m.v)
}

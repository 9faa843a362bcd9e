package extensible

import (
	"github.com/puzpuzpuz/xsync/v3"

	"mit.edu/dsg/zero100/common"
)

// Named is implemented by every operator descriptor.
type Named interface {
	Name() string
}

// Registry maps descriptor names to process-wide descriptor values. Lookups
// are by name, but registration is keyed on identity: the same descriptor may
// be registered any number of times, a different one may not reuse its name.
//
// Descriptors must be pointers (or other comparable values) so that identity
// comparison is well defined.
type Registry[T Named] struct {
	kind string
	m    *xsync.MapOf[string, T]
}

func NewRegistry[T Named](kind string) *Registry[T] {
	return &Registry[T]{
		kind: kind,
		m:    xsync.NewMapOf[string, T](),
	}
}

// Register adds d under d.Name(). Registering the identical descriptor again is a no-op.
func (r *Registry[T]) Register(d T) error {
	actual, loaded := r.m.LoadOrStore(d.Name(), d)
	if loaded && any(actual) != any(d) {
		return common.Errorf(common.DuplicateObjectError, "%s %q already registered by a different descriptor", r.kind, d.Name())
	}
	return nil
}

// Lookup returns the descriptor registered under name.
func (r *Registry[T]) Lookup(name string) (T, error) {
	d, ok := r.m.Load(name)
	if !ok {
		var zero T
		return zero, common.Errorf(common.NoSuchObjectError, "%s %q is not registered", r.kind, name)
	}
	return d, nil
}

// Len returns the number of registered descriptors.
func (r *Registry[T]) Len() int {
	return r.m.Size()
}

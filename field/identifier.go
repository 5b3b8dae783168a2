// Package field resolves stable, equality-comparable identifiers for a
// single editable member on a live object, either from an explicit
// (owner, name) pair or from an accessor expression tree.
package field

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/fnv"
	"reflect"
)

// ErrInvalidArgument reports a nil or value-semantics owner, or an empty
// member name.
var ErrInvalidArgument = errors.New("invalid identifier argument")

// Identifier names one member on one specific live owner object. It is
// an immutable, cheap value: equality requires the identical owner by
// reference and a byte-exact member name, so two owners with equal
// contents still yield distinct identifiers. The identifier holds a
// non-owning reference and does not affect the owner's lifetime.
//
// Identifier is comparable with == and usable as a map key; that
// comparison agrees with Equal.
type Identifier struct {
	owner any
	name  string
}

// New builds an identifier for the named member of owner. The owner must
// be a reference-kind value (pointer, channel or unsafe pointer): only
// those carry the stable identity the equality contract relies on.
// Passing a copyable value kind would compare copies instead of the live
// object, so value kinds, maps, slices and funcs are rejected.
func New(owner any, name string) (Identifier, error) {
	if owner == nil {
		return Identifier{}, fmt.Errorf("%w: owner is nil", ErrInvalidArgument)
	}

	if name == "" {
		return Identifier{}, fmt.Errorf("%w: empty member name", ErrInvalidArgument)
	}

	rv := reflect.ValueOf(owner)

	switch rv.Kind() {
	default:
		return Identifier{}, fmt.Errorf("%w: owner %T is not a reference kind", ErrInvalidArgument, owner)

	case reflect.Ptr, reflect.Chan:
		if rv.IsNil() {
			return Identifier{}, fmt.Errorf("%w: owner %T is nil", ErrInvalidArgument, owner)
		}

	case reflect.UnsafePointer:
		if rv.Pointer() == 0 {
			return Identifier{}, fmt.Errorf("%w: owner %T is nil", ErrInvalidArgument, owner)
		}
	}

	return Identifier{owner: owner, name: name}, nil
}

// Owner returns the owning object the identifier was built for.
func (id Identifier) Owner() any { return id.owner }

// Name returns the member name.
func (id Identifier) Name() string { return id.name }

// Equal reports whether both identifiers name the same member on the
// identical owner instance. Names compare ordinally (case-sensitive).
func (id Identifier) Equal(other Identifier) bool {
	return id.owner == other.owner && id.name == other.name
}

// Hash returns a hash consistent with Equal: equal identifiers hash
// equal. It mixes the owner's pointer word with the member name bytes.
func (id Identifier) Hash() uint64 {
	var ptr uint64
	if id.owner != nil {
		ptr = uint64(reflect.ValueOf(id.owner).Pointer())
	}

	var buf [8]byte

	binary.LittleEndian.PutUint64(buf[:], ptr)

	h := fnv.New64a()
	h.Write(buf[:])
	h.Write([]byte(id.name))

	return h.Sum64()
}

// String returns a diagnostic form like "*store.Order.Status".
func (id Identifier) String() string {
	return fmt.Sprintf("%T.%s", id.owner, id.name)
}

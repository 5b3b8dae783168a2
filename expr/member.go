package expr

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	ErrMemberNotFound = errors.New("type has no member with the requested name")
	ErrUntypedNode    = errors.New("expression node has no statically known type")
)

// MemberEnum classifies what a member name resolves to on an owner type.
type MemberEnum int

const (
	_ MemberEnum = iota // skip zero value, use it as a default (invalid) value for MemberEnum

	// MemberField is an exported struct field.
	MemberField
	// MemberProperty is an exported zero-argument single-result method,
	// read like a field through its getter.
	MemberProperty
	// MemberMethod is any other method.
	MemberMethod

	// MemberTotal is a constant that represents the total number of member kinds defined
	MemberTotal = int(iota)
)

// String returns a human-readable member kind name.
func (m MemberEnum) String() string {
	switch m {
	case MemberField:
		return "field"
	case MemberProperty:
		return "property"
	case MemberMethod:
		return "method"
	default:
		return "unknown"
	}
}

// ClassifyMember resolves name against t. Struct fields win over
// methods, matching selector resolution. Pointer types are dereferenced
// for the field lookup; methods are looked up on both the value and the
// pointer method set.
func ClassifyMember(t reflect.Type, name string) (MemberEnum, error) {
	if t == nil {
		return 0, fmt.Errorf("%w: cannot classify member %s", ErrUntypedNode, name)
	}

	if b := base(t); b.Kind() == reflect.Struct {
		if f, ok := b.FieldByName(name); ok && f.IsExported() {
			return MemberField, nil
		}
	}

	m, ok := t.MethodByName(name)
	if !ok && t.Kind() != reflect.Ptr {
		m, ok = reflect.PointerTo(t).MethodByName(name)
	}

	if !ok {
		return 0, fmt.Errorf("%w: %s on %s", ErrMemberNotFound, name, t)
	}

	// A getter takes no arguments beyond the receiver and returns exactly one value.
	if m.Type.NumIn() == 1 && m.Type.NumOut() == 1 {
		return MemberProperty, nil
	}

	return MemberMethod, nil
}

// memberType returns the type produced by reading the named member,
// classified as kind, off an owner of type owner.
func memberType(owner reflect.Type, name string, kind MemberEnum) (reflect.Type, error) {
	switch kind {
	default:
		return nil, fmt.Errorf("%w: member %s is a %s", ErrUntypedNode, name, kind)

	case MemberField:
		b := base(owner)
		if b.Kind() != reflect.Struct {
			return nil, fmt.Errorf("%w: %s on %s", ErrMemberNotFound, name, owner)
		}

		f, ok := b.FieldByName(name)
		if !ok {
			return nil, fmt.Errorf("%w: %s on %s", ErrMemberNotFound, name, owner)
		}

		return f.Type, nil

	case MemberProperty:
		m, ok := owner.MethodByName(name)
		if !ok && owner.Kind() != reflect.Ptr {
			m, ok = reflect.PointerTo(owner).MethodByName(name)
		}

		if !ok {
			return nil, fmt.Errorf("%w: %s on %s", ErrMemberNotFound, name, owner)
		}

		return m.Type.Out(0), nil
	}
}

// base strips pointer indirections down to the pointed-to type.
func base(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	return t
}

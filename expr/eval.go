package expr

import (
	"errors"
	"fmt"
	"reflect"
)

var ErrNotEvaluable = errors.New("expression node cannot be evaluated")

// Thunk is a compiled zero-argument accessor over a closed expression.
type Thunk func() (any, error)

// Bind builds a zero-argument function that evaluates n when invoked.
// Every call produces a fresh thunk; results are never cached, so any
// side effects of getters occur on each invocation.
func Bind(n Node) Thunk {
	return func() (any, error) {
		return Evaluate(n)
	}
}

// Evaluate synchronously computes the value described by n. The tree is
// read-only; only constant, conversion and member nodes are evaluable.
func Evaluate(n Node) (any, error) {
	switch e := n.(type) {
	default:
		return nil, fmt.Errorf("%w: %s", ErrNotEvaluable, n.Kind())

	case *Constant:
		return e.Value, nil

	case *Convert:
		v, err := Evaluate(e.Operand)
		if err != nil {
			return nil, err
		}

		if e.Widening() {
			return v, nil
		}

		rv := reflect.ValueOf(v)
		if !rv.IsValid() {
			return nil, fmt.Errorf("%w: cannot convert nil to %s", ErrNotEvaluable, e.Type)
		}

		if !rv.Type().ConvertibleTo(e.Type) {
			return nil, fmt.Errorf("%w: cannot convert %s to %s", ErrNotEvaluable, rv.Type(), e.Type)
		}

		return rv.Convert(e.Type).Interface(), nil

	case *Member:
		return evalMember(e)
	}
}

func evalMember(m *Member) (any, error) {
	owner, err := Evaluate(m.Owner)
	if err != nil {
		return nil, err
	}

	rv := reflect.ValueOf(owner)
	if !rv.IsValid() {
		return nil, fmt.Errorf("%w: cannot read %s of a nil owner", ErrNotEvaluable, m.Name)
	}

	kind := m.Member
	if kind == 0 {
		// Hand-built member nodes may omit the classification.
		if kind, err = ClassifyMember(rv.Type(), m.Name); err != nil {
			return nil, err
		}
	}

	switch kind {
	default:
		return nil, fmt.Errorf("%w: member %s is a %s", ErrNotEvaluable, m.Name, kind)

	case MemberField:
		for rv.Kind() == reflect.Ptr {
			if rv.IsNil() {
				return nil, fmt.Errorf("%w: nil %s dereferenced reading %s", ErrNotEvaluable, rv.Type(), m.Name)
			}

			rv = rv.Elem()
		}

		f := rv.FieldByName(m.Name)
		if !f.IsValid() {
			return nil, fmt.Errorf("%w: %s on %s", ErrMemberNotFound, m.Name, rv.Type())
		}

		return f.Interface(), nil

	case MemberProperty:
		fn := rv.MethodByName(m.Name)
		if !fn.IsValid() && rv.Kind() != reflect.Ptr {
			// Pointer-receiver getter on a value owner: call it on an addressable copy.
			ptr := reflect.New(rv.Type())
			ptr.Elem().Set(rv)
			fn = ptr.MethodByName(m.Name)
		}

		if !fn.IsValid() {
			return nil, fmt.Errorf("%w: %s on %s", ErrMemberNotFound, m.Name, rv.Type())
		}

		return fn.Call(nil)[0].Interface(), nil
	}
}

var anyType = reflect.TypeOf((*any)(nil)).Elem()

// StaticType derives the type a node evaluates to without evaluating it.
func StaticType(n Node) (reflect.Type, error) {
	switch e := n.(type) {
	default:
		return nil, fmt.Errorf("%w: %s", ErrUntypedNode, n.Kind())

	case *Constant:
		if e.Value == nil {
			return nil, fmt.Errorf("%w: nil constant", ErrUntypedNode)
		}

		return reflect.TypeOf(e.Value), nil

	case *Convert:
		if e.Type == nil {
			return anyType, nil
		}

		return e.Type, nil

	case *Member:
		owner, err := StaticType(e.Owner)
		if err != nil {
			return nil, err
		}

		kind := e.Member
		if kind == 0 {
			if kind, err = ClassifyMember(owner, e.Name); err != nil {
				return nil, err
			}
		}

		return memberType(owner, e.Name, kind)
	}
}

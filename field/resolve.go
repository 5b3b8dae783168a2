package field

import (
	"errors"
	"fmt"

	"form-binder/expr"
)

var (
	ErrUnsupportedExpression      = errors.New("accessor body must be a member read")
	ErrUnsupportedMemberKind      = errors.New("accessed member is neither a field nor a property")
	ErrUnsupportedOwnerExpression = errors.New("owner expression is neither a closed value nor a member read")
)

// FromAccessor destructures an accessor expression describing a read
// like model.Address.City and resolves the identifier of the member it
// reads: the member's name paired with the live object produced by the
// owner sub-expression.
//
// The body may carry one widening conversion to `any`, which is
// stripped. The remaining body must read a field or property. Its owner
// sub-expression is taken directly when it is a closed value; when it is
// a further member chain, it is bound into a throwaway zero-argument
// function and evaluated exactly once, so getter side effects along the
// chain happen once per call. Shape matching itself evaluates nothing,
// and every failure is fatal to the call.
func FromAccessor(accessor expr.Node) (Identifier, error) {
	if accessor == nil {
		return Identifier{}, fmt.Errorf("%w: nil expression", ErrUnsupportedExpression)
	}

	body := accessor
	if conv, ok := body.(*expr.Convert); ok && conv.Widening() {
		body = conv.Operand
	}

	access, ok := body.(*expr.Member)
	if !ok {
		if body == nil {
			return Identifier{}, fmt.Errorf("%w: nil conversion operand", ErrUnsupportedExpression)
		}

		return Identifier{}, fmt.Errorf("%w, got %s", ErrUnsupportedExpression, body.Kind())
	}

	switch access.Member {
	default:
		return Identifier{}, fmt.Errorf("%w: %s is a %s", ErrUnsupportedMemberKind, access.Name, access.Member)
	case expr.MemberField, expr.MemberProperty:
	}

	var owner any

	switch ownerExpr := access.Owner.(type) {
	default:
		if access.Owner == nil {
			return Identifier{}, fmt.Errorf("%w: nil owner", ErrUnsupportedOwnerExpression)
		}

		return Identifier{}, fmt.Errorf("%w, got %s", ErrUnsupportedOwnerExpression, access.Owner.Kind())

	case *expr.Constant:
		owner = ownerExpr.Value

	case *expr.Member:
		get := expr.Bind(ownerExpr)

		v, err := get()
		if err != nil {
			return Identifier{}, fmt.Errorf("evaluating owner of %s: %w", access.Name, err)
		}

		owner = v
	}

	return New(owner, access.Name)
}

// FromPath resolves the identifier of the member at a dotted path read
// off root, e.g. FromPath(form, "Address.City").
func FromPath(root any, path string) (Identifier, error) {
	names, err := expr.ParsePath(path)
	if err != nil {
		return Identifier{}, err
	}

	chain, err := expr.Chain(root, names...)
	if err != nil {
		return Identifier{}, err
	}

	return FromAccessor(chain)
}

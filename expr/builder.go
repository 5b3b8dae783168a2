package expr

import "fmt"

// Access builds a read of the named member off owner, classifying the
// member against the owner's static type. The owner must have a
// statically derivable type (a constant, a conversion with a concrete
// target, or a further member chain).
func Access(owner Node, name string) (*Member, error) {
	t, err := StaticType(owner)
	if err != nil {
		return nil, err
	}

	kind, err := ClassifyMember(t, name)
	if err != nil {
		return nil, err
	}

	return &Member{Owner: owner, Name: name, Member: kind}, nil
}

// Chain describes a member-read chain rooted at a live value, e.g.
// Chain(form, "Address", "City") for form.Address.City. The returned
// node is the outermost member read.
func Chain(root any, names ...string) (Node, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: chain requires at least one member name", ErrMemberNotFound)
	}

	var n Node = &Constant{Value: root}

	for _, name := range names {
		m, err := Access(n, name)
		if err != nil {
			return nil, err
		}

		n = m
	}

	return n, nil
}

package expr

import "reflect"

// Node is a single node of an accessor expression tree. The set of
// implementations in this package is closed: consumers switch over the
// concrete types and treat any shape they do not expect as unsupported.
type Node interface {
	Kind() KindEnum
}

// Constant is a closed expression node already holding a live value,
// such as a variable captured at the accessor's construction site. It
// requires no evaluation of sub-structure.
type Constant struct {
	Value any
}

func (*Constant) Kind() KindEnum { return KindConstant }

// Member reads the named member of the value produced by Owner. The
// Member field records what the name resolved to on the owner's static
// type, so shape checks stay free of evaluation.
type Member struct {
	Owner  Node
	Name   string
	Member MemberEnum
}

func (*Member) Kind() KindEnum { return KindMember }

// Convert wraps an operand in a type conversion. A nil Type stands for
// conversion to the universal `any` supertype; that is the widening form
// accessor bodies may carry around a member read.
type Convert struct {
	Operand Node
	Type    reflect.Type
}

func (*Convert) Kind() KindEnum { return KindConvert }

// Widening reports whether the conversion target is the `any` supertype.
func (c *Convert) Widening() bool {
	return c.Type == nil || (c.Type.Kind() == reflect.Interface && c.Type.NumMethod() == 0)
}

// Call describes a method invocation on a receiver expression. It exists
// so malformed accessors keep a concrete shape to be rejected by;
// nothing in this package evaluates it.
type Call struct {
	Recv Node
	Name string
}

func (*Call) Kind() KindEnum { return KindCall }

// Index describes an indexing operation, with the same role as Call.
type Index struct {
	Recv Node
	Key  Node
}

func (*Index) Kind() KindEnum { return KindIndex }

package expr

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindConstant
	KindMember
	KindConvert
	KindCall
	KindIndex

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

package bitfield

import "fmt"

// Kind identifies a specifier's value category.
type Kind int

const (
	KindUint Kind = iota
	KindBool
	KindEnum
)

func (k Kind) String() string {
	switch k {
	case KindUint:
		return "uint"
	case KindBool:
		return "bool"
	case KindEnum:
		return "enum"
	}
	return "unknown"
}

// Carrier is the minimal unsigned integer width used to stage a field's
// raw bits during get/set.
type Carrier int

const (
	Carrier8  Carrier = 8
	Carrier16 Carrier = 16
	Carrier32 Carrier = 32
	Carrier64 Carrier = 64
)

func (c Carrier) String() string {
	return fmt.Sprintf("u%d", int(c))
}

// carrierFor returns the narrowest carrier with bit width >= bits.
func carrierFor(bits int) Carrier {
	switch {
	case bits <= 8:
		return Carrier8
	case bits <= 16:
		return Carrier16
	case bits <= 32:
		return Carrier32
	default:
		return Carrier64
	}
}

// Specifier describes how many bits a field occupies and how its raw bits
// map to a logical value. Implementations are Bits(n), Bool(), and Enum.
type Specifier interface {
	// Bits is the number of bits the field occupies.
	Bits() int
	// Carrier is the staging integer width for the field's raw bits.
	Carrier() Carrier
	// Kind is the value category the field decodes to.
	Kind() Kind

	fmt.Stringer
}

type widthSpec int

// Bits returns the built-in specifier for an n-bit unsigned integer field.
// The registry is total over 1..=64; widths outside that range are rejected
// by Compile, not here.
func Bits(n int) Specifier {
	return widthSpec(n)
}

func (w widthSpec) Bits() int        { return int(w) }
func (w widthSpec) Carrier() Carrier { return carrierFor(int(w)) }
func (w widthSpec) Kind() Kind       { return KindUint }

func (w widthSpec) String() string {
	return fmt.Sprintf("bits(%d)", int(w))
}

type boolSpec struct{}

// Bool returns the single-bit boolean specifier: a set bit decodes to true.
func Bool() Specifier {
	return boolSpec{}
}

func (boolSpec) Bits() int        { return 1 }
func (boolSpec) Carrier() Carrier { return Carrier8 }
func (boolSpec) Kind() Kind       { return KindBool }
func (boolSpec) String() string   { return "bool" }

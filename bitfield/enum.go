package bitfield

import (
	"fmt"
	"math/bits"

	"github.com/wippyai/bitpack/errors"
)

// Variant is one case of an enum: a name and the integer discriminant used
// as its encoded bit pattern.
type Variant struct {
	Name         string
	Discriminant uint64
}

// Enum wraps an explicit variant table as a field specifier. Its bit width
// is log2 of the variant count; validation of the count and of every
// discriminant happens when the enum is compiled into a record.
type Enum struct {
	name     string
	variants []Variant
	bitWidth int
	byDisc   map[uint64]int
	byName   map[string]int
}

// NewEnum builds an enum specifier from an explicit variant table.
// Variant order is preserved for display; discriminants need not be dense.
func NewEnum(name string, variants ...Variant) *Enum {
	e := &Enum{
		name:     name,
		variants: variants,
		byDisc:   make(map[uint64]int, len(variants)),
		byName:   make(map[string]int, len(variants)),
	}
	if n := len(variants); n > 1 {
		e.bitWidth = bits.Len(uint(n - 1))
	}
	for i, v := range variants {
		if _, dup := e.byDisc[v.Discriminant]; !dup {
			e.byDisc[v.Discriminant] = i
		}
		if _, dup := e.byName[v.Name]; !dup {
			e.byName[v.Name] = i
		}
	}
	return e
}

// AutoEnum builds an enum whose discriminants ascend from 0 in declaration
// order, the implicit numbering scheme.
func AutoEnum(name string, names ...string) *Enum {
	variants := make([]Variant, len(names))
	for i, n := range names {
		variants[i] = Variant{Name: n, Discriminant: uint64(i)}
	}
	return NewEnum(name, variants...)
}

func (e *Enum) Bits() int        { return e.bitWidth }
func (e *Enum) Carrier() Carrier { return carrierFor(e.bitWidth) }
func (e *Enum) Kind() Kind       { return KindEnum }
func (e *Enum) String() string   { return "enum " + e.name }

// Variants returns the variant table in declaration order.
func (e *Enum) Variants() []Variant {
	return e.variants
}

// Decode maps a raw bit pattern to its variant. A pattern matching no
// discriminant is a typed decode error, not a fault.
func (e *Enum) Decode(raw uint64) (Variant, error) {
	i, ok := e.byDisc[raw]
	if !ok {
		return Variant{}, errors.UnmappedPattern(nil, raw, e.name)
	}
	return e.variants[i], nil
}

// Encode returns the discriminant for the named variant.
func (e *Enum) Encode(name string) (uint64, error) {
	i, ok := e.byName[name]
	if !ok {
		return 0, errors.NotFound(errors.PhaseEncode, "variant", name)
	}
	return e.variants[i].Discriminant, nil
}

// validate runs the schema-time checks: the variant count must be a power
// of two and every discriminant must fit the computed bit width. Duplicate
// names or discriminants are also rejected. All failures surface before
// any record using this enum can be constructed.
func (e *Enum) validate(path []string) error {
	n := len(e.variants)
	if n == 0 || n&(n-1) != 0 {
		return errors.InvalidVariantCount(path, n)
	}

	limit := uint64(1) << e.bitWidth
	seenDisc := make(map[uint64]string, n)
	seenName := make(map[string]bool, n)

	for _, v := range e.variants {
		if e.bitWidth < 64 && v.Discriminant >= limit {
			return errors.DiscriminantOutOfRange(path, v.Name, v.Discriminant, e.bitWidth)
		}
		if seenName[v.Name] {
			return errors.DuplicateVariant(path, fmt.Sprintf("variant %q declared more than once", v.Name))
		}
		seenName[v.Name] = true
		if prev, dup := seenDisc[v.Discriminant]; dup {
			return errors.DuplicateVariant(path, fmt.Sprintf("variants %q and %q share discriminant %d", prev, v.Name, v.Discriminant))
		}
		seenDisc[v.Discriminant] = v.Name
	}
	return nil
}

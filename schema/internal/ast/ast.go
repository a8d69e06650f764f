package ast

// File is one parsed schema source: record and enum definitions in source
// order. Records may reference enums defined anywhere in the file.
type File struct {
	Records []Record
	Enums   []Enum
}

// Record is an ordered field list. Field order fixes the bit layout.
type Record struct {
	Name   string
	Fields []Field
	Line   int
}

// Field is one declared field. Expect is the author-asserted bit width
// from an (expect N) clause, 0 when absent.
type Field struct {
	Name   string
	Type   TypeRef
	Expect int
	Line   int
}

// TypeKind discriminates the forms a field type can take.
type TypeKind int

const (
	// TypeBuiltin is a named builtin: bool, u8, u16, u32, u64.
	TypeBuiltin TypeKind = iota
	// TypeBits is an explicit (bits N) width.
	TypeBits
	// TypeEnum is an (enum name) reference.
	TypeEnum
)

// TypeRef is an unresolved field type. Builtin holds the type or enum
// name; Bits holds the width for TypeBits.
type TypeRef struct {
	Kind    TypeKind
	Builtin string
	Bits    int
}

// Enum is a named variant list.
type Enum struct {
	Name     string
	Variants []Variant
	Line     int
}

// Variant is one enum case. Explicit reports whether the source assigned
// a discriminant; implicit discriminants ascend from the previous one.
type Variant struct {
	Name         string
	Discriminant uint64
	Explicit     bool
	Line         int
}

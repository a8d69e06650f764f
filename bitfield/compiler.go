package bitfield

import (
	"go.uber.org/zap"

	"github.com/wippyai/bitpack/bitfield/internal/layout"
	"github.com/wippyai/bitpack/errors"
)

// FieldSpec is one declared field: a name, a specifier, and an optional
// author-asserted bit width used only for validation (0 = unspecified).
type FieldSpec struct {
	Name         string
	Spec         Specifier
	DeclaredBits int
}

// CompiledField is one field of a compiled record with its planned bit range.
type CompiledField struct {
	Name   string
	Spec   Specifier
	Offset int
	Bits   int
}

// CompiledRecord is the validated, immutable layout of one record type.
// It is safe for concurrent use; Records instantiated from it are not.
type CompiledRecord struct {
	name      string
	fields    []CompiledField
	byName    map[string]int
	totalBits int
	byteSize  int
}

// Compile validates an ordered field list and plans its bit layout.
// All schema checks run here, before any Record can exist: widths in range,
// declared widths matching their specifiers, enum variant tables valid, no
// duplicate field names, and a total width that is a multiple of 8 bits.
// No partially-valid record is ever returned.
func Compile(name string, fields []FieldSpec) (*CompiledRecord, error) {
	byName := make(map[string]int, len(fields))
	widths := make([]int, len(fields))

	for i, f := range fields {
		path := []string{name, f.Name}

		if f.Spec == nil {
			return nil, errors.InvalidData(errors.PhaseValidate, path, "field has no specifier")
		}
		if _, dup := byName[f.Name]; dup {
			return nil, errors.DuplicateField([]string{name}, f.Name)
		}
		byName[f.Name] = i

		if e, ok := f.Spec.(*Enum); ok {
			if err := e.validate(path); err != nil {
				return nil, err
			}
		} else if f.Spec.Bits() < 1 || f.Spec.Bits() > 64 {
			return nil, errors.InvalidWidth(path, f.Spec.Bits())
		}

		if f.DeclaredBits != 0 && f.DeclaredBits != f.Spec.Bits() {
			return nil, errors.WidthMismatch(path, f.DeclaredBits, f.Spec.Bits())
		}

		widths[i] = f.Spec.Bits()
	}

	plan := layout.Plan(widths)
	if !plan.Aligned() {
		return nil, errors.SizeNotByteAligned([]string{name}, plan.TotalBits)
	}

	compiled := make([]CompiledField, len(fields))
	for i, f := range fields {
		compiled[i] = CompiledField{
			Name:   f.Name,
			Spec:   f.Spec,
			Offset: plan.Offsets[i],
			Bits:   widths[i],
		}
	}

	rec := &CompiledRecord{
		name:      name,
		fields:    compiled,
		byName:    byName,
		totalBits: plan.TotalBits,
		byteSize:  plan.ByteSize,
	}

	Logger().Debug("compiled record",
		zap.String("record", name),
		zap.Int("fields", len(compiled)),
		zap.Int("total_bits", plan.TotalBits),
		zap.Int("byte_size", plan.ByteSize),
	)

	return rec, nil
}

// Name returns the record type's name.
func (c *CompiledRecord) Name() string {
	return c.name
}

// Fields returns the fields in declaration order, which is layout order.
func (c *CompiledRecord) Fields() []CompiledField {
	return c.fields
}

// Field looks up a field by name.
func (c *CompiledRecord) Field(name string) (CompiledField, bool) {
	i, ok := c.byName[name]
	if !ok {
		return CompiledField{}, false
	}
	return c.fields[i], true
}

// TotalBits returns the record's total bit width.
func (c *CompiledRecord) TotalBits() int {
	return c.totalBits
}

// ByteSize returns the record's fixed byte size.
func (c *CompiledRecord) ByteSize() int {
	return c.byteSize
}

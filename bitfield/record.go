package bitfield

import (
	"strconv"

	"github.com/wippyai/bitpack/bitfield/internal/bitio"
	"github.com/wippyai/bitpack/errors"
)

// Record is one instance of a compiled record type: a zero-initialized
// packed byte buffer mutated only through its field accessors. A Record is
// exclusively owned; callers needing to share one across goroutines must
// serialize access themselves.
type Record struct {
	compiled *CompiledRecord
	data     []byte
}

// New returns a zero-initialized Record of the compiled type. Every field
// of a fresh Record reads as zero, false, or the discriminant-0 variant.
func New(c *CompiledRecord) *Record {
	return &Record{
		compiled: c,
		data:     make([]byte, c.byteSize),
	}
}

// Type returns the record's compiled type.
func (r *Record) Type() *CompiledRecord {
	return r.compiled
}

// Bytes returns a copy of the packed storage. The byte layout is the wire
// format: field i occupies bits [offset_i, offset_i+bits_i), LSB-first
// within each byte.
func (r *Record) Bytes() []byte {
	out := make([]byte, len(r.data))
	copy(out, r.data)
	return out
}

// SetBytes replaces the packed storage with a previously captured byte
// image. The length must equal the record's byte size.
func (r *Record) SetBytes(b []byte) error {
	if len(b) != len(r.data) {
		return errors.New(errors.PhaseDecode, errors.KindInvalidData).
			Path(r.compiled.name).
			Got(strconv.Itoa(len(b)) + " bytes").
			Want(strconv.Itoa(len(r.data)) + " bytes").
			Detail("byte image length does not match record size").
			Build()
	}
	copy(r.data, b)
	return nil
}

// Raw returns the field's raw count-bit pattern, undecoded.
func (r *Record) Raw(field string) (uint64, error) {
	f, err := r.lookup(field)
	if err != nil {
		return 0, err
	}
	return bitio.Get(r.data, f.Offset, f.Bits), nil
}

// SetRaw writes a raw bit pattern into the field. Values that do not fit
// the field's width are rejected.
func (r *Record) SetRaw(field string, v uint64) error {
	f, err := r.lookup(field)
	if err != nil {
		return err
	}
	if f.Bits < 64 && v >= 1<<f.Bits {
		return errors.Overflow([]string{r.compiled.name, field}, v, f.Bits)
	}
	bitio.Set(r.data, f.Offset, f.Bits, v)
	return nil
}

// Uint reads an unsigned integer field.
func (r *Record) Uint(field string) (uint64, error) {
	f, err := r.lookupKind(field, KindUint)
	if err != nil {
		return 0, err
	}
	return bitio.Get(r.data, f.Offset, f.Bits), nil
}

// SetUint writes an unsigned integer field. Values >= 2^width are rejected
// with an overflow error rather than silently truncated.
func (r *Record) SetUint(field string, v uint64) error {
	f, err := r.lookupKind(field, KindUint)
	if err != nil {
		return err
	}
	if f.Bits < 64 && v >= 1<<f.Bits {
		return errors.Overflow([]string{r.compiled.name, field}, v, f.Bits)
	}
	bitio.Set(r.data, f.Offset, f.Bits, v)
	return nil
}

// Bool reads a boolean field: any set bit decodes to true.
func (r *Record) Bool(field string) (bool, error) {
	f, err := r.lookupKind(field, KindBool)
	if err != nil {
		return false, err
	}
	return bitio.Get(r.data, f.Offset, f.Bits) != 0, nil
}

// SetBool writes a boolean field.
func (r *Record) SetBool(field string, v bool) error {
	f, err := r.lookupKind(field, KindBool)
	if err != nil {
		return err
	}
	var raw uint64
	if v {
		raw = 1
	}
	bitio.Set(r.data, f.Offset, f.Bits, raw)
	return nil
}

// Variant reads an enum field and decodes its bit pattern to a variant.
// A pattern matching no discriminant returns an unmapped_pattern error.
func (r *Record) Variant(field string) (Variant, error) {
	f, err := r.lookupKind(field, KindEnum)
	if err != nil {
		return Variant{}, err
	}
	e := f.Spec.(*Enum)
	raw := bitio.Get(r.data, f.Offset, f.Bits)
	v, err := e.Decode(raw)
	if err != nil {
		return Variant{}, errors.UnmappedPattern([]string{r.compiled.name, field}, raw, e.name)
	}
	return v, nil
}

// SetVariant writes an enum field by variant name.
func (r *Record) SetVariant(field, variant string) error {
	f, err := r.lookupKind(field, KindEnum)
	if err != nil {
		return err
	}
	disc, err := f.Spec.(*Enum).Encode(variant)
	if err != nil {
		return err
	}
	bitio.Set(r.data, f.Offset, f.Bits, disc)
	return nil
}

func (r *Record) lookup(field string) (CompiledField, error) {
	f, ok := r.compiled.Field(field)
	if !ok {
		return CompiledField{}, errors.NotFound(errors.PhaseEncode, "field", field)
	}
	return f, nil
}

func (r *Record) lookupKind(field string, kind Kind) (CompiledField, error) {
	f, err := r.lookup(field)
	if err != nil {
		return CompiledField{}, err
	}
	if f.Spec.Kind() != kind {
		return CompiledField{}, errors.TypeMismatch(errors.PhaseEncode,
			[]string{r.compiled.name, field}, f.Spec.Kind().String(), kind.String())
	}
	return f, nil
}

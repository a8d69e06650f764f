package bitfield

import (
	stderrors "errors"
	"testing"

	"github.com/wippyai/bitpack/errors"
)

func TestEnumBits(t *testing.T) {
	tests := []struct {
		name     string
		variants int
		bits     int
		carrier  Carrier
	}{
		{"two variants", 2, 1, Carrier8},
		{"four variants", 4, 2, Carrier8},
		{"sixteen variants", 16, 4, Carrier8},
		{"two fifty six variants", 256, 8, Carrier8},
		{"five twelve variants", 512, 9, Carrier16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			names := make([]string, tt.variants)
			for i := range names {
				names[i] = "v" + string(rune('a'+i%26)) + string(rune('a'+i/26))
			}
			e := AutoEnum("e", names...)
			if e.Bits() != tt.bits {
				t.Errorf("Bits() = %d, want %d", e.Bits(), tt.bits)
			}
			if e.Carrier() != tt.carrier {
				t.Errorf("Carrier() = %v, want %v", e.Carrier(), tt.carrier)
			}
		})
	}
}

func TestEnumValidate(t *testing.T) {
	t.Run("three variants rejected", func(t *testing.T) {
		e := AutoEnum("color", "red", "green", "blue")
		err := e.validate([]string{"rec", "color"})
		if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseValidate, Kind: errors.KindInvalidVariantCount}) {
			t.Errorf("err = %v, want invalid_variant_count", err)
		}
	})

	t.Run("zero variants rejected", func(t *testing.T) {
		e := NewEnum("empty")
		err := e.validate(nil)
		if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseValidate, Kind: errors.KindInvalidVariantCount}) {
			t.Errorf("err = %v, want invalid_variant_count", err)
		}
	})

	t.Run("discriminant out of range", func(t *testing.T) {
		// four variants need 2 bits, so discriminant 7 cannot fit
		e := NewEnum("color",
			Variant{"red", 0},
			Variant{"green", 1},
			Variant{"blue", 2},
			Variant{"magenta", 7},
		)
		err := e.validate(nil)
		if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseValidate, Kind: errors.KindDiscriminantOutOfRange}) {
			t.Errorf("err = %v, want discriminant_out_of_range", err)
		}
		var se *errors.Error
		if stderrors.As(err, &se) && !containsSubstring(se.Detail, "magenta") {
			t.Errorf("Detail = %q, should name the offending variant", se.Detail)
		}
	})

	t.Run("dense four variants accepted", func(t *testing.T) {
		e := NewEnum("color",
			Variant{"red", 0},
			Variant{"green", 1},
			Variant{"blue", 2},
			Variant{"alpha", 3},
		)
		if err := e.validate(nil); err != nil {
			t.Errorf("validate = %v, want nil", err)
		}
		if e.Bits() != 2 {
			t.Errorf("Bits() = %d, want 2", e.Bits())
		}
	})

	t.Run("duplicate discriminant rejected", func(t *testing.T) {
		e := NewEnum("e", Variant{"a", 0}, Variant{"b", 0})
		err := e.validate(nil)
		if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseValidate, Kind: errors.KindDuplicateVariant}) {
			t.Errorf("err = %v, want duplicate_variant", err)
		}
	})

	t.Run("duplicate name rejected", func(t *testing.T) {
		e := NewEnum("e", Variant{"a", 0}, Variant{"a", 1})
		err := e.validate(nil)
		if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseValidate, Kind: errors.KindDuplicateVariant}) {
			t.Errorf("err = %v, want duplicate_variant", err)
		}
	})
}

func TestEnumDecode(t *testing.T) {
	e := NewEnum("frame-kind",
		Variant{"data", 0},
		Variant{"ack", 1},
		Variant{"nack", 2},
		Variant{"ping", 3},
	)

	for _, v := range e.Variants() {
		got, err := e.Decode(v.Discriminant)
		if err != nil {
			t.Fatalf("Decode(%d) error: %v", v.Discriminant, err)
		}
		if got.Name != v.Name {
			t.Errorf("Decode(%d) = %q, want %q", v.Discriminant, got.Name, v.Name)
		}
	}

	_, err := e.Decode(4)
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseDecode, Kind: errors.KindUnmappedPattern}) {
		t.Errorf("Decode(4) err = %v, want unmapped_pattern", err)
	}
}

func TestEnumEncode(t *testing.T) {
	e := AutoEnum("dir", "north", "east", "south", "west")

	disc, err := e.Encode("south")
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	if disc != 2 {
		t.Errorf("Encode(south) = %d, want 2", disc)
	}

	if _, err := e.Encode("up"); err == nil {
		t.Error("Encode(up) should fail")
	}
}

func containsSubstring(s, substr string) bool {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}

package bitfield

import "testing"

func TestCarrierTable(t *testing.T) {
	tests := []struct {
		name    string
		bits    int
		carrier Carrier
	}{
		{"one bit", 1, Carrier8},
		{"full byte", 8, Carrier8},
		{"nine bits", 9, Carrier16},
		{"full half word", 16, Carrier16},
		{"seventeen bits", 17, Carrier32},
		{"full word", 32, Carrier32},
		{"thirty three bits", 33, Carrier64},
		{"full double word", 64, Carrier64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Bits(tt.bits)
			if s.Bits() != tt.bits {
				t.Errorf("Bits() = %d, want %d", s.Bits(), tt.bits)
			}
			if s.Carrier() != tt.carrier {
				t.Errorf("Carrier() = %v, want %v", s.Carrier(), tt.carrier)
			}
			if s.Kind() != KindUint {
				t.Errorf("Kind() = %v, want %v", s.Kind(), KindUint)
			}
		})
	}
}

func TestBoolSpecifier(t *testing.T) {
	s := Bool()
	if s.Bits() != 1 {
		t.Errorf("Bits() = %d, want 1", s.Bits())
	}
	if s.Carrier() != Carrier8 {
		t.Errorf("Carrier() = %v, want %v", s.Carrier(), Carrier8)
	}
	if s.Kind() != KindBool {
		t.Errorf("Kind() = %v, want %v", s.Kind(), KindBool)
	}
	if s.String() != "bool" {
		t.Errorf("String() = %q, want %q", s.String(), "bool")
	}
}

func TestSpecifierStrings(t *testing.T) {
	if got := Bits(12).String(); got != "bits(12)" {
		t.Errorf("String() = %q, want %q", got, "bits(12)")
	}
	if got := Carrier16.String(); got != "u16" {
		t.Errorf("Carrier16.String() = %q, want %q", got, "u16")
	}
	e := AutoEnum("color", "red", "green")
	if got := e.String(); got != "enum color" {
		t.Errorf("String() = %q, want %q", got, "enum color")
	}
}

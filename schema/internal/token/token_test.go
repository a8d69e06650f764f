package token

import "testing"

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Token
	}{
		{
			name:  "empty",
			input: "",
			want:  nil,
		},
		{
			name:  "parens",
			input: "()",
			want: []Token{
				{"(", LParen, 1},
				{")", RParen, 1},
			},
		},
		{
			name:  "record header",
			input: "(record header)",
			want: []Token{
				{"(", LParen, 1},
				{"record", Ident, 1},
				{"header", Ident, 1},
				{")", RParen, 1},
			},
		},
		{
			name:  "kebab idents",
			input: "frame-kind is_ok v2",
			want: []Token{
				{"frame-kind", Ident, 1},
				{"is_ok", Ident, 1},
				{"v2", Ident, 1},
			},
		},
		{
			name:  "numbers",
			input: "0 42 0xAB 1_000",
			want: []Token{
				{"0", Number, 1},
				{"42", Number, 1},
				{"0xAB", Number, 1},
				{"1_000", Number, 1},
			},
		},
		{
			name:  "line comment",
			input: "(bits 3) ;; three wide\n(bits 5)",
			want: []Token{
				{"(", LParen, 1},
				{"bits", Ident, 1},
				{"3", Number, 1},
				{")", RParen, 1},
				{"(", LParen, 2},
				{"bits", Ident, 2},
				{"5", Number, 2},
				{")", RParen, 2},
			},
		},
		{
			name:  "block comment",
			input: "a (; skip (; nested ;) this ;) b",
			want: []Token{
				{"a", Ident, 1},
				{"b", Ident, 1},
			},
		},
		{
			name:  "line tracking",
			input: "a\n\nb\nc",
			want: []Token{
				{"a", Ident, 1},
				{"b", Ident, 3},
				{"c", Ident, 4},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d tokens %v, want %d", len(got), got, len(tt.want))
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("token %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

package schema

import (
	"fmt"

	"github.com/wippyai/bitpack/bitfield"
	"github.com/wippyai/bitpack/errors"
	"github.com/wippyai/bitpack/schema/internal/ast"
	"github.com/wippyai/bitpack/schema/internal/parser"
	"github.com/wippyai/bitpack/schema/internal/token"
)

// Compile parses schema text and compiles every record it defines, in
// source order. Any parse or validation error aborts the whole schema;
// no partially-compiled result is returned.
func Compile(source string) ([]*bitfield.CompiledRecord, error) {
	tokens := token.Tokenize(source)
	p := parser.New(tokens)
	file, err := p.Parse()
	if err != nil {
		return nil, err
	}
	return lower(file)
}

func lower(file *ast.File) ([]*bitfield.CompiledRecord, error) {
	enums := make(map[string]*bitfield.Enum, len(file.Enums))
	for _, e := range file.Enums {
		if _, dup := enums[e.Name]; dup {
			return nil, errors.InvalidData(errors.PhaseCompile, []string{e.Name},
				fmt.Sprintf("enum %q defined more than once", e.Name))
		}
		variants := make([]bitfield.Variant, len(e.Variants))
		for i, v := range e.Variants {
			variants[i] = bitfield.Variant{Name: v.Name, Discriminant: v.Discriminant}
		}
		enums[e.Name] = bitfield.NewEnum(e.Name, variants...)
	}

	seen := make(map[string]bool, len(file.Records))
	records := make([]*bitfield.CompiledRecord, 0, len(file.Records))

	for _, r := range file.Records {
		if seen[r.Name] {
			return nil, errors.InvalidData(errors.PhaseCompile, []string{r.Name},
				fmt.Sprintf("record %q defined more than once", r.Name))
		}
		seen[r.Name] = true

		fields := make([]bitfield.FieldSpec, len(r.Fields))
		for i, f := range r.Fields {
			spec, err := resolveType(f.Type, enums, []string{r.Name, f.Name})
			if err != nil {
				return nil, err
			}
			fields[i] = bitfield.FieldSpec{
				Name:         f.Name,
				Spec:         spec,
				DeclaredBits: f.Expect,
			}
		}

		rec, err := bitfield.Compile(r.Name, fields)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, nil
}

func resolveType(t ast.TypeRef, enums map[string]*bitfield.Enum, path []string) (bitfield.Specifier, error) {
	switch t.Kind {
	case ast.TypeBits:
		return bitfield.Bits(t.Bits), nil
	case ast.TypeEnum:
		e, ok := enums[t.Builtin]
		if !ok {
			return nil, errors.NotFound(errors.PhaseCompile, "enum", t.Builtin)
		}
		return e, nil
	case ast.TypeBuiltin:
		switch t.Builtin {
		case "bool":
			return bitfield.Bool(), nil
		case "u8":
			return bitfield.Bits(8), nil
		case "u16":
			return bitfield.Bits(16), nil
		case "u32":
			return bitfield.Bits(32), nil
		case "u64":
			return bitfield.Bits(64), nil
		default:
			return nil, errors.New(errors.PhaseCompile, errors.KindNotFound).
				Path(path...).
				Detail("unknown type %q", t.Builtin).
				Build()
		}
	default:
		return nil, errors.InvalidData(errors.PhaseCompile, path, "unresolvable field type")
	}
}

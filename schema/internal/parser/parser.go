package parser

import (
	"strconv"
	"strings"

	"github.com/wippyai/bitpack/errors"
	"github.com/wippyai/bitpack/schema/internal/ast"
	"github.com/wippyai/bitpack/schema/internal/token"
)

type Parser struct {
	tokens []token.Token
	pos    int
}

func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse consumes the whole token stream into a schema file.
func (p *Parser) Parse() (*ast.File, error) {
	file := &ast.File{}

	for p.peek() != nil {
		open, err := p.expect(token.LParen)
		if err != nil {
			return nil, err
		}
		kw, err := p.expect(token.Ident)
		if err != nil {
			return nil, err
		}

		switch kw.Value {
		case "record":
			rec, err := p.parseRecord(open.Line)
			if err != nil {
				return nil, err
			}
			file.Records = append(file.Records, *rec)
		case "enum":
			en, err := p.parseEnum(open.Line)
			if err != nil {
				return nil, err
			}
			file.Enums = append(file.Enums, *en)
		default:
			return nil, errors.ParseFailed(kw.Line, "expected record or enum, got %q", kw.Value)
		}
	}

	return file, nil
}

func (p *Parser) parseRecord(line int) (*ast.Record, error) {
	name, err := p.expect(token.Ident)
	if err != nil {
		return nil, err
	}

	rec := &ast.Record{Name: name.Value, Line: line}

	for {
		t := p.peek()
		if t == nil {
			return nil, errors.ParseFailed(line, "unterminated record %q", rec.Name)
		}
		if t.Type == token.RParen {
			p.next()
			return rec, nil
		}

		field, err := p.parseField()
		if err != nil {
			return nil, err
		}
		rec.Fields = append(rec.Fields, *field)
	}
}

func (p *Parser) parseField() (*ast.Field, error) {
	open, err := p.expect(token.LParen)
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword("field"); err != nil {
		return nil, err
	}
	name, err := p.expect(token.Ident)
	if err != nil {
		return nil, err
	}

	field := &ast.Field{Name: name.Value, Line: open.Line}

	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}
	field.Type = *typ

	// optional (expect N) clause
	if t := p.peek(); t != nil && t.Type == token.LParen {
		p.next()
		if err := p.expectKeyword("expect"); err != nil {
			return nil, err
		}
		n, err := p.parseNumber()
		if err != nil {
			return nil, err
		}
		field.Expect = int(n)
		if _, err := p.expect(token.RParen); err != nil {
			return nil, err
		}
	}

	if _, err := p.expect(token.RParen); err != nil {
		return nil, err
	}
	return field, nil
}

func (p *Parser) parseType() (*ast.TypeRef, error) {
	t := p.next()
	if t == nil {
		return nil, errors.ParseFailed(0, "expected field type, got end of input")
	}

	switch t.Type {
	case token.Ident:
		return &ast.TypeRef{Kind: ast.TypeBuiltin, Builtin: t.Value}, nil

	case token.LParen:
		kw, err := p.expect(token.Ident)
		if err != nil {
			return nil, err
		}
		switch kw.Value {
		case "bits":
			n, err := p.parseNumber()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.RParen); err != nil {
				return nil, err
			}
			return &ast.TypeRef{Kind: ast.TypeBits, Bits: int(n)}, nil
		case "enum":
			name, err := p.expect(token.Ident)
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.RParen); err != nil {
				return nil, err
			}
			return &ast.TypeRef{Kind: ast.TypeEnum, Builtin: name.Value}, nil
		default:
			return nil, errors.ParseFailed(kw.Line, "expected bits or enum, got %q", kw.Value)
		}

	default:
		return nil, errors.ParseFailed(t.Line, "expected field type, got %q", t.Value)
	}
}

func (p *Parser) parseEnum(line int) (*ast.Enum, error) {
	name, err := p.expect(token.Ident)
	if err != nil {
		return nil, err
	}

	en := &ast.Enum{Name: name.Value, Line: line}
	next := uint64(0)

	for {
		t := p.peek()
		if t == nil {
			return nil, errors.ParseFailed(line, "unterminated enum %q", en.Name)
		}
		if t.Type == token.RParen {
			p.next()
			return en, nil
		}

		open, err := p.expect(token.LParen)
		if err != nil {
			return nil, err
		}
		if err := p.expectKeyword("variant"); err != nil {
			return nil, err
		}
		vname, err := p.expect(token.Ident)
		if err != nil {
			return nil, err
		}

		v := ast.Variant{Name: vname.Value, Line: open.Line}
		if nt := p.peek(); nt != nil && nt.Type == token.Number {
			n, err := p.parseNumber()
			if err != nil {
				return nil, err
			}
			v.Discriminant = n
			v.Explicit = true
			next = n + 1
		} else {
			v.Discriminant = next
			next++
		}

		if _, err := p.expect(token.RParen); err != nil {
			return nil, err
		}
		en.Variants = append(en.Variants, v)
	}
}

func (p *Parser) parseNumber() (uint64, error) {
	t, err := p.expect(token.Number)
	if err != nil {
		return 0, err
	}
	s := strings.ReplaceAll(t.Value, "_", "")
	n, perr := strconv.ParseUint(s, 0, 64)
	if perr != nil {
		return 0, errors.ParseFailed(t.Line, "invalid number %q", t.Value)
	}
	return n, nil
}

func (p *Parser) expectKeyword(kw string) error {
	t, err := p.expect(token.Ident)
	if err != nil {
		return err
	}
	if t.Value != kw {
		return errors.ParseFailed(t.Line, "expected %q, got %q", kw, t.Value)
	}
	return nil
}

func (p *Parser) peek() *token.Token {
	if p.pos >= len(p.tokens) {
		return nil
	}
	return &p.tokens[p.pos]
}

func (p *Parser) next() *token.Token {
	if p.pos >= len(p.tokens) {
		return nil
	}
	t := &p.tokens[p.pos]
	p.pos++
	return t
}

func (p *Parser) expect(typ token.Type) (*token.Token, error) {
	t := p.next()
	if t == nil {
		return nil, errors.ParseFailed(p.lastLine(), "unexpected end of input, expected %v", typ)
	}
	if t.Type != typ {
		return nil, errors.ParseFailed(t.Line, "expected %v, got %q", typ, t.Value)
	}
	return t, nil
}

func (p *Parser) lastLine() int {
	if len(p.tokens) == 0 {
		return 0
	}
	return p.tokens[len(p.tokens)-1].Line
}

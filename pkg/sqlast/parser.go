package sqlast

import (
	"fmt"
	"strings"
	"unicode"
)

// ParseError represents a kind expression parsing error.
type ParseError struct {
	Pos     int // byte offset into the input
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at offset %d: %s", e.Pos, e.Message)
}

// ParseKindExpr parses the textual form of a model kind declaration:
//
//	VIEW
//	SEED (path 'data/users.csv', batch_size 500)
//	INCREMENTAL_BY_TIME_RANGE (time_column (ds, '%Y-%m-%d'), lookback 2)
//
// A bare tag with no options yields an *Identifier; a tag with a property
// list yields a *KindDef.
func ParseKindExpr(input string) (Expr, error) {
	p := &kindParser{input: input}
	p.next()

	tag, err := p.expectIdent("kind name")
	if err != nil {
		return nil, err
	}

	if p.tok.typ == tokEOF {
		return &Identifier{Value: tag}, nil
	}

	if err := p.expect(tokLParen); err != nil {
		return nil, err
	}

	def := &KindDef{This: tag}
	for {
		name, err := p.expectIdent("property name")
		if err != nil {
			return nil, err
		}
		value, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		def.Expressions = append(def.Expressions, &Property{This: name, Value: value})

		if p.tok.typ == tokComma {
			p.next()
			continue
		}
		break
	}
	if err := p.expect(tokRParen); err != nil {
		return nil, err
	}
	if p.tok.typ != tokEOF {
		return nil, p.errorf("unexpected trailing input %q", p.tok.text)
	}
	return def, nil
}

type tokType int

const (
	tokEOF tokType = iota
	tokIdent
	tokString
	tokNumber
	tokLParen
	tokRParen
	tokComma
	tokDot
	tokInvalid
)

type kindToken struct {
	typ  tokType
	text string
	pos  int
}

type kindParser struct {
	input string
	pos   int
	tok   kindToken
}

func (p *kindParser) errorf(format string, args ...any) *ParseError {
	return &ParseError{Pos: p.tok.pos, Message: fmt.Sprintf(format, args...)}
}

// next advances to the next token.
func (p *kindParser) next() {
	for p.pos < len(p.input) && unicode.IsSpace(rune(p.input[p.pos])) {
		p.pos++
	}
	start := p.pos
	if p.pos >= len(p.input) {
		p.tok = kindToken{typ: tokEOF, pos: start}
		return
	}

	c := p.input[p.pos]
	switch {
	case c == '(':
		p.pos++
		p.tok = kindToken{typ: tokLParen, text: "(", pos: start}
	case c == ')':
		p.pos++
		p.tok = kindToken{typ: tokRParen, text: ")", pos: start}
	case c == ',':
		p.pos++
		p.tok = kindToken{typ: tokComma, text: ",", pos: start}
	case c == '.':
		p.pos++
		p.tok = kindToken{typ: tokDot, text: ".", pos: start}
	case c == '\'':
		p.pos++
		var sb strings.Builder
		for p.pos < len(p.input) {
			if p.input[p.pos] == '\'' {
				// '' escapes a quote inside the string
				if p.pos+1 < len(p.input) && p.input[p.pos+1] == '\'' {
					sb.WriteByte('\'')
					p.pos += 2
					continue
				}
				p.pos++
				p.tok = kindToken{typ: tokString, text: sb.String(), pos: start}
				return
			}
			sb.WriteByte(p.input[p.pos])
			p.pos++
		}
		p.tok = kindToken{typ: tokInvalid, text: "unterminated string literal", pos: start}
	case c == '-' || (c >= '0' && c <= '9'):
		p.pos++
		for p.pos < len(p.input) && (p.input[p.pos] >= '0' && p.input[p.pos] <= '9' || p.input[p.pos] == '.') {
			p.pos++
		}
		p.tok = kindToken{typ: tokNumber, text: p.input[start:p.pos], pos: start}
	case isIdentStart(c):
		p.pos++
		for p.pos < len(p.input) && isIdentPart(p.input[p.pos]) {
			p.pos++
		}
		p.tok = kindToken{typ: tokIdent, text: p.input[start:p.pos], pos: start}
	default:
		p.tok = kindToken{typ: tokInvalid, text: fmt.Sprintf("unexpected character %q", c), pos: start}
	}
}

func isIdentStart(c byte) bool {
	return c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || c >= '0' && c <= '9'
}

func (p *kindParser) expect(t tokType) error {
	if p.tok.typ == tokInvalid {
		return p.errorf("%s", p.tok.text)
	}
	if p.tok.typ != t {
		return p.errorf("unexpected token %q", p.tok.text)
	}
	p.next()
	return nil
}

func (p *kindParser) expectIdent(what string) (string, error) {
	if p.tok.typ != tokIdent {
		return "", p.errorf("expected %s, got %q", what, p.tok.text)
	}
	text := p.tok.text
	p.next()
	return text, nil
}

// parseValue parses a property value: a scalar or a parenthesized tuple.
func (p *kindParser) parseValue() (Expr, error) {
	if p.tok.typ == tokLParen {
		p.next()
		tuple := &Tuple{}
		for {
			e, err := p.parseScalar()
			if err != nil {
				return nil, err
			}
			tuple.Exprs = append(tuple.Exprs, e)
			if p.tok.typ == tokComma {
				p.next()
				continue
			}
			break
		}
		if err := p.expect(tokRParen); err != nil {
			return nil, err
		}
		return tuple, nil
	}
	return p.parseScalar()
}

// parseScalar parses an identifier, qualified column, or literal.
func (p *kindParser) parseScalar() (Expr, error) {
	switch p.tok.typ {
	case tokString:
		text := p.tok.text
		p.next()
		return &Literal{Type: LiteralString, Value: text}, nil
	case tokNumber:
		text := p.tok.text
		p.next()
		return &Literal{Type: LiteralNumber, Value: text}, nil
	case tokIdent:
		text := p.tok.text
		p.next()
		switch strings.ToLower(text) {
		case "true", "false":
			return &Literal{Type: LiteralBool, Value: strings.ToLower(text)}, nil
		}
		if p.tok.typ == tokDot {
			p.next()
			col, err := p.expectIdent("column name")
			if err != nil {
				return nil, err
			}
			return &ColumnRef{Table: text, Column: col}, nil
		}
		return &Identifier{Value: text}, nil
	case tokInvalid:
		return nil, p.errorf("%s", p.tok.text)
	default:
		return nil, p.errorf("expected value, got %q", p.tok.text)
	}
}

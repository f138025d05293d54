// Package sqlast defines the expression nodes exchanged with the model kind
// core: identifiers, column references, literals, tuples, and the KIND
// definition node produced when a model declaration is parsed. Every node can
// render itself back to SQL text, so a classified kind can be re-emitted in
// the form it was parsed from.
package sqlast

import (
	"strconv"
	"strings"
)

// Expr represents an expression value in a kind declaration.
type Expr interface {
	exprNode()

	// SQL renders the node as SQL text.
	SQL() string

	// Name returns the bare textual name of the node: the identifier text,
	// the column name, or the literal value. Composite nodes return "".
	Name() string
}

// Identifier represents a bare identifier.
type Identifier struct {
	Value string
}

func (*Identifier) exprNode() {}

// SQL renders the identifier.
func (i *Identifier) SQL() string { return i.Value }

// Name returns the identifier text.
func (i *Identifier) Name() string { return i.Value }

// ColumnRef represents a column reference (possibly qualified).
type ColumnRef struct {
	Table  string // optional table/alias qualifier
	Column string
}

func (*ColumnRef) exprNode() {}

// SQL renders the column reference.
func (c *ColumnRef) SQL() string {
	if c.Table != "" {
		return c.Table + "." + c.Column
	}
	return c.Column
}

// Name returns the unqualified column name.
func (c *ColumnRef) Name() string { return c.Column }

// LiteralType represents the type of a literal.
type LiteralType int

// LiteralType constants for literal value types.
const (
	LiteralNumber LiteralType = iota
	LiteralString
	LiteralBool
)

// Literal represents a literal value.
type Literal struct {
	Type  LiteralType
	Value string
}

func (*Literal) exprNode() {}

// SQL renders the literal, quoting strings with single quotes.
func (l *Literal) SQL() string {
	if l.Type == LiteralString {
		return "'" + strings.ReplaceAll(l.Value, "'", "''") + "'"
	}
	return l.Value
}

// Name returns the literal's inner text.
func (l *Literal) Name() string { return l.Value }

// IsInt reports whether the literal is an integer number.
func (l *Literal) IsInt() bool {
	if l.Type != LiteralNumber {
		return false
	}
	_, err := strconv.Atoi(l.Value)
	return err == nil
}

// Bool returns the boolean value of a bool literal.
func (l *Literal) Bool() bool {
	return l.Type == LiteralBool && strings.EqualFold(l.Value, "true")
}

// Tuple represents a parenthesized list of expressions.
type Tuple struct {
	Exprs []Expr
}

func (*Tuple) exprNode() {}

// SQL renders the tuple.
func (t *Tuple) SQL() string {
	parts := make([]string, len(t.Exprs))
	for i, e := range t.Exprs {
		parts[i] = e.SQL()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Name returns "" since tuples have no textual name.
func (t *Tuple) Name() string { return "" }

// Property represents a named option inside a KIND definition,
// e.g. "batch_size 7" or "time_column (ds, '%Y-%m-%d')".
type Property struct {
	This  string
	Value Expr
}

func (*Property) exprNode() {}

// SQL renders the property as "name value".
func (p *Property) SQL() string {
	if p.Value == nil {
		return p.This
	}
	return p.This + " " + p.Value.SQL()
}

// Name returns the property name.
func (p *Property) Name() string { return p.This }

// KindDef is the structured form of a model kind declaration: a primary tag
// plus zero or more named properties. This is the wire form coming from
// parsed model source text.
type KindDef struct {
	This        string
	Expressions []*Property
}

func (*KindDef) exprNode() {}

// SQL renders the kind definition, omitting the parentheses when the kind
// carries no options.
func (k *KindDef) SQL() string {
	if len(k.Expressions) == 0 {
		return k.This
	}
	parts := make([]string, len(k.Expressions))
	for i, p := range k.Expressions {
		parts[i] = p.SQL()
	}
	return k.This + " (" + strings.Join(parts, ", ") + ")"
}

// Name returns the kind tag.
func (k *KindDef) Name() string { return k.This }

// Property returns the named property, or nil if absent.
func (k *KindDef) Property(name string) *Property {
	for _, p := range k.Expressions {
		if strings.EqualFold(p.This, name) {
			return p
		}
	}
	return nil
}

// ToColumn builds a column reference from a possibly qualified name.
func ToColumn(name string) *ColumnRef {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return &ColumnRef{Table: name[:i], Column: name[i+1:]}
	}
	return &ColumnRef{Column: name}
}

// String builds a string literal.
func String(v string) *Literal {
	return &Literal{Type: LiteralString, Value: v}
}

// Number builds an integer number literal.
func Number(v int) *Literal {
	return &Literal{Type: LiteralNumber, Value: strconv.Itoa(v)}
}

// Bool builds a boolean literal.
func Bool(v bool) *Literal {
	return &Literal{Type: LiteralBool, Value: strconv.FormatBool(v)}
}

package sqlast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExprSQL(t *testing.T) {
	tests := []struct {
		name string
		expr Expr
		want string
	}{
		{"identifier", &Identifier{Value: "ds"}, "ds"},
		{"column", &ColumnRef{Column: "ds"}, "ds"},
		{"qualified column", &ColumnRef{Table: "t", Column: "ds"}, "t.ds"},
		{"number", Number(42), "42"},
		{"bool", Bool(true), "true"},
		{"string", String("x.csv"), "'x.csv'"},
		{"string with quote", String("it's"), "'it''s'"},
		{"tuple", &Tuple{Exprs: []Expr{&Identifier{Value: "a"}, Number(1)}}, "(a, 1)"},
		{"property", &Property{This: "batch_size", Value: Number(7)}, "batch_size 7"},
		{"bare property", &Property{This: "materialized"}, "materialized"},
		{"bare kind", &KindDef{This: "FULL"}, "FULL"},
		{
			"kind with options",
			&KindDef{This: "SEED", Expressions: []*Property{
				{This: "path", Value: String("x.csv")},
				{This: "batch_size", Value: Number(500)},
			}},
			"SEED (path 'x.csv', batch_size 500)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.expr.SQL())
		})
	}
}

func TestExprName(t *testing.T) {
	assert.Equal(t, "ds", (&Identifier{Value: "ds"}).Name())
	assert.Equal(t, "ds", (&ColumnRef{Table: "t", Column: "ds"}).Name())
	assert.Equal(t, "500", Number(500).Name())
	assert.Equal(t, "x.csv", String("x.csv").Name())
	assert.Equal(t, "", (&Tuple{}).Name())
	assert.Equal(t, "SEED", (&KindDef{This: "SEED"}).Name())
}

func TestLiteralPredicates(t *testing.T) {
	assert.True(t, Number(10).IsInt())
	assert.False(t, String("10").IsInt())
	assert.False(t, (&Literal{Type: LiteralNumber, Value: "1.5"}).IsInt())

	assert.True(t, Bool(true).Bool())
	assert.False(t, Bool(false).Bool())
	assert.False(t, String("true").Bool())
}

func TestToColumn(t *testing.T) {
	assert.Equal(t, &ColumnRef{Column: "ds"}, ToColumn("ds"))
	assert.Equal(t, &ColumnRef{Table: "t", Column: "ds"}, ToColumn("t.ds"))
	assert.Equal(t, &ColumnRef{Table: "db.t", Column: "ds"}, ToColumn("db.t.ds"))
}

func TestKindDefProperty(t *testing.T) {
	def := &KindDef{This: "SEED", Expressions: []*Property{
		{This: "path", Value: String("x.csv")},
	}}

	assert.NotNil(t, def.Property("PATH"))
	assert.Nil(t, def.Property("batch_size"))
}

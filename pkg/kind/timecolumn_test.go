package kind

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/modelspec/pkg/sqlast"
)

func TestTimeColumn_Shapes(t *testing.T) {
	want := TimeColumn{Column: "ds"}

	fromIdent, err := TimeColumnFromValue(&sqlast.Identifier{Value: "ds"})
	require.NoError(t, err)
	assert.Equal(t, want, fromIdent)

	fromColumn, err := TimeColumnFromValue(sqlast.ToColumn("ds"))
	require.NoError(t, err)
	assert.Equal(t, want, fromColumn)

	fromString, err := TimeColumnFromValue("ds")
	require.NoError(t, err)
	assert.Equal(t, want, fromString)

	fromTuple, err := TimeColumnFromValue(&sqlast.Tuple{Exprs: []sqlast.Expr{
		&sqlast.Identifier{Value: "ds"},
	}})
	require.NoError(t, err)
	assert.Equal(t, want, fromTuple)
}

func TestTimeColumn_TupleWithFormat(t *testing.T) {
	tc, err := TimeColumnFromValue(&sqlast.Tuple{Exprs: []sqlast.Expr{
		&sqlast.Identifier{Value: "ds"},
		sqlast.String("%Y-%m-%d"),
	}})
	require.NoError(t, err)
	assert.Equal(t, TimeColumn{Column: "ds", Format: "%Y-%m-%d"}, tc)
}

func TestTimeColumn_FromMap(t *testing.T) {
	tc, err := TimeColumnFromValue(map[string]any{"column": "ds", "format": "%Y"})
	require.NoError(t, err)
	assert.Equal(t, TimeColumn{Column: "ds", Format: "%Y"}, tc)
}

func TestTimeColumn_Passthrough(t *testing.T) {
	orig := TimeColumn{Column: "ds", Format: "%Y"}

	tc, err := TimeColumnFromValue(orig)
	require.NoError(t, err)
	assert.Equal(t, orig, tc)

	tc, err = TimeColumnFromValue(&orig)
	require.NoError(t, err)
	assert.Equal(t, orig, tc)
}

func TestTimeColumn_EmptyColumn(t *testing.T) {
	_, err := NewTimeColumn("", "")
	require.Error(t, err)
	assert.EqualError(t, err, "Time Column cannot be empty.")

	_, err = TimeColumnFromValue("")
	require.Error(t, err)
	assert.EqualError(t, err, "Time Column cannot be empty.")
}

func TestTimeColumn_Expression(t *testing.T) {
	tc := TimeColumn{Column: "ds"}
	assert.Equal(t, "ds", tc.Expression().SQL())

	tc = TimeColumn{Column: "ds", Format: "%Y-%m-%d"}
	assert.Equal(t, "(ds, '%Y-%m-%d')", tc.Expression().SQL())
}

func TestTimeColumn_ToExpressionDialect(t *testing.T) {
	tc := TimeColumn{Column: "ds", Format: "%Y-%m-%d"}

	// Canonical dialect leaves the format untouched.
	assert.Equal(t, "(ds, '%Y-%m-%d')", tc.ToExpression("").SQL())

	// Postgres rewrites canonical placeholders into TO_CHAR tokens.
	assert.Equal(t, "(ds, 'YYYY-MM-DD')", tc.ToExpression("postgres").SQL())

	// DuckDB uses the canonical placeholders natively.
	assert.Equal(t, "(ds, '%Y-%m-%d')", tc.ToExpression("duckdb").SQL())

	// Unregistered dialect names fall back to the canonical form.
	assert.Equal(t, "(ds, '%Y-%m-%d')", tc.ToExpression("oracle").SQL())
}

func TestTimeColumn_ToProperty(t *testing.T) {
	tc := TimeColumn{Column: "ds", Format: "%Y"}
	p := tc.ToProperty("postgres")
	assert.Equal(t, "time_column", p.This)
	assert.Equal(t, "time_column (ds, 'YYYY')", p.SQL())
}

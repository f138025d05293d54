package kind

import (
	"github.com/go-viper/mapstructure/v2"

	"github.com/leapstack-labs/modelspec/pkg/dialect"
	"github.com/leapstack-labs/modelspec/pkg/sqlast"
)

// TimeColumn pairs a column name with an optional time format. The format is
// stored in the canonical placeholder form; dialect-aware serialization
// rewrites it into the target dialect's native syntax.
type TimeColumn struct {
	Column string `mapstructure:"column"`
	Format string `mapstructure:"format,omitempty"`
}

// NewTimeColumn builds a TimeColumn, rejecting an empty column name.
func NewTimeColumn(column, format string) (TimeColumn, error) {
	if column == "" {
		return TimeColumn{}, errorf("Time Column cannot be empty.")
	}
	return TimeColumn{Column: column, Format: format}, nil
}

// TimeColumnFromExpr normalizes an AST shape into a TimeColumn:
// a 1-2 element tuple carries (column, format); any other node contributes
// its name as the column.
func TimeColumnFromExpr(e sqlast.Expr) (TimeColumn, error) {
	if tuple, ok := e.(*sqlast.Tuple); ok {
		var column, format string
		if len(tuple.Exprs) > 0 {
			column = tuple.Exprs[0].Name()
		}
		if len(tuple.Exprs) > 1 {
			format = tuple.Exprs[1].Name()
		}
		return NewTimeColumn(column, format)
	}
	return NewTimeColumn(e.Name(), "")
}

// TimeColumnFromValue normalizes any admissible input shape into a
// TimeColumn: an already-typed value passes through, AST expressions go
// through TimeColumnFromExpr, strings become the column name, and mappings
// are decoded by field.
func TimeColumnFromValue(v any) (TimeColumn, error) {
	switch tv := v.(type) {
	case TimeColumn:
		return tv, nil
	case *TimeColumn:
		return *tv, nil
	case sqlast.Expr:
		return TimeColumnFromExpr(tv)
	case string:
		return NewTimeColumn(tv, "")
	case map[string]any:
		var tc TimeColumn
		if err := mapstructure.Decode(tv, &tc); err != nil {
			return TimeColumn{}, errorf("invalid time_column value: %v", err)
		}
		return NewTimeColumn(tc.Column, tc.Format)
	default:
		return TimeColumn{}, errorf("invalid time_column value '%v'", v)
	}
}

// Expression returns the canonical AST form: a bare column reference, or a
// (column, format) tuple when a format is set.
func (tc TimeColumn) Expression() sqlast.Expr {
	column := sqlast.ToColumn(tc.Column)
	if tc.Format == "" {
		return column
	}
	return &sqlast.Tuple{Exprs: []sqlast.Expr{column, sqlast.String(tc.Format)}}
}

// ToExpression returns the AST form with the format rewritten into the
// target dialect's native time placeholders. Empty and unregistered dialect
// names render the canonical form untranslated; resolve the name through
// dialect.Get first when that distinction matters.
func (tc TimeColumn) ToExpression(dialectName string) sqlast.Expr {
	column := sqlast.ToColumn(tc.Column)
	if tc.Format == "" {
		return column
	}
	d := dialect.GetOrCanonical(dialectName)
	return &sqlast.Tuple{Exprs: []sqlast.Expr{
		column,
		sqlast.String(d.FormatTimeTo(tc.Format)),
	}}
}

// ToProperty wraps the dialect-aware expression in a time_column property.
func (tc TimeColumn) ToProperty(dialectName string) *sqlast.Property {
	return &sqlast.Property{This: "time_column", Value: tc.ToExpression(dialectName)}
}

package kind

// Per-field coercion from AST-literal-or-raw values. Coercion always runs
// before the whole-object invariant checks in the constructors.

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/leapstack-labs/modelspec/pkg/sqlast"
)

// coerceInt coerces an optional integer field. AST expressions contribute
// their textual name; raw ints, floats with integral values, and numeric
// strings are accepted. Negative values are rejected.
func coerceInt(v any, field string) (*int, error) {
	if v == nil {
		return nil, nil
	}

	invalid := func(offending any) error {
		return errorf("Invalid value %v for %s. The value should be greater than 0", offending, field)
	}

	var num int
	switch tv := v.(type) {
	case sqlast.Expr:
		n, err := strconv.Atoi(tv.Name())
		if err != nil {
			return nil, invalid(tv.Name())
		}
		num = n
	case int:
		num = tv
	case int64:
		num = int(tv)
	case float64:
		num = int(tv)
		if float64(num) != tv {
			return nil, invalid(tv)
		}
	case string:
		n, err := strconv.Atoi(tv)
		if err != nil {
			return nil, invalid(tv)
		}
		num = n
	default:
		return nil, invalid(v)
	}

	if num < 0 {
		return nil, invalid(num)
	}
	return &num, nil
}

// coerceBool coerces an AST truthy value or raw boolean.
func coerceBool(v any) bool {
	switch tv := v.(type) {
	case sqlast.Expr:
		name := strings.ToLower(tv.Name())
		return name == "true" || name == "1"
	case bool:
		return tv
	case string:
		return strings.EqualFold(tv, "true") || tv == "1"
	case int:
		return tv != 0
	default:
		return false
	}
}

// coerceUniqueKey normalizes the unique_key shapes: a single identifier, a
// tuple of identifiers, or an arbitrary sequence of names.
func coerceUniqueKey(v any) ([]string, error) {
	switch tv := v.(type) {
	case *sqlast.Tuple:
		keys := make([]string, len(tv.Exprs))
		for i, e := range tv.Exprs {
			keys[i] = e.Name()
		}
		return keys, nil
	case sqlast.Expr:
		return []string{tv.Name()}, nil
	case string:
		return []string{tv}, nil
	case []string:
		return tv, nil
	case []any:
		keys := make([]string, len(tv))
		for i, item := range tv {
			if e, ok := item.(sqlast.Expr); ok {
				keys[i] = e.Name()
			} else {
				keys[i] = fmt.Sprint(item)
			}
		}
		return keys, nil
	default:
		return nil, errorf("invalid unique_key value '%v'", v)
	}
}

// coercePath extracts a string literal's inner text, or stringifies the
// raw value.
func coercePath(v any) string {
	if e, ok := v.(sqlast.Expr); ok {
		return e.Name()
	}
	return fmt.Sprint(v)
}

// coerceSeedBatchSize coerces the seed batch size: integer literal or raw
// int. A nil value stays nil so the constructor picks the default; the
// positivity check also lives in the constructor.
func coerceSeedBatchSize(v any) (*int, error) {
	if v == nil {
		return nil, nil
	}

	var num int
	switch tv := v.(type) {
	case sqlast.Expr:
		l, ok := tv.(*sqlast.Literal)
		if !ok || !l.IsInt() {
			return nil, errorf("Seed batch size must be an integer value")
		}
		num, _ = strconv.Atoi(l.Value)
	case int:
		num = tv
	case int64:
		num = int(tv)
	case float64:
		num = int(tv)
		if float64(num) != tv {
			return nil, errorf("Seed batch size must be an integer value")
		}
	default:
		return nil, errorf("Seed batch size must be an integer value")
	}

	return &num, nil
}

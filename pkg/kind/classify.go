package kind

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/modelspec/pkg/sqlast"
)

// Input is one admissible classifier input shape. Wrap a value with one of
// FromKind, FromNode, FromMap, FromExpr, or FromString before classifying.
type Input interface {
	classifierInput()
}

type kindInput struct{ kind Kind }
type nodeInput struct{ node *sqlast.KindDef }
type mapInput struct{ m map[string]any }
type exprInput struct{ expr sqlast.Expr }
type stringInput struct{ text string }

func (kindInput) classifierInput()   {}
func (nodeInput) classifierInput()   {}
func (mapInput) classifierInput()    {}
func (exprInput) classifierInput()   {}
func (stringInput) classifierInput() {}

// FromKind wraps an already-typed kind.
func FromKind(k Kind) Input { return kindInput{kind: k} }

// FromNode wraps a structured KIND node.
func FromNode(n *sqlast.KindDef) Input { return nodeInput{node: n} }

// FromMap wraps a mapping with a "name" entry holding the tag.
func FromMap(m map[string]any) Input { return mapInput{m: m} }

// FromExpr wraps any other AST expression; its textual name is the tag.
func FromExpr(e sqlast.Expr) Input { return exprInput{expr: e} }

// FromString wraps bare tag text.
func FromString(s string) Input { return stringInput{text: s} }

// Classify resolves an input to exactly one concrete kind variant, or fails
// with a ConfigError. A nil input yields a nil kind. An already-typed kind
// is returned unchanged without re-running validation.
func Classify(in Input) (Kind, error) {
	switch v := in.(type) {
	case nil:
		return nil, nil
	case kindInput:
		return v.kind, nil
	case nodeInput:
		if v.node == nil {
			return nil, nil
		}
		return classifyNode(v.node)
	case mapInput:
		if v.m == nil {
			return nil, nil
		}
		return classifyMap(v.m)
	case exprInput:
		if v.expr == nil {
			return nil, nil
		}
		if def, ok := v.expr.(*sqlast.KindDef); ok {
			return classifyNode(def)
		}
		return classifyText(v.expr.Name())
	case stringInput:
		return classifyText(v.text)
	default:
		return nil, errorf("Invalid model kind '%v'", in)
	}
}

// ClassifyValue resolves an untyped value by shape. This is the entry point
// for configuration that arrives as decoded YAML or similar loosely-typed
// data.
func ClassifyValue(v any) (Kind, error) {
	switch tv := v.(type) {
	case nil:
		return nil, nil
	case Kind:
		return tv, nil
	case *sqlast.KindDef:
		return Classify(FromNode(tv))
	case map[string]any:
		return Classify(FromMap(tv))
	case sqlast.Expr:
		return Classify(FromExpr(tv))
	case Name:
		return classifyText(string(tv))
	case string:
		return classifyText(tv)
	default:
		return classifyText(fmt.Sprint(v))
	}
}

// classifyNode dispatches a structured KIND node by its tag and constructs
// the variant from its named properties.
func classifyNode(node *sqlast.KindDef) (Kind, error) {
	props := make(map[string]any, len(node.Expressions))
	for _, p := range node.Expressions {
		var value any
		if p.Value != nil {
			value = p.Value
		}
		props[strings.ToLower(p.This)] = value
	}
	return dispatch(node.This, props)
}

// classifyMap dispatches a mapping by its "name" entry and constructs the
// variant from the remaining entries.
func classifyMap(m map[string]any) (Kind, error) {
	var tag string
	props := make(map[string]any, len(m))
	for key, value := range m {
		if strings.EqualFold(key, "name") {
			tag = fmt.Sprint(value)
			continue
		}
		props[strings.ToLower(key)] = value
	}
	return dispatch(tag, props)
}

// dispatch maps a tag to its variant constructor; tags without a dedicated
// variant fall back to the bare kind, whose name parsing rejects anything
// outside the closed set.
func dispatch(tag string, props map[string]any) (Kind, error) {
	switch Name(strings.ToUpper(tag)) {
	case IncrementalByTimeRange:
		return newIncrementalByTimeRangeFromProps(props)
	case IncrementalByUniqueKey:
		return newIncrementalByUniqueKeyFromProps(props)
	case Seed:
		return newSeedFromProps(props)
	case View:
		return newViewFromProps(props)
	default:
		name, err := ParseName(tag)
		if err != nil {
			return nil, err
		}
		if err := checkFields(&Base{}, name, props); err != nil {
			return nil, err
		}
		return NewBase(name), nil
	}
}

func classifyText(text string) (Kind, error) {
	name, err := ParseName(text)
	if err != nil {
		return nil, err
	}
	return NewBase(name), nil
}

func newIncrementalByTimeRangeFromProps(props map[string]any) (Kind, error) {
	if err := checkFields(&IncrementalByTimeRangeKind{}, IncrementalByTimeRange, props); err != nil {
		return nil, err
	}
	tc, err := TimeColumnFromValue(props["time_column"])
	if err != nil {
		return nil, err
	}
	batchSize, err := coerceInt(props["batch_size"], "batch_size")
	if err != nil {
		return nil, err
	}
	lookback, err := coerceInt(props["lookback"], "lookback")
	if err != nil {
		return nil, err
	}
	return NewIncrementalByTimeRange(tc, batchSize, lookback)
}

func newIncrementalByUniqueKeyFromProps(props map[string]any) (Kind, error) {
	if err := checkFields(&IncrementalByUniqueKeyKind{}, IncrementalByUniqueKey, props); err != nil {
		return nil, err
	}
	uniqueKey, err := coerceUniqueKey(props["unique_key"])
	if err != nil {
		return nil, err
	}
	batchSize, err := coerceInt(props["batch_size"], "batch_size")
	if err != nil {
		return nil, err
	}
	lookback, err := coerceInt(props["lookback"], "lookback")
	if err != nil {
		return nil, err
	}
	return NewIncrementalByUniqueKey(uniqueKey, batchSize, lookback)
}

func newViewFromProps(props map[string]any) (Kind, error) {
	if err := checkFields(&ViewKind{}, View, props); err != nil {
		return nil, err
	}
	materialized := false
	if v, ok := props["materialized"]; ok {
		materialized = coerceBool(v)
	}
	return NewView(materialized), nil
}

func newSeedFromProps(props map[string]any) (Kind, error) {
	if err := checkFields(&SeedKind{}, Seed, props); err != nil {
		return nil, err
	}
	batchSize, err := coerceSeedBatchSize(props["batch_size"])
	if err != nil {
		return nil, err
	}
	return NewSeed(coercePath(props["path"]), batchSize)
}

// checkFields rejects unknown property names and missing required ones for
// a variant, producing the friendly diagnostics upstream callers surface.
func checkFields(rec any, name Name, props map[string]any) error {
	provided := make(map[string]struct{}, len(props))
	for key := range props {
		provided[key] = struct{}{}
	}
	if extra := ExtraFields(rec, provided); len(extra) > 0 {
		return errorf("unknown field '%s' for model kind %s", extra[0], name)
	}
	if missing := MissingRequiredFields(rec, provided); len(missing) > 0 {
		return errorf("missing required field '%s' for model kind %s", missing[0], name)
	}
	return nil
}

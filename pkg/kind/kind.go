package kind

import (
	"github.com/leapstack-labs/modelspec/pkg/sqlast"
)

// Kind is one concrete model kind variant. Every variant is immutable once
// constructed: construction performs all validation, and no variant can
// exist in an invalid state. Derived predicates live on Name; variants
// delegate to their fixed tag.
type Kind interface {
	// Name returns the fixed kind tag.
	Name() Name

	// ToExpression re-renders the kind as the structured KIND node the
	// classifier accepts, with time formats translated for the dialect.
	// Empty and unregistered dialect names render the canonical form.
	ToExpression(dialectName string) *sqlast.KindDef
}

// DefaultSeedBatchSize is the seed insert batch size when none is declared.
const DefaultSeedBatchSize = 1000

var (
	_ Kind = (*Base)(nil)
	_ Kind = (*IncrementalByTimeRangeKind)(nil)
	_ Kind = (*IncrementalByUniqueKeyKind)(nil)
	_ Kind = (*ViewKind)(nil)
	_ Kind = (*SeedKind)(nil)
)

// Base is the bare kind: FULL, EMBEDDED, EXTERNAL, or any tag declared
// without options.
type Base struct {
	name Name
}

// NewBase builds a bare kind for the given tag.
func NewBase(n Name) *Base {
	return &Base{name: n}
}

// Name returns the kind tag.
func (k *Base) Name() Name { return k.name }

// ToExpression renders the bare tag.
func (k *Base) ToExpression(string) *sqlast.KindDef {
	return &sqlast.KindDef{This: string(k.name)}
}

// IncrementalByTimeRangeKind computes the model incrementally over a time
// range, keyed by a time column.
type IncrementalByTimeRangeKind struct {
	TimeColumn TimeColumn `mapstructure:"time_column"`
	BatchSize  *int       `mapstructure:"batch_size,omitempty"`
	Lookback   *int       `mapstructure:"lookback,omitempty"`
}

// NewIncrementalByTimeRange builds a validated time-range incremental kind.
func NewIncrementalByTimeRange(tc TimeColumn, batchSize, lookback *int) (*IncrementalByTimeRangeKind, error) {
	if tc.Column == "" {
		return nil, errorf("Time Column cannot be empty.")
	}
	if err := validateIncremental(batchSize, lookback); err != nil {
		return nil, err
	}
	return &IncrementalByTimeRangeKind{TimeColumn: tc, BatchSize: batchSize, Lookback: lookback}, nil
}

// Name returns INCREMENTAL_BY_TIME_RANGE.
func (k *IncrementalByTimeRangeKind) Name() Name { return IncrementalByTimeRange }

// ToExpression renders the tag plus the time_column property and any set
// batching options.
func (k *IncrementalByTimeRangeKind) ToExpression(dialectName string) *sqlast.KindDef {
	props := []*sqlast.Property{k.TimeColumn.ToProperty(dialectName)}
	props = appendIntProperty(props, "batch_size", k.BatchSize)
	props = appendIntProperty(props, "lookback", k.Lookback)
	return &sqlast.KindDef{This: string(IncrementalByTimeRange), Expressions: props}
}

// IncrementalByUniqueKeyKind merges new rows into the model by unique key.
type IncrementalByUniqueKeyKind struct {
	UniqueKey []string `mapstructure:"unique_key"`
	BatchSize *int     `mapstructure:"batch_size,omitempty"`
	Lookback  *int     `mapstructure:"lookback,omitempty"`
}

// NewIncrementalByUniqueKey builds a validated unique-key incremental kind.
func NewIncrementalByUniqueKey(uniqueKey []string, batchSize, lookback *int) (*IncrementalByUniqueKeyKind, error) {
	if len(uniqueKey) == 0 {
		return nil, errorf("unique_key cannot be empty")
	}
	if err := validateIncremental(batchSize, lookback); err != nil {
		return nil, err
	}
	return &IncrementalByUniqueKeyKind{UniqueKey: uniqueKey, BatchSize: batchSize, Lookback: lookback}, nil
}

// Name returns INCREMENTAL_BY_UNIQUE_KEY.
func (k *IncrementalByUniqueKeyKind) Name() Name { return IncrementalByUniqueKey }

// ToExpression renders the tag plus the unique_key property and any set
// batching options.
func (k *IncrementalByUniqueKeyKind) ToExpression(string) *sqlast.KindDef {
	keys := make([]sqlast.Expr, len(k.UniqueKey))
	for i, key := range k.UniqueKey {
		keys[i] = &sqlast.Identifier{Value: key}
	}
	props := []*sqlast.Property{
		{This: "unique_key", Value: &sqlast.Tuple{Exprs: keys}},
	}
	props = appendIntProperty(props, "batch_size", k.BatchSize)
	props = appendIntProperty(props, "lookback", k.Lookback)
	return &sqlast.KindDef{This: string(IncrementalByUniqueKey), Expressions: props}
}

// ViewKind renders the model as a view, optionally materialized.
type ViewKind struct {
	Materialized bool `mapstructure:"materialized,omitempty"`
}

// NewView builds a view kind.
func NewView(materialized bool) *ViewKind {
	return &ViewKind{Materialized: materialized}
}

// Name returns VIEW.
func (k *ViewKind) Name() Name { return View }

// ToExpression renders the tag, with the materialized property only when it
// differs from the default.
func (k *ViewKind) ToExpression(string) *sqlast.KindDef {
	def := &sqlast.KindDef{This: string(View)}
	if k.Materialized {
		def.Expressions = append(def.Expressions, &sqlast.Property{
			This:  "materialized",
			Value: sqlast.Bool(true),
		})
	}
	return def
}

// SeedKind loads the model from a static data file.
type SeedKind struct {
	Path      string `mapstructure:"path"`
	BatchSize int    `mapstructure:"batch_size,omitempty" default:"1000"`
}

// NewSeed builds a validated seed kind. A nil batchSize selects the default;
// an explicit value must be strictly positive.
func NewSeed(path string, batchSize *int) (*SeedKind, error) {
	size := DefaultSeedBatchSize
	if batchSize != nil {
		size = *batchSize
	}
	if size <= 0 {
		return nil, errorf("Seed batch size must be a positive integer")
	}
	return &SeedKind{Path: path, BatchSize: size}, nil
}

// Name returns SEED.
func (k *SeedKind) Name() Name { return Seed }

// ToExpression renders the tag plus path and batch_size properties.
func (k *SeedKind) ToExpression(string) *sqlast.KindDef {
	return &sqlast.KindDef{
		This: string(Seed),
		Expressions: []*sqlast.Property{
			{This: "path", Value: sqlast.String(k.Path)},
			{This: "batch_size", Value: sqlast.Number(k.BatchSize)},
		},
	}
}

// validateIncremental enforces the shared batching invariant: each value, if
// set, must be non-negative, and batch_size must not be less than lookback.
func validateIncremental(batchSize, lookback *int) error {
	if batchSize != nil && *batchSize < 0 {
		return errorf("Invalid value %d for batch_size. The value should be greater than 0", *batchSize)
	}
	if lookback != nil && *lookback < 0 {
		return errorf("Invalid value %d for lookback. The value should be greater than 0", *lookback)
	}
	if batchSize != nil && lookback != nil && *batchSize < *lookback {
		return errorf("batch_size cannot be less than lookback")
	}
	return nil
}

func appendIntProperty(props []*sqlast.Property, name string, v *int) []*sqlast.Property {
	if v == nil {
		return props
	}
	return append(props, &sqlast.Property{This: name, Value: sqlast.Number(*v)})
}

// Package kind implements the typed model kind system: the closed set of
// kind names, the variant records declaring how a model is materialized,
// and the classifier that resolves an arbitrary input shape (parsed KIND
// node, mapping, bare tag text, or an already-typed kind) into exactly one
// validated variant.
package kind

import "strings"

// Name is the kind of model, determining how its data is computed and
// stored in the warehouse.
type Name string

// The closed set of model kind names.
const (
	IncrementalByTimeRange Name = "INCREMENTAL_BY_TIME_RANGE"
	IncrementalByUniqueKey Name = "INCREMENTAL_BY_UNIQUE_KEY"
	Full                   Name = "FULL"
	View                   Name = "VIEW"
	Embedded               Name = "EMBEDDED"
	Seed                   Name = "SEED"
	External               Name = "EXTERNAL"
)

// Names returns all kind names in declaration order.
func Names() []Name {
	return []Name{
		IncrementalByTimeRange,
		IncrementalByUniqueKey,
		Full,
		View,
		Embedded,
		Seed,
		External,
	}
}

// ParseName resolves tag text to a kind name, upper-casing first.
func ParseName(text string) (Name, error) {
	n := Name(strings.ToUpper(text))
	switch n {
	case IncrementalByTimeRange, IncrementalByUniqueKey, Full, View, Embedded, Seed, External:
		return n, nil
	}
	return "", errorf("Invalid model kind '%s'", strings.ToUpper(text))
}

// String returns the tag text.
func (n Name) String() string { return string(n) }

// IsIncrementalByTimeRange reports whether the kind is INCREMENTAL_BY_TIME_RANGE.
func (n Name) IsIncrementalByTimeRange() bool { return n == IncrementalByTimeRange }

// IsIncrementalByUniqueKey reports whether the kind is INCREMENTAL_BY_UNIQUE_KEY.
func (n Name) IsIncrementalByUniqueKey() bool { return n == IncrementalByUniqueKey }

// IsFull reports whether the kind is FULL.
func (n Name) IsFull() bool { return n == Full }

// IsView reports whether the kind is VIEW.
func (n Name) IsView() bool { return n == View }

// IsEmbedded reports whether the kind is EMBEDDED.
func (n Name) IsEmbedded() bool { return n == Embedded }

// IsSeed reports whether the kind is SEED.
func (n Name) IsSeed() bool { return n == Seed }

// IsExternal reports whether the kind is EXTERNAL.
func (n Name) IsExternal() bool { return n == External }

// IsSymbolic reports whether the model never executes at all.
func (n Name) IsSymbolic() bool {
	return n == Embedded || n == External
}

// IsMaterialized reports whether the model materializes data in the warehouse.
func (n Name) IsMaterialized() bool {
	return !(n.IsSymbolic() || n.IsView())
}

// OnlyLatest reports whether the model only cares about the latest date to
// render.
func (n Name) OnlyLatest() bool {
	return n.IsView() || n.IsFull()
}

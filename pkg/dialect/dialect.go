// Package dialect provides SQL dialect configuration for the model kind core.
//
// Time formats are stored internally in one canonical form (strftime-style
// placeholders). Each dialect declares how its native placeholders map onto
// the canonical ones; FormatTime translates a format string through such a
// mapping in either direction.
package dialect

import (
	"sort"
	"strings"
	"sync"
)

// Dialect represents a SQL dialect configuration.
type Dialect struct {
	Name string

	// Identifier quoting
	Quote    string
	QuoteEnd string

	// TimeMapping maps dialect-native time placeholders to canonical
	// strftime placeholders (e.g. "YYYY" -> "%Y" for postgres).
	TimeMapping map[string]string

	inverseOnce sync.Once
	inverse     map[string]string
}

// InverseTimeMapping maps canonical strftime placeholders back to the
// dialect's native placeholders. Built lazily from TimeMapping.
func (d *Dialect) InverseTimeMapping() map[string]string {
	d.inverseOnce.Do(func() {
		d.inverse = make(map[string]string, len(d.TimeMapping))
		for native, canonical := range d.TimeMapping {
			d.inverse[canonical] = native
		}
	})
	return d.inverse
}

// FormatTimeTo translates a canonical format string into this dialect's
// native placeholder syntax.
func (d *Dialect) FormatTimeTo(format string) string {
	return FormatTime(format, d.InverseTimeMapping())
}

// FormatTimeFrom translates a dialect-native format string into the
// canonical placeholder syntax.
func (d *Dialect) FormatTimeFrom(format string) string {
	return FormatTime(format, d.TimeMapping)
}

// QuoteIdentifier quotes an identifier using the dialect's quote characters.
func (d *Dialect) QuoteIdentifier(name string) string {
	if d.Quote == "" {
		return name
	}
	return d.Quote + name + d.QuoteEnd
}

// FormatTime rewrites a format string through a placeholder mapping.
// At each position the longest matching source placeholder wins; unmapped
// characters are copied through unchanged. An empty mapping returns the
// input untouched.
func FormatTime(format string, mapping map[string]string) string {
	if len(mapping) == 0 || format == "" {
		return format
	}

	// Longest placeholders first so e.g. "HH24" beats "HH".
	keys := make([]string, 0, len(mapping))
	for k := range mapping {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})

	var sb strings.Builder
	for i := 0; i < len(format); {
		matched := false
		for _, k := range keys {
			if strings.HasPrefix(format[i:], k) {
				sb.WriteString(mapping[k])
				i += len(k)
				matched = true
				break
			}
		}
		if !matched {
			sb.WriteByte(format[i])
			i++
		}
	}
	return sb.String()
}

package kind

// Field introspection and export for the variant records. Field names come
// from mapstructure tags; a field without ",omitempty" is required. Upstream
// loaders use the introspection half for friendly unknown/missing-field
// diagnostics.

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"
)

type fieldInfo struct {
	Alias     string
	Index     int
	OmitEmpty bool
	Default   string // from the `default` tag, "" when none
}

// recordFields lists the exported fields of a record struct (or pointer to
// one) with their alias metadata.
func recordFields(rec any) []fieldInfo {
	rt := reflect.TypeOf(rec)
	for rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}
	if rt.Kind() != reflect.Struct {
		return nil
	}

	var fields []fieldInfo
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if !f.IsExported() {
			continue
		}
		info := fieldInfo{Alias: strings.ToLower(f.Name), Index: i, Default: f.Tag.Get("default")}
		if tag := f.Tag.Get("mapstructure"); tag != "" {
			parts := strings.Split(tag, ",")
			if parts[0] != "" {
				info.Alias = parts[0]
			}
			for _, opt := range parts[1:] {
				if opt == "omitempty" {
					info.OmitEmpty = true
				}
			}
		}
		fields = append(fields, info)
	}
	return fields
}

// AllFields returns the set of declared field names for a record.
func AllFields(rec any) map[string]struct{} {
	out := make(map[string]struct{})
	for _, f := range recordFields(rec) {
		out[f.Alias] = struct{}{}
	}
	return out
}

// RequiredFields returns the set of field names that must be provided.
func RequiredFields(rec any) map[string]struct{} {
	out := make(map[string]struct{})
	for _, f := range recordFields(rec) {
		if !f.OmitEmpty {
			out[f.Alias] = struct{}{}
		}
	}
	return out
}

// MissingRequiredFields returns the required field names absent from the
// provided set, sorted.
func MissingRequiredFields(rec any, provided map[string]struct{}) []string {
	var missing []string
	for name := range RequiredFields(rec) {
		if _, ok := provided[name]; !ok {
			missing = append(missing, name)
		}
	}
	sort.Strings(missing)
	return missing
}

// ExtraFields returns the provided names the record does not declare, sorted.
func ExtraFields(rec any, provided map[string]struct{}) []string {
	declared := AllFields(rec)
	var extra []string
	for name := range provided {
		if _, ok := declared[name]; !ok {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	return extra
}

// ExportOptions controls record export.
type ExportOptions struct {
	// IncludeUnset emits unset optional fields as nil instead of
	// dropping them.
	IncludeUnset bool

	// OmitDefaults additionally drops fields equal to their declared
	// default value.
	OmitDefaults bool
}

// ExportOption configures record export.
type ExportOption func(*ExportOptions)

// IncludeUnset emits unset optional fields as nil.
func IncludeUnset() ExportOption {
	return func(o *ExportOptions) { o.IncludeUnset = true }
}

// OmitDefaults drops fields equal to their declared default.
func OmitDefaults() ExportOption {
	return func(o *ExportOptions) { o.OmitDefaults = true }
}

// ToMap exports a kind as a mapping with alias-based keys plus the fixed
// "name" tag. Unset optional fields are dropped unless IncludeUnset is set.
func ToMap(k Kind, opts ...ExportOption) map[string]any {
	var options ExportOptions
	for _, opt := range opts {
		opt(&options)
	}

	out := map[string]any{"name": string(k.Name())}
	rv := reflect.ValueOf(k)
	for rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return out
	}

	for _, f := range recordFields(k) {
		fv := rv.Field(f.Index)

		if fv.Kind() == reflect.Pointer {
			if fv.IsNil() {
				if options.IncludeUnset {
					out[f.Alias] = nil
				}
				continue
			}
			fv = fv.Elem()
		}

		value := exportValue(fv.Interface(), options)

		if options.OmitDefaults && isDefaultValue(fv, f) {
			continue
		}
		if !options.IncludeUnset && f.OmitEmpty && fv.Kind() == reflect.String && fv.IsZero() {
			continue
		}

		out[f.Alias] = value
	}
	return out
}

// ToJSON exports a kind as JSON in the same shape as ToMap.
func ToJSON(k Kind, opts ...ExportOption) (string, error) {
	data, err := json.Marshal(ToMap(k, opts...))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// exportValue flattens nested records into maps.
func exportValue(v any, options ExportOptions) any {
	if tc, ok := v.(TimeColumn); ok {
		sub := map[string]any{"column": tc.Column}
		if tc.Format != "" || options.IncludeUnset {
			sub["format"] = tc.Format
		}
		return sub
	}
	return v
}

func isDefaultValue(fv reflect.Value, f fieldInfo) bool {
	if f.Default != "" {
		return fmt.Sprint(fv.Interface()) == f.Default
	}
	return f.OmitEmpty && fv.IsZero()
}

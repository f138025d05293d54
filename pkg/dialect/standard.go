package dialect

// Built-in dialects. Registered at init so callers can resolve them by name
// without importing per-dialect packages.

func init() {
	Register(&Dialect{
		Name:     "duckdb",
		Quote:    `"`,
		QuoteEnd: `"`,
		// DuckDB's strftime uses the canonical placeholders directly.
		TimeMapping: map[string]string{},
	})

	Register(&Dialect{
		Name:     "postgres",
		Quote:    `"`,
		QuoteEnd: `"`,
		TimeMapping: map[string]string{
			"YYYY": "%Y",
			"YY":   "%y",
			"MM":   "%m",
			"DD":   "%d",
			"HH24": "%H",
			"HH12": "%I",
			"MI":   "%M",
			"SS":   "%S",
			"US":   "%f",
			"TZ":   "%Z",
		},
	})

	Register(&Dialect{
		Name:     "snowflake",
		Quote:    `"`,
		QuoteEnd: `"`,
		TimeMapping: map[string]string{
			"YYYY": "%Y",
			"YY":   "%y",
			"MM":   "%m",
			"DD":   "%d",
			"HH24": "%H",
			"HH12": "%I",
			"MI":   "%M",
			"SS":   "%S",
			"FF6":  "%f",
		},
	})
}

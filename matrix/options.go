// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Format. This file defines:
//   - FormatOption / formatOptions (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherFormatOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultWidth is the minimum field width of every printed cell.
	DefaultWidth = 8

	// DefaultPrecision is the number of digits after the decimal point.
	DefaultPrecision = 3

	// DefaultIndent prefixes every printed row.
	DefaultIndent = "    "

	// DefaultSeparator joins the cells of one row.
	DefaultSeparator = "  "

	// MaxPrecision bounds WithPrecision; float64 carries ~17 significant digits.
	MaxPrecision = 17
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicWidthInvalid     = "matrix: WithWidth: width must be >= 0"
	panicPrecisionInvalid = "matrix: WithPrecision: precision must be in [0, 17]"
)

// FormatOption mutates internal format options. Safe to apply repeatedly.
type FormatOption func(*formatOptions)

// formatOptions stores the effective configuration after applying setters.
type formatOptions struct {
	width     int    // >= 0; DefaultWidth
	precision int    // [0, MaxPrecision]; DefaultPrecision
	indent    string // DefaultIndent
	separator string // DefaultSeparator
}

// WithWidth sets the minimum field width of each cell (%*.*f).
// Panics when width < 0.
func WithWidth(width int) FormatOption {
	if width < 0 {
		panic(panicWidthInvalid)
	}

	return func(o *formatOptions) { o.width = width }
}

// WithPrecision sets the digits printed after the decimal point.
// Panics when precision is outside [0, 17].
func WithPrecision(precision int) FormatOption {
	if precision < 0 || precision > MaxPrecision {
		panic(panicPrecisionInvalid)
	}

	return func(o *formatOptions) { o.precision = precision }
}

// WithIndent sets the prefix written before every row.
func WithIndent(indent string) FormatOption {
	return func(o *formatOptions) { o.indent = indent }
}

// WithSeparator sets the string written between cells of a row.
func WithSeparator(sep string) FormatOption {
	return func(o *formatOptions) { o.separator = sep }
}

// defaultFormatOptions returns the documented defaults.
func defaultFormatOptions() formatOptions {
	return formatOptions{
		width:     DefaultWidth,
		precision: DefaultPrecision,
		indent:    DefaultIndent,
		separator: DefaultSeparator,
	}
}

// gatherFormatOptions applies user setters over the defaults, in order;
// nil setters are skipped.
func gatherFormatOptions(user ...FormatOption) formatOptions {
	o := defaultFormatOptions()
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

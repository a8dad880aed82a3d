package sql

import (
	"database/sql"
	"strings"
)

type (
	// Rows wraps the sql.Rows to avoid locks copy.
	Rows struct{ ColumnScanner }
	// Result is an alias to sql.Result.
	Result = sql.Result
	// NullBool is an alias to sql.NullBool.
	NullBool = sql.NullBool
	// NullInt64 is an alias to sql.NullInt64.
	NullInt64 = sql.NullInt64
	// NullString is an alias to sql.NullString.
	NullString = sql.NullString
	// NullFloat64 is an alias to sql.NullFloat64.
	NullFloat64 = sql.NullFloat64
	// NullTime represents a time.Time that may be null.
	NullTime = sql.NullTime
)

// ColumnScanner is the interface that wraps the standard sql.Rows methods
// used for scanning database rows.
type ColumnScanner interface {
	Close() error
	ColumnTypes() ([]*sql.ColumnType, error)
	Columns() ([]string, error)
	Err() error
	Next() bool
	NextResultSet() bool
	Scan(dest ...any) error
}

// NullScanner implements the sql.Scanner interface such that it
// can be used as a scan destination, similar to the Null* types.
type NullScanner struct {
	S     sql.Scanner
	Valid bool // Valid is true if the Scan value is not NULL.
}

// Scan implements the Scanner interface.
func (n *NullScanner) Scan(value any) error {
	n.Valid = value != nil
	if n.Valid {
		return n.S.Scan(value)
	}
	return nil
}

// normalizeValue applies the adapter's type narrowing before a value is
// handed upward: the dialect's single-byte boolean sentinel becomes a Go
// bool, everything else passes through with its driver-native type.
func normalizeValue(v any) any {
	if b, ok := v.(int8); ok {
		switch b {
		case 0:
			return false
		case 1:
			return true
		}
	}
	return v
}

// ScanValues reads the current row into an ordered value list, applying
// the boolean narrowing. The caller drives Next.
func ScanValues(cs ColumnScanner) ([]any, error) {
	cols, err := cs.Columns()
	if err != nil {
		return nil, err
	}
	vals := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range vals {
		ptrs[i] = &vals[i]
	}
	if err := cs.Scan(ptrs...); err != nil {
		return nil, err
	}
	for i := range vals {
		vals[i] = normalizeValue(vals[i])
	}
	return vals, nil
}

// ScanMap reads the current row into a column-name keyed mapping, applying
// the same narrowing as ScanValues.
func ScanMap(cs ColumnScanner) (map[string]any, error) {
	cols, err := cs.Columns()
	if err != nil {
		return nil, err
	}
	vals, err := ScanValues(cs)
	if err != nil {
		return nil, err
	}
	out := make(map[string]any, len(cols))
	for i, name := range cols {
		out[name] = vals[i]
	}
	return out, nil
}

// ScanGrouped reads the current row of a joined result into a mapping
// grouped by originating table then column name. The requested names line
// up positionally with the result columns and use the "table.column"
// form; positions whose requested name carries no table qualifier are not
// part of the grouping set and are skipped.
func ScanGrouped(cs ColumnScanner, requested []string) (map[string]map[string]any, error) {
	vals, err := ScanValues(cs)
	if err != nil {
		return nil, err
	}
	out := make(map[string]map[string]any)
	for i, name := range requested {
		if i >= len(vals) {
			break
		}
		table, column, ok := strings.Cut(name, ".")
		if !ok {
			continue
		}
		group := out[table]
		if group == nil {
			group = make(map[string]any)
			out[table] = group
		}
		group[column] = vals[i]
	}
	return out, nil
}

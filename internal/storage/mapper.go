package storage

import "database/sql"

// Row-mapping helpers translating sql.Null* scan targets into the pointer
// optionals the domain types use. SQLite stores booleans as 0/1 integers.

func nullString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	return &v.String
}

func nullInt(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int64)
	return &i
}

func nullFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	return &v.Float64
}

func nullBool(v sql.NullInt64) *bool {
	if !v.Valid {
		return nil
	}
	b := v.Int64 != 0
	return &b
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

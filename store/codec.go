package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
)

// EncodeList serializes an ordered list of strings to a JSON text blob.
// A nil list is stored as NULL; an empty one as "[]".
func EncodeList(list []string) (sql.NullString, error) {
	if list == nil {
		return sql.NullString{}, nil
	}
	b, err := json.Marshal(list)
	if err != nil {
		return sql.NullString{}, fmt.Errorf("encode list: %w", err)
	}
	return sql.NullString{String: string(b), Valid: true}, nil
}

// DecodeList reverses EncodeList, preserving order and duplicates.
func DecodeList(blob sql.NullString) ([]string, error) {
	if !blob.Valid {
		return nil, nil
	}
	list := []string{}
	if err := json.Unmarshal([]byte(blob.String), &list); err != nil {
		return nil, fmt.Errorf("decode list: %w", err)
	}
	return list, nil
}

package signs

import (
	"errors"
	"fmt"
)

// ErrMissingField reports a row lacking a required column.
var ErrMissingField = errors.New("signs: missing required field")

// Default column names.
const (
	DefaultSignIDColumn    = "SignID"
	DefaultTrailNameColumn = "TrailName"
	DefaultDirectionColumn = "Arrow"
)

// Columns names the table columns holding the required fields.
type Columns struct {
	SignID    string `json:"signID" yaml:"signID"`
	TrailName string `json:"trailName" yaml:"trailName"`
	Direction string `json:"direction" yaml:"direction"`
}

// DefaultColumns returns the column names used by the reference sign tables.
func DefaultColumns() Columns {
	return Columns{
		SignID:    DefaultSignIDColumn,
		TrailName: DefaultTrailNameColumn,
		Direction: DefaultDirectionColumn,
	}
}

// Row is one table record keyed by header name.
type Row struct {
	// Line is the 1-based table line the record started on; 0 when the row
	// was built in memory.
	Line   int
	Fields map[string]string
}

// Field returns the value stored under column, failing with ErrMissingField
// when the record has no such column.
func (r Row) Field(column string) (string, error) {
	value, ok := r.Fields[column]
	if !ok {
		if r.Line > 0 {
			return "", fmt.Errorf("%w %q (line %d)", ErrMissingField, column, r.Line)
		}
		return "", fmt.Errorf("%w %q", ErrMissingField, column)
	}
	return value, nil
}

// Sign is the resolved view of a row.
type Sign struct {
	ID        string
	TrailName string
	Direction string
}

// Resolve extracts the required fields named by cols.
func (r Row) Resolve(cols Columns) (Sign, error) {
	id, err := r.Field(cols.SignID)
	if err != nil {
		return Sign{}, err
	}
	trail, err := r.Field(cols.TrailName)
	if err != nil {
		return Sign{}, err
	}
	direction, err := r.Field(cols.Direction)
	if err != nil {
		return Sign{}, err
	}
	return Sign{ID: id, TrailName: trail, Direction: direction}, nil
}

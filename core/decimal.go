package core

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"
)

// DurationPlaces is the scale of the NUMERIC columns holding durations.
const DurationPlaces = 2

// HasMaxDecimalPlaces reports whether the shortest decimal form of f has at most `places` fractional digits.
func HasMaxDecimalPlaces(f float64, places int) bool {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	idx := strings.IndexByte(s, '.')
	if idx < 0 {
		return true
	}
	return len(s)-idx-1 <= places
}

// FormatDecimal renders f with exactly `places` fractional digits, the text form of a NUMERIC column.
func FormatDecimal(f null.Float64, places int) null.String {
	if !f.Valid {
		return null.String{}
	}
	return null.StringFrom(strconv.FormatFloat(f.Float64, 'f', places, 64))
}

// ParseDecimal converts the text form of a NUMERIC column back to a float.
func ParseDecimal(s null.String) (null.Float64, error) {
	if !s.Valid {
		return null.Float64{}, nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s.String), 64)
	if err != nil {
		return null.Float64{}, errors.Wrapf(err, "parsing decimal %q", s.String)
	}
	return null.Float64From(f), nil
}

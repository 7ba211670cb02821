package csvstore

import (
	"fmt"
	"strconv"
	"strings"
)

// Cell helpers shared by the entity codecs. Optional numerics travel as empty
// cells, matching the files the original exports produced.

func cellInt(v int) string {
	return strconv.Itoa(v)
}

func cellFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func cellOptFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return cellFloat(*v)
}

func parseIntCell(column, s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	// Spreadsheet round-trips turn integers into "2019.0".
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("column %s: %q is not a number", column, s)
	}
	return int(f), nil
}

func parseFloatCell(column, s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("column %s: %q is not a number", column, s)
	}
	return f, nil
}

func parseOptFloatCell(column, s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("column %s: %q is not a number", column, s)
	}
	return &f, nil
}

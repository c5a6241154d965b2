package store

import (
	"bytes"
	"encoding/json"
	"fmt"

	"punchclock/internal/sheet"
)

// Encode renders a sheet as a JSON document. It fails for instants outside
// the years 0 to 9999, which RFC 3339 cannot represent.
func Encode(s *sheet.Sheet) ([]byte, error) {
	doc := *s
	if doc.Events == nil {
		doc.Events = []sheet.Event{}
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("unable to encode sheet: %w", err)
	}
	return data, nil
}

// Decode parses a JSON document into a sheet. Empty input yields an empty
// sheet. The decoded events are trusted as-is.
func Decode(data []byte) (*sheet.Sheet, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return sheet.New(), nil
	}

	s := sheet.New()
	if err := json.Unmarshal(data, s); err != nil {
		return nil, &ParseError{Err: err}
	}
	if s.Events == nil {
		s.Events = []sheet.Event{}
	}
	return s, nil
}

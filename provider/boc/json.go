package boc

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/robotomize/valetfx/provider"
)

const dateField = "d"

var jsonNull = []byte("null")

// Document is the parsed body of an observations response. Only the observation list is kept
type Document struct {
	Observations []Observation `json:"observations"`
}

// Observation is one dated record. Series keeps every other field undecoded, keyed by name such
// as FXMEURCAD, so a malformed series is only reported when it is looked up
type Observation struct {
	Date   string
	Series map[string]json.RawMessage
}

func (o *Observation) UnmarshalJSON(b []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil {
		return fmt.Errorf("observation: %w", err)
	}

	obs := Observation{Series: make(map[string]json.RawMessage, len(fields))}
	for key, raw := range fields {
		if key == dateField {
			if err := json.Unmarshal(raw, &obs.Date); err != nil {
				return fmt.Errorf("observation date: %w", err)
			}
			continue
		}
		obs.Series[key] = raw
	}

	*o = obs

	return nil
}

// Value returns the text of the {"v": ...} object of series key. A numeric v is returned as its
// literal. ok is false when the series or its v is absent, a series of any other shape is
// provider.ErrParse
func (o Observation) Value(key string) (text string, ok bool, err error) {
	raw, found := o.Series[key]
	if !found || bytes.Equal(bytes.TrimSpace(raw), jsonNull) {
		return "", false, nil
	}

	var series struct {
		V json.RawMessage `json:"v"`
	}
	if err := json.Unmarshal(raw, &series); err != nil {
		return "", false, fmt.Errorf("%w: series %s is not an object: %w", provider.ErrParse, key, err)
	}

	v := bytes.TrimSpace(series.V)
	if len(v) == 0 || bytes.Equal(v, jsonNull) {
		return "", false, nil
	}

	switch v[0] {
	case '"':
		if err := json.Unmarshal(v, &text); err != nil {
			return "", false, fmt.Errorf("%w: series %s value: %w", provider.ErrParse, key, err)
		}
		return text, true, nil
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return string(v), true, nil
	default:
		return "", false, fmt.Errorf("%w: series %s value %s is neither a string nor a number", provider.ErrParse, key, v)
	}
}

func decodeDocument(b []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(b, &doc); err != nil {
		return Document{}, fmt.Errorf("%w: decode observations: %w", provider.ErrParse, err)
	}

	return doc, nil
}

type groupDocument struct {
	GroupDetails struct {
		GroupSeries map[string]struct {
			Label string `json:"label"`
		} `json:"groupSeries"`
	} `json:"groupDetails"`
}

func decodeGroup(b []byte) (groupDocument, error) {
	var doc groupDocument
	if err := json.Unmarshal(b, &doc); err != nil {
		return groupDocument{}, fmt.Errorf("%w: decode group: %w", provider.ErrParse, err)
	}

	return doc, nil
}

package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/hance08/bankbook/internal/model"
	"github.com/hance08/bankbook/internal/utils"
	"github.com/shopspring/decimal"
)

// recordJSON is the on-disk shape of an account. Balance is written in major
// units as a plain JSON number.
type recordJSON struct {
	Name    string      `json:"name"`
	Type    string      `json:"type"`
	Balance json.Number `json:"balance"`
}

func toRecordJSON(rec model.Record) recordJSON {
	return recordJSON{
		Name:    rec.Name,
		Type:    rec.Type,
		Balance: json.Number(utils.CentsToDecimal(rec.Balance).String()),
	}
}

func (r recordJSON) toRecord() (model.Record, error) {
	if r.Balance == "" {
		return model.Record{}, fmt.Errorf("%w: missing balance", ErrCorrupt)
	}

	d, err := decimal.NewFromString(r.Balance.String())
	if err != nil {
		return model.Record{}, fmt.Errorf("%w: invalid balance %q", ErrCorrupt, r.Balance)
	}

	cents, err := utils.DecimalToCents(d)
	if err != nil {
		return model.Record{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	return model.Record{Name: r.Name, Type: r.Type, Balance: cents}, nil
}

// MarshalSnapshot writes the snapshot as a JSON object keyed by account ID,
// keeping the snapshot order. encoding/json sorts map keys, so the object is
// assembled entry by entry.
func MarshalSnapshot(snap Snapshot) ([]byte, error) {
	if err := snap.Validate(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range snap {
		if i > 0 {
			buf.WriteString(", ")
		}

		key, err := json.Marshal(e.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to encode account id %q: %w", e.ID, err)
		}
		val, err := json.Marshal(toRecordJSON(e.Record))
		if err != nil {
			return nil, fmt.Errorf("failed to encode account %s: %w", e.ID, err)
		}

		buf.Write(key)
		buf.WriteString(": ")
		buf.Write(val)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// UnmarshalSnapshot parses the object written by MarshalSnapshot, returning
// entries in document order.
func UnmarshalSnapshot(data []byte) (Snapshot, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}

	snap := Snapshot{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
		}
		id, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: unexpected key %v", ErrCorrupt, tok)
		}

		var raw recordJSON
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("%w: account %s: %v", ErrCorrupt, id, err)
		}

		rec, err := raw.toRecord()
		if err != nil {
			return nil, fmt.Errorf("account %s: %w", id, err)
		}

		snap = append(snap, Entry{ID: id, Record: rec})
	}

	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after accounts object", ErrCorrupt)
	}

	if err := snap.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}

	return snap, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("%w: expected %q, got %v", ErrCorrupt, want, tok)
	}
	return nil
}

package store

import (
	"fmt"

	"github.com/hance08/bankbook/internal/model"
	"github.com/hance08/bankbook/internal/utils"
	"github.com/shopspring/decimal"
)

// Entry is one account in a snapshot.
type Entry struct {
	ID     string
	Record model.Record
}

// Snapshot is the full account set in insertion order.
type Snapshot []Entry

// Validate reports empty or repeated account IDs.
func (s Snapshot) Validate() error {
	seen := make(map[string]struct{}, len(s))
	for _, e := range s {
		if e.ID == "" {
			return fmt.Errorf("%w: empty account id", ErrCorrupt)
		}
		if _, ok := seen[e.ID]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateID, e.ID)
		}
		seen[e.ID] = struct{}{}
	}
	return nil
}

// Total sums every balance in major units.
func (s Snapshot) Total() decimal.Decimal {
	total := decimal.Zero
	for _, e := range s {
		total = total.Add(utils.CentsToDecimal(e.Record.Balance))
	}
	return total
}

package ledger

import (
	"math/big"
	"strings"

	"github.com/google/uuid"
	"github.com/hance08/bankbook/internal/constants"
)

type IDGenerator interface {
	Generate() string
}

// UUIDGenerator takes the leading decimal digits of a random UUID's integer
// value. Collisions are possible, so callers retry against existing IDs.
type UUIDGenerator struct{}

func NewUUIDGenerator() UUIDGenerator {
	return UUIDGenerator{}
}

func (UUIDGenerator) Generate() string {
	u := uuid.New()
	digits := new(big.Int).SetBytes(u[:]).String()
	if len(digits) < constants.IDLength {
		digits = strings.Repeat("0", constants.IDLength-len(digits)) + digits
	}
	return digits[:constants.IDLength]
}

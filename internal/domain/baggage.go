package domain

import (
	"errors"
	"fmt"
)

// ErrOverweight is returned by BaggageCost when the weight has no tier.
var ErrOverweight = errors.New("baggage may not exceed 45 kg")

// BaggageCost returns the checked-baggage fee for the given weight.
// Tiers (kg, inclusive): up to 23 free, 24-32 and 33-45 paid, anything else
// rejected. Fractional weights that fall between tiers are rejected too,
// matching the tariff table exactly.
func BaggageCost(weightKG float64, international bool) (int, error) {
	switch {
	case weightKG <= 23:
		return 0, nil
	case weightKG >= 24 && weightKG <= 32:
		if international {
			return 100, nil
		}
		return 30, nil
	case weightKG >= 33 && weightKG <= 45:
		if international {
			return 200, nil
		}
		return 60, nil
	}
	return 0, ErrOverweight
}

// Baggage is a checked bag. Code is "{flightCode}-{ticketNumber}".
// International is a copy of the flight's flag taken at creation time.
type Baggage struct {
	Code              string
	PassengerDocument string
	WeightKG          float64
	Cost              int
	International     bool
}

func (b *Baggage) String() string {
	return fmt.Sprintf("Baggage %s - Passenger doc: %s - Weight: %.1fkg - Cost: USD %d", b.Code, b.PassengerDocument, b.WeightKG, b.Cost)
}

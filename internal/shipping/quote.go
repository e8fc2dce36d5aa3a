package shipping

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/loja-labs/backend-loja/internal/pricing"
)

// cepPattern accepts Brazilian postal codes as NNNNN-NNN or NNNNNNNN.
var cepPattern = regexp.MustCompile(`^[0-9]{5}-?[0-9]{3}$`)

// ValidCEP reports whether the provided postal code is well formed.
func ValidCEP(cep string) bool {
	return cepPattern.MatchString(strings.TrimSpace(cep))
}

// TierCost maps a CEP to its regional flat rate by leading digit.
// CEP regions fan out from São Paulo (0) to the north (6-9), so the
// rate grows with the digit.
func TierCost(cep string) pricing.Money {
	cep = strings.TrimSpace(cep)
	if cep == "" {
		return pricing.StandardShippingCost
	}
	switch cep[0] {
	case '0', '1', '2':
		return 15_00
	case '3', '4', '5':
		return 20_00
	case '6', '7':
		return 25_00
	default:
		return 30_00
	}
}

// Quoter resolves a shipping cost for a destination postal code.
type Quoter interface {
	Quote(ctx context.Context, cep string) (pricing.Money, error)
}

// SimulatedQuoter mimics a carrier rate lookup: it waits a fixed delay
// and returns the regional tier cost. The delay honours context
// cancellation so superseded quotes stop early.
type SimulatedQuoter struct {
	Delay time.Duration
}

// Quote returns the tier cost after the configured delay.
func (q SimulatedQuoter) Quote(ctx context.Context, cep string) (pricing.Money, error) {
	if q.Delay > 0 {
		timer := time.NewTimer(q.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-timer.C:
		}
	}
	return TierCost(cep), nil
}

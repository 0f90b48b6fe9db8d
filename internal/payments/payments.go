package payments

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Intent is the processor-side record backing a pledge. ID lands in the
// pledge's transaction_id; ClientSecret goes to the paying client.
type Intent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
}

type Provider interface {
	CreatePaymentIntent(ctx context.Context, amount, currency string, metadata map[string]string) (*Intent, error)
}

var ErrNotConfigured = errors.New("payment provider not configured")

// AmountToMinorUnits converts a fixed-precision decimal string ("25.50")
// into minor currency units (2550). At most two fraction digits are
// accepted and the result must be positive.
func AmountToMinorUnits(amount string) (int64, error) {
	s := strings.TrimSpace(amount)
	if s == "" || strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		return 0, fmt.Errorf("invalid amount %q", amount)
	}

	whole, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole, frac = s[:i], s[i+1:]
	}
	if whole == "" {
		whole = "0"
	}
	if len(frac) > 2 {
		return 0, fmt.Errorf("invalid amount %q: more than two fraction digits", amount)
	}
	for len(frac) < 2 {
		frac += "0"
	}

	units, err := strconv.ParseInt(whole+frac, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", amount)
	}
	if units <= 0 {
		return 0, fmt.Errorf("invalid amount %q: must be positive", amount)
	}
	return units, nil
}

package sale

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// UnknownCurrencyPolicy decides what happens to a selected currency that is
// missing from the catalog. Returning nil skips it.
type UnknownCurrencyPolicy interface {
	Unknown(currency string) error
}

type permissivePolicy struct{}

func (permissivePolicy) Unknown(string) error { return nil }

type strictPolicy struct{}

func (strictPolicy) Unknown(currency string) error {
	return fmt.Errorf("resolvePayments: %q: %w", currency, ErrUnknownCurrency)
}

// Permissive skips unknown currencies so one bad selection does not abort the rest.
func Permissive() UnknownCurrencyPolicy { return permissivePolicy{} }

// Strict rejects unknown currencies with ErrUnknownCurrency.
func Strict() UnknownCurrencyPolicy { return strictPolicy{} }

// PolicyByName maps the sale.currency_policy config value to a policy.
func PolicyByName(name string) (UnknownCurrencyPolicy, error) {
	switch name {
	case "", "permissive":
		return Permissive(), nil
	case "strict":
		return Strict(), nil
	default:
		return nil, fmt.Errorf("policyByName: unknown currency policy %q", name)
	}
}

// ResolvePayments returns token and price feed addresses for the selected
// currencies in selection order. Both slices always have the same length and
// never contain the native currency.
func ResolvePayments(catalog *Catalog, selected []string, policy UnknownCurrencyPolicy) ([]common.Address, []common.Address, error) {
	if policy == nil {
		policy = Permissive()
	}
	tokens := make([]common.Address, 0, len(selected))
	feeds := make([]common.Address, 0, len(selected))
	for _, cur := range selected {
		m, ok := catalog.Lookup(cur)
		if !ok {
			if err := policy.Unknown(cur); err != nil {
				return nil, nil, err
			}
			continue
		}
		if m.Native {
			continue
		}
		tokens = append(tokens, m.TokenAddress)
		feeds = append(feeds, m.PriceFeedAddress)
	}
	return tokens, feeds, nil
}

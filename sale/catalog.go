package sale

import (
	"fmt"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"gopkg.in/yaml.v3"
)

// PaymentMethod is one entry of the static currency catalog.
type PaymentMethod struct {
	Currency         string         `json:"currency"`
	TokenAddress     common.Address `json:"token_address"`
	PriceFeedAddress common.Address `json:"price_feed_address"`
	Decimals         uint8          `json:"decimals"`
	Native           bool           `json:"native"`
}

// Catalog is the immutable set of payment methods known to the process.
type Catalog struct {
	methods map[string]PaymentMethod
}

type catalogFile struct {
	Native     string `yaml:"native"`
	Currencies []struct {
		Currency         string `yaml:"currency"`
		TokenAddress     string `yaml:"token_address"`
		PriceFeedAddress string `yaml:"price_feed_address"`
		Decimals         uint8  `yaml:"decimals"`
		Native           bool   `yaml:"native"`
	} `yaml:"currencies"`
}

// NewCatalog indexes methods by upper-cased currency identifier.
func NewCatalog(methods ...PaymentMethod) (*Catalog, error) {
	c := &Catalog{methods: make(map[string]PaymentMethod, len(methods))}
	for _, m := range methods {
		id := normalizeCurrency(m.Currency)
		if id == "" {
			return nil, fmt.Errorf("newCatalog: empty currency identifier")
		}
		if _, ok := c.methods[id]; ok {
			return nil, fmt.Errorf("newCatalog: duplicate currency %s", id)
		}
		if !m.Native && (m.TokenAddress == (common.Address{}) || m.PriceFeedAddress == (common.Address{})) {
			return nil, fmt.Errorf("newCatalog: currency %s needs token and price feed addresses", id)
		}
		m.Currency = id
		c.methods[id] = m
	}
	return c, nil
}

// LoadCatalog reads a YAML catalog file. The top-level native key marks the
// chain's base asset even when its entry omits native: true.
func LoadCatalog(path string) (*Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loadCatalog: error reading %s: %w", path, err)
	}
	return ParseCatalog(b)
}

func ParseCatalog(b []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parseCatalog: error decoding yaml: %w", err)
	}

	native := normalizeCurrency(f.Native)
	methods := make([]PaymentMethod, 0, len(f.Currencies))
	for _, cur := range f.Currencies {
		m := PaymentMethod{
			Currency: cur.Currency,
			Decimals: cur.Decimals,
			Native:   cur.Native || (native != "" && normalizeCurrency(cur.Currency) == native),
		}
		if !m.Native {
			if !common.IsHexAddress(cur.TokenAddress) || !common.IsHexAddress(cur.PriceFeedAddress) {
				return nil, fmt.Errorf("parseCatalog: currency %s has an invalid address", cur.Currency)
			}
			m.TokenAddress = common.HexToAddress(cur.TokenAddress)
			m.PriceFeedAddress = common.HexToAddress(cur.PriceFeedAddress)
		}
		methods = append(methods, m)
	}
	return NewCatalog(methods...)
}

func (c *Catalog) Lookup(currency string) (PaymentMethod, bool) {
	m, ok := c.methods[normalizeCurrency(currency)]
	return m, ok
}

func (c *Catalog) Len() int {
	return len(c.methods)
}

func normalizeCurrency(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

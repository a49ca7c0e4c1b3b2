package sale

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCatalogYAML = `
native: matic
currencies:
  - currency: MATIC
    decimals: 18
  - currency: USDC
    token_address: "0x00000000000000000000000000000000000000a1"
    price_feed_address: "0x00000000000000000000000000000000000000f1"
    decimals: 6
  - currency: WETH
    token_address: "0x00000000000000000000000000000000000000a2"
    price_feed_address: "0x00000000000000000000000000000000000000f2"
    decimals: 18
`

func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := ParseCatalog([]byte(testCatalogYAML))
	require.NoError(t, err)
	return c
}

func TestLoadCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "currencies.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testCatalogYAML), 0o600))

	c, err := LoadCatalog(path)
	require.NoError(t, err)
	assert.Equal(t, 3, c.Len())

	matic, ok := c.Lookup("Matic")
	require.True(t, ok)
	assert.True(t, matic.Native)

	usdc, ok := c.Lookup("usdc")
	require.True(t, ok)
	assert.Equal(t, common.HexToAddress("0xa1"), usdc.TokenAddress)
	assert.Equal(t, common.HexToAddress("0xf1"), usdc.PriceFeedAddress)
	assert.Equal(t, uint8(6), usdc.Decimals)
}

func TestParseCatalogRejectsBadAddresses(t *testing.T) {
	_, err := ParseCatalog([]byte(`
currencies:
  - currency: USDC
    token_address: "not-an-address"
    price_feed_address: "0x00000000000000000000000000000000000000f1"
`))
	assert.Error(t, err)
}

func TestNewCatalogRejectsDuplicates(t *testing.T) {
	m := PaymentMethod{Currency: "usdc", TokenAddress: common.HexToAddress("0x1"), PriceFeedAddress: common.HexToAddress("0x2")}
	_, err := NewCatalog(m, PaymentMethod{Currency: "USDC", TokenAddress: common.HexToAddress("0x3"), PriceFeedAddress: common.HexToAddress("0x4")})
	assert.Error(t, err)
}

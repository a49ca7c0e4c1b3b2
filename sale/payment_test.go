package sale

import (
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePayments(t *testing.T) {
	c := testCatalog(t)

	tests := []struct {
		name     string
		selected []string
		tokens   []common.Address
		feeds    []common.Address
	}{
		{
			name:     "preserves selection order",
			selected: []string{"WETH", "USDC"},
			tokens:   []common.Address{common.HexToAddress("0xa2"), common.HexToAddress("0xa1")},
			feeds:    []common.Address{common.HexToAddress("0xf2"), common.HexToAddress("0xf1")},
		},
		{
			name:     "skips native currency",
			selected: []string{"MATIC", "usdc"},
			tokens:   []common.Address{common.HexToAddress("0xa1")},
			feeds:    []common.Address{common.HexToAddress("0xf1")},
		},
		{
			name:     "skips unknown currencies",
			selected: []string{"DOGE", "WETH", "???"},
			tokens:   []common.Address{common.HexToAddress("0xa2")},
			feeds:    []common.Address{common.HexToAddress("0xf2")},
		},
		{
			name:     "only native",
			selected: []string{"MATIC"},
			tokens:   []common.Address{},
			feeds:    []common.Address{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, feeds, err := ResolvePayments(c, tt.selected, Permissive())
			require.NoError(t, err)
			assert.Equal(t, tt.tokens, tokens)
			assert.Equal(t, tt.feeds, feeds)
			assert.Len(t, feeds, len(tokens))
		})
	}
}

func TestResolvePaymentsStrict(t *testing.T) {
	_, _, err := ResolvePayments(testCatalog(t), []string{"USDC", "DOGE"}, Strict())
	assert.True(t, errors.Is(err, ErrUnknownCurrency))
}

func TestPolicyByName(t *testing.T) {
	p, err := PolicyByName("strict")
	require.NoError(t, err)
	assert.Error(t, p.Unknown("X"))

	p, err = PolicyByName("")
	require.NoError(t, err)
	assert.NoError(t, p.Unknown("X"))

	_, err = PolicyByName("lenient")
	assert.Error(t, err)
}

package sale

import (
	"math/big"
	"reflect"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeCreateSale(t *testing.T) {
	ev := testEvent()
	ev.ImageURI = "img.png"
	p, err := NewCompiler(testCatalog(t)).Compile(Input{
		Event: ev,
		Tiers: []TierInput{
			{Name: "VIP", Price: "100", Supply: 10},
			{Name: "General", Price: "20", Supply: 500},
		},
		Currencies: []string{"USDC", "WETH"},
	})
	require.NoError(t, err)

	data, err := EncodeCreateSale(p)
	require.NoError(t, err)

	method := LaunchpadABI().Methods[CreateSaleMethod]
	require.True(t, len(data) > 4)
	assert.Equal(t, method.ID, data[:4])

	args, err := method.Inputs.Unpack(data[4:])
	require.NoError(t, err)
	require.Len(t, args, 6)

	assert.Equal(t, []uint8{uint8(TierVIP), uint8(TierStanding)}, args[1])
	assert.Equal(t, []string{"img.png", "img.png"}, args[2])
	assert.Equal(t, 2, reflect.ValueOf(args[3]).Len())
	assert.Equal(t, []common.Address{common.HexToAddress("0xa1"), common.HexToAddress("0xa2")}, args[4])
	assert.Equal(t, []common.Address{common.HexToAddress("0xf1"), common.HexToAddress("0xf2")}, args[5])
}

func TestEncodeCreateSaleRejectsPreEpochTimes(t *testing.T) {
	p, err := NewCompiler(testCatalog(t)).Compile(Input{Tiers: []TierInput{{Name: "vip", Price: "1"}}})
	require.NoError(t, err)

	_, err = EncodeCreateSale(p)
	assert.Error(t, err)
}

func TestEncodeCreateSaleRejectsOversizedPrice(t *testing.T) {
	_, err := NewCompiler(testCatalog(t)).Compile(Input{
		Event: testEvent(),
		Tiers: []TierInput{{Name: "VIP", Price: "1e80", Supply: 1}},
	})
	require.ErrorIs(t, err, ErrInvalidPriceFormat)

	p, err := NewCompiler(testCatalog(t)).Compile(Input{
		Event: testEvent(),
		Tiers: []TierInput{{Name: "VIP", Price: "1", Supply: 1}},
	})
	require.NoError(t, err)

	p.Pricing[0].Price = new(big.Int).Lsh(big.NewInt(1), 256)
	_, err = EncodeCreateSale(p)
	assert.ErrorIs(t, err, ErrInvalidPriceFormat)

	p.Pricing[0].Price = big.NewInt(-1)
	_, err = EncodeCreateSale(p)
	assert.ErrorIs(t, err, ErrInvalidPriceFormat)
}

package moonshot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCurve() *CurveAccount {
	return &CurveAccount{
		VirtualTokenReserves:      1_000_000,
		VirtualCollateralReserves: 500_000,
		RealTokenReserves:         800_000,
		RealCollateralReserves:    100_000,
		TokenTotalSupply:          1_000_000_000,
	}
}

func TestCollateralByTokens_BuyRoundsUp(t *testing.T) {
	// 500000 * 100000 / (1000000 - 100000) = 55555.55..., buyer pays the ceiling
	got, err := CollateralByTokens(testCurve(), 100_000, TradeDirectionBuy)
	require.NoError(t, err)
	assert.Equal(t, uint64(55_556), got)
}

func TestCollateralByTokens_BuyExactDivision(t *testing.T) {
	curve := &CurveAccount{
		VirtualTokenReserves:      1_000,
		VirtualCollateralReserves: 500,
	}
	// 500 * 500 / (1000 - 500) = 500 exactly, no rounding
	got, err := CollateralByTokens(curve, 500, TradeDirectionBuy)
	require.NoError(t, err)
	assert.Equal(t, uint64(500), got)
}

func TestCollateralByTokens_SellTruncates(t *testing.T) {
	// 500000 * 100000 / (1000000 + 100000) = 45454.54..., seller receives the floor
	got, err := CollateralByTokens(testCurve(), 100_000, TradeDirectionSell)
	require.NoError(t, err)
	assert.Equal(t, uint64(45_454), got)
}

func TestCollateralByTokens_SellCheaperThanBuy(t *testing.T) {
	buy, err := CollateralByTokens(testCurve(), 50_000, TradeDirectionBuy)
	require.NoError(t, err)
	sell, err := CollateralByTokens(testCurve(), 50_000, TradeDirectionSell)
	require.NoError(t, err)
	assert.Greater(t, buy, sell)
}

func TestCollateralByTokens_LargeReservesNoOverflow(t *testing.T) {
	curve := &CurveAccount{
		VirtualTokenReserves:      ^uint64(0) - 1,
		VirtualCollateralReserves: ^uint64(0) - 1,
	}
	got, err := CollateralByTokens(curve, 1_000_000_000_000, TradeDirectionSell)
	require.NoError(t, err)
	assert.NotZero(t, got)
}

func TestCollateralByTokens_Errors(t *testing.T) {
	tests := []struct {
		name      string
		curve     *CurveAccount
		amount    uint64
		direction TradeDirection
	}{
		{"nil curve", nil, 100, TradeDirectionBuy},
		{"zero amount", testCurve(), 0, TradeDirectionBuy},
		{"empty reserves", &CurveAccount{}, 100, TradeDirectionBuy},
		{"completed curve", &CurveAccount{
			VirtualTokenReserves:      1000,
			VirtualCollateralReserves: 1000,
			Complete:                  true,
		}, 100, TradeDirectionBuy},
		{"buy drains reserves", testCurve(), 1_000_000, TradeDirectionBuy},
		{"bad direction", testCurve(), 100, TradeDirection("HOLD")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CollateralByTokens(tt.curve, tt.amount, tt.direction)
			assert.Error(t, err)
		})
	}
}

func TestMaxCollateralWithSlippage(t *testing.T) {
	assert.Equal(t, uint64(10_500), MaxCollateralWithSlippage(10_000, 500))
	assert.Equal(t, uint64(10_000), MaxCollateralWithSlippage(10_000, 0))
	// truncates toward the quoted amount
	assert.Equal(t, uint64(104), MaxCollateralWithSlippage(100, 450))
}

func TestMinCollateralWithSlippage(t *testing.T) {
	assert.Equal(t, uint64(9_500), MinCollateralWithSlippage(10_000, 500))
	assert.Equal(t, uint64(10_000), MinCollateralWithSlippage(10_000, 0))
	assert.Equal(t, uint64(0), MinCollateralWithSlippage(10_000, 10_000))
	assert.Equal(t, uint64(0), MinCollateralWithSlippage(10_000, 20_000))
}

package trading

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moonshot-trading-api/internal/moonshot"
)

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in   string
		want Direction
	}{
		{"buy", DirectionBuy},
		{"BUY", DirectionBuy},
		{"Buy", DirectionBuy},
		{" sell ", DirectionSell},
		{"SELL", DirectionSell},
	}

	for _, tt := range tests {
		got, err := ParseDirection(tt.in)
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestParseDirection_Invalid(t *testing.T) {
	for _, in := range []string{"", "hold", "buy sell", "byu"} {
		_, err := ParseDirection(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestTradeDirection(t *testing.T) {
	assert.Equal(t, moonshot.TradeDirectionBuy, DirectionBuy.TradeDirection())
	assert.Equal(t, moonshot.TradeDirectionSell, DirectionSell.TradeDirection())
}

package trading

import (
	"fmt"
	"strings"

	"moonshot-trading-api/internal/moonshot"
)

// Direction is the normalized trade side of a request.
type Direction string

const (
	DirectionBuy  Direction = "buy"
	DirectionSell Direction = "sell"
)

// ParseDirection normalizes a caller-supplied trade type, case-insensitively.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "buy":
		return DirectionBuy, nil
	case "sell":
		return DirectionSell, nil
	default:
		return "", fmt.Errorf("invalid tradeType (must be 'buy' or 'sell')")
	}
}

// TradeDirection maps the request direction onto the launchpad's trade side.
func (d Direction) TradeDirection() moonshot.TradeDirection {
	if d == DirectionBuy {
		return moonshot.TradeDirectionBuy
	}
	return moonshot.TradeDirectionSell
}

package moonshot

import (
	"fmt"
	"math/big"
)

// CollateralByTokens computes the collateral leg of a swap against the
// virtual-reserve constant product, holding the token amount exact
// (fixed output side).
//
// BUY: collateral the buyer must pay for tokenAmount tokens, rounded up
// so the curve can never be underpaid.
// SELL: collateral the seller receives for tokenAmount tokens, truncated.
//
// Uses big.Int throughout to prevent overflow on u64 * u64 products.
func CollateralByTokens(curve *CurveAccount, tokenAmount uint64, direction TradeDirection) (uint64, error) {
	if curve == nil {
		return 0, fmt.Errorf("curve is nil")
	}
	if tokenAmount == 0 {
		return 0, fmt.Errorf("token amount must be > 0")
	}
	if curve.VirtualTokenReserves == 0 || curve.VirtualCollateralReserves == 0 {
		return 0, fmt.Errorf("curve has empty reserves")
	}
	if curve.Complete {
		return 0, fmt.Errorf("curve is complete; token has migrated")
	}

	vTok := new(big.Int).SetUint64(curve.VirtualTokenReserves)
	vCol := new(big.Int).SetUint64(curve.VirtualCollateralReserves)
	amount := new(big.Int).SetUint64(tokenAmount)

	var numerator, denominator *big.Int

	switch direction {
	case TradeDirectionBuy:
		if tokenAmount >= curve.VirtualTokenReserves {
			return 0, fmt.Errorf("token amount %d exceeds curve reserves %d",
				tokenAmount, curve.VirtualTokenReserves)
		}
		// collateral = ceil(vCol * amount / (vTok - amount))
		numerator = new(big.Int).Mul(vCol, amount)
		denominator = new(big.Int).Sub(vTok, amount)
	case TradeDirectionSell:
		// collateral = vCol * amount / (vTok + amount)
		numerator = new(big.Int).Mul(vCol, amount)
		denominator = new(big.Int).Add(vTok, amount)
	default:
		return 0, fmt.Errorf("invalid trade direction: %q", direction)
	}

	quotient, remainder := new(big.Int).QuoRem(numerator, denominator, new(big.Int))
	if direction == TradeDirectionBuy && remainder.Sign() != 0 {
		quotient.Add(quotient, big.NewInt(1))
	}

	if !quotient.IsUint64() {
		return 0, fmt.Errorf("collateral amount overflow")
	}

	return quotient.Uint64(), nil
}

// MaxCollateralWithSlippage returns the largest collateral a buyer will
// accept to pay: amount * (10000 + slippageBps) / 10000.
func MaxCollateralWithSlippage(amount uint64, slippageBps uint64) uint64 {
	result := new(big.Int).SetUint64(amount)
	result.Mul(result, new(big.Int).SetUint64(10000+slippageBps))
	result.Div(result, big.NewInt(10000))
	if !result.IsUint64() {
		return ^uint64(0)
	}
	return result.Uint64()
}

// MinCollateralWithSlippage returns the smallest collateral a seller will
// accept to receive: amount * (10000 - slippageBps) / 10000.
func MinCollateralWithSlippage(amount uint64, slippageBps uint64) uint64 {
	if slippageBps >= 10000 {
		return 0
	}
	result := new(big.Int).SetUint64(amount)
	result.Mul(result, new(big.Int).SetUint64(10000-slippageBps))
	result.Div(result, big.NewInt(10000))
	return result.Uint64()
}

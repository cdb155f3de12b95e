package moonshot

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/sirupsen/logrus"
)

// AccountFetcher reads raw account data from the network.
type AccountFetcher interface {
	AccountData(ctx context.Context, pubkey solana.PublicKey, commitment string) ([]byte, error)
}

// Client exposes the launchpad operations the service needs: resolving
// curve state and preparing swap instructions. It holds no per-request
// state and is safe for concurrent use.
type Client struct {
	fetcher AccountFetcher
	logger  *logrus.Logger
}

func NewClient(fetcher AccountFetcher, logger *logrus.Logger) (*Client, error) {
	if fetcher == nil {
		return nil, fmt.Errorf("moonshot: account fetcher is required")
	}
	if logger == nil {
		logger = logrus.New()
	}
	return &Client{fetcher: fetcher, logger: logger}, nil
}

// CurveState fetches and decodes the current bonding curve state for a mint.
func (c *Client) CurveState(ctx context.Context, mint solana.PublicKey) (*CurveAccount, error) {
	curveAddr, err := DeriveCurveAccount(mint)
	if err != nil {
		return nil, err
	}

	data, err := c.fetcher.AccountData(ctx, curveAddr, "confirmed")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch curve state: %w", err)
	}

	curve, err := DecodeCurveAccount(data)
	if err != nil {
		return nil, err
	}

	c.logger.WithFields(logrus.Fields{
		"mint":               mint.String(),
		"virtual_tokens":     curve.VirtualTokenReserves,
		"virtual_collateral": curve.VirtualCollateralReserves,
	}).Debug("resolved curve state")

	return curve, nil
}

// PrepareSwapInstructions builds the instruction set for a fixed-output
// trade: token amount exact, collateral bounded by the slippage tolerance.
// Buys are prefixed with an idempotent ATA create so a first-time buyer's
// token account exists when the swap executes.
func (c *Client) PrepareSwapInstructions(
	user solana.PublicKey,
	mint solana.PublicKey,
	direction TradeDirection,
	tokenAmount uint64,
	collateralAmount uint64,
	slippageBps uint64,
) ([]solana.Instruction, error) {

	var bound uint64
	switch direction {
	case TradeDirectionBuy:
		bound = MaxCollateralWithSlippage(collateralAmount, slippageBps)
	case TradeDirectionSell:
		bound = MinCollateralWithSlippage(collateralAmount, slippageBps)
	default:
		return nil, fmt.Errorf("invalid trade direction: %q", direction)
	}

	tradeIx, err := BuildTradeInstruction(user, mint, direction, TradeParams{
		TokenAmount:      tokenAmount,
		CollateralAmount: bound,
		FixedSide:        FixedSideOut,
		SlippageBps:      slippageBps,
	})
	if err != nil {
		return nil, err
	}

	if direction == TradeDirectionBuy {
		ataIx, err := NewCreateATAIdempotentIx(user, user, mint)
		if err != nil {
			return nil, err
		}
		return []solana.Instruction{ataIx, tradeIx}, nil
	}

	return []solana.Instruction{tradeIx}, nil
}

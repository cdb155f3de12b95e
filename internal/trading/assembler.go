package trading

import (
	"context"
	"fmt"
	"math"

	"github.com/gagliardetto/solana-go"
	"github.com/sirupsen/logrus"

	"moonshot-trading-api/internal/moonshot"
)

// Trading policy constants, fixed by the service.
const (
	// PriorityFeeMicroLamports is the compute-unit price attached to every
	// prepared transaction.
	PriorityFeeMicroLamports = uint64(200_000)

	// FeeDivisor yields the protocol fee: collateral / FeeDivisor (1%).
	// Integer division truncates; dust trades may carry a zero fee.
	FeeDivisor = uint64(100)
)

// CurveSource resolves curve state and produces swap instructions.
type CurveSource interface {
	CurveState(ctx context.Context, mint solana.PublicKey) (*moonshot.CurveAccount, error)
	PrepareSwapInstructions(
		user solana.PublicKey,
		mint solana.PublicKey,
		direction moonshot.TradeDirection,
		tokenAmount uint64,
		collateralAmount uint64,
		slippageBps uint64,
	) ([]solana.Instruction, error)
}

// BlockhashSource provides the freshness anchor for new transactions.
type BlockhashSource interface {
	LatestBlockhash(ctx context.Context, commitment string) (solana.Hash, error)
}

// Assembler builds unsigned swap transactions on behalf of external
// wallets. It never signs; the requesting user is always the fee payer.
type Assembler struct {
	curve     CurveSource
	chain     BlockhashSource
	feeWallet solana.PublicKey
	mint      solana.PublicKey
	logger    *logrus.Logger
}

func NewAssembler(
	curve CurveSource,
	chain BlockhashSource,
	feeWallet solana.PublicKey,
	mint solana.PublicKey,
	logger *logrus.Logger,
) (*Assembler, error) {
	if curve == nil {
		return nil, fmt.Errorf("assembler: curve source is required")
	}
	if chain == nil {
		return nil, fmt.Errorf("assembler: blockhash source is required")
	}
	if feeWallet.IsZero() {
		return nil, fmt.Errorf("assembler: fee wallet is zero")
	}
	if mint.IsZero() {
		return nil, fmt.Errorf("assembler: mint is zero")
	}
	if logger == nil {
		logger = logrus.New()
	}
	return &Assembler{
		curve:     curve,
		chain:     chain,
		feeWallet: feeWallet,
		mint:      mint,
		logger:    logger,
	}, nil
}

// Assemble builds an unsigned transaction for a whole-token trade:
// priority fee instruction, protocol fee transfer, then the swap
// instructions. One attempt only; upstream failures propagate.
func (a *Assembler) Assemble(
	ctx context.Context,
	user solana.PublicKey,
	direction Direction,
	amount uint64,
) (*solana.Transaction, error) {

	if user.IsZero() {
		return nil, fmt.Errorf("user is zero")
	}
	if amount == 0 {
		return nil, fmt.Errorf("amount must be > 0")
	}
	if amount > math.MaxUint64/moonshot.TokenDecimalFactor {
		return nil, fmt.Errorf("amount %d overflows token scaling", amount)
	}
	tokenAmount := amount * moonshot.TokenDecimalFactor

	curveState, err := a.curve.CurveState(ctx, a.mint)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve curve state: %w", err)
	}

	collateral, err := moonshot.CollateralByTokens(curveState, tokenAmount, direction.TradeDirection())
	if err != nil {
		return nil, fmt.Errorf("failed to price trade: %w", err)
	}

	swapIxs, err := a.curve.PrepareSwapInstructions(
		user,
		a.mint,
		direction.TradeDirection(),
		tokenAmount,
		collateral,
		moonshot.DefaultSlippageBps,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare swap instructions: %w", err)
	}

	feeAmount := collateral / FeeDivisor

	ixs := make([]solana.Instruction, 0, 2+len(swapIxs))
	ixs = append(ixs, NewSetComputeUnitPriceIx(PriorityFeeMicroLamports))
	ixs = append(ixs, NewSystemTransferIx(user, a.feeWallet, feeAmount))
	ixs = append(ixs, swapIxs...)

	blockhash, err := a.chain.LatestBlockhash(ctx, "confirmed")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch blockhash: %w", err)
	}

	tx, err := solana.NewTransaction(
		ixs,
		blockhash,
		solana.TransactionPayer(user),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build transaction: %w", err)
	}
	tx.Message.SetVersion(solana.MessageVersionV0)

	// Zero-value placeholder signatures keep the serialized shape the
	// wallet expects to sign over. The service never fills them in.
	tx.Signatures = make([]solana.Signature, tx.Message.Header.NumRequiredSignatures)

	a.logger.WithFields(logrus.Fields{
		"user":       user.String(),
		"direction":  direction,
		"tokens":     tokenAmount,
		"collateral": collateral,
		"fee":        feeAmount,
	}).Info("assembled unsigned trade transaction")

	return tx, nil
}

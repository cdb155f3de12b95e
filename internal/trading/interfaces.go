package trading

import (
	"context"

	"github.com/gagliardetto/solana-go"
)

// TransactionAssembler builds unsigned trade transactions.
type TransactionAssembler interface {
	Assemble(ctx context.Context, user solana.PublicKey, direction Direction, amount uint64) (*solana.Transaction, error)
}

// TransactionRelay submits externally-signed transaction bytes.
type TransactionRelay interface {
	Relay(ctx context.Context, rawTx []byte) (string, error)
}

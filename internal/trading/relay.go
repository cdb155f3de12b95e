package trading

import (
	"context"
	"errors"
	"fmt"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/sirupsen/logrus"

	"moonshot-trading-api/internal/chain"
)

// ErrMalformedTransaction marks bytes that do not parse as a transaction,
// as opposed to transactions the network rejects on submission.
var ErrMalformedTransaction = errors.New("failed to deserialize transaction")

// TransactionSender forwards serialized transactions to the network.
type TransactionSender interface {
	SendRawTransaction(ctx context.Context, txBytes []byte, opts *chain.SendOptions) (string, error)
}

// Relay forwards fully-signed transactions to the network. It performs no
// signature verification; validity is the network's call on submission.
type Relay struct {
	sender TransactionSender
	logger *logrus.Logger
}

func NewRelay(sender TransactionSender, logger *logrus.Logger) (*Relay, error) {
	if sender == nil {
		return nil, fmt.Errorf("relay: transaction sender is required")
	}
	if logger == nil {
		logger = logrus.New()
	}
	return &Relay{sender: sender, logger: logger}, nil
}

// Relay parses the supplied bytes to confirm they carry a transaction,
// then submits them unchanged and returns the assigned signature.
func (r *Relay) Relay(ctx context.Context, rawTx []byte) (string, error) {
	tx, err := solana.TransactionFromDecoder(bin.NewBinDecoder(rawTx))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedTransaction, err)
	}

	sig, err := r.sender.SendRawTransaction(ctx, rawTx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to submit transaction: %w", err)
	}

	r.logger.WithFields(logrus.Fields{
		"signature":    sig,
		"instructions": len(tx.Message.Instructions),
	}).Info("relayed signed transaction")

	return sig, nil
}

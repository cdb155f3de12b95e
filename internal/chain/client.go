package chain

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"
	"github.com/sirupsen/logrus"

	projectrpc "moonshot-trading-api/internal/rpc"
)

// SendOptions configures transaction submission behavior
type SendOptions struct {
	SkipPreflight       bool
	PreflightCommitment string
	MaxRetries          *int
}

// DefaultSendOptions returns the submission settings used by the relay:
// preflight enabled at "confirmed", 5 retries delegated to the node.
func DefaultSendOptions() SendOptions {
	maxRetries := 5
	return SendOptions{
		SkipPreflight:       false,
		PreflightCommitment: "confirmed",
		MaxRetries:          &maxRetries,
	}
}

// ClientConfig holds configuration for the chain client
type ClientConfig struct {
	RPCURL       string
	Timeout      time.Duration
	MaxRetries   int
	RetryBackoff time.Duration
	Logger       *logrus.Logger
}

// Client is a key-less Solana network client. It never signs anything;
// it only reads chain state and forwards already-signed transactions.
// Safe for concurrent use: it holds no per-request state.
type Client struct {
	rpc *projectrpc.Client
}

func NewClient(cfg ClientConfig) (*Client, error) {
	if cfg.RPCURL == "" {
		return nil, fmt.Errorf("chain: RPCURL is required")
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = 3
	}
	if cfg.RetryBackoff == 0 {
		cfg.RetryBackoff = time.Second
	}

	rpcClient := projectrpc.NewClient(projectrpc.ClientConfig{
		BaseURL:      cfg.RPCURL,
		Timeout:      cfg.Timeout,
		MaxRetries:   cfg.MaxRetries,
		RetryBackoff: cfg.RetryBackoff,
		Logger:       cfg.Logger,
	})

	return &Client{rpc: rpcClient}, nil
}

// LatestBlockhash fetches the most recent blockhash at the given commitment
func (c *Client) LatestBlockhash(ctx context.Context, commitment string) (solana.Hash, error) {
	if commitment == "" {
		commitment = "confirmed"
	}

	var resp struct {
		Result struct {
			Value struct {
				Blockhash            string `json:"blockhash"`
				LastValidBlockHeight uint64 `json:"lastValidBlockHeight"`
			} `json:"value"`
		} `json:"result"`
		Error *projectrpc.RPCError `json:"error"`
	}

	params := []any{
		map[string]any{"commitment": commitment},
	}

	if err := c.rpc.Call(ctx, "getLatestBlockhash", params, &resp); err != nil {
		return solana.Hash{}, fmt.Errorf("getLatestBlockhash failed: %w", err)
	}
	if resp.Error != nil {
		return solana.Hash{}, fmt.Errorf("getLatestBlockhash error: %s", resp.Error.Message)
	}

	hash, err := solana.HashFromBase58(resp.Result.Value.Blockhash)
	if err != nil {
		return solana.Hash{}, fmt.Errorf("invalid blockhash format: %w", err)
	}

	return hash, nil
}

// SendRawTransaction submits serialized, already-signed transaction bytes
// and returns the signature assigned by the node. It does not wait for
// confirmation; that is the caller's responsibility.
func (c *Client) SendRawTransaction(ctx context.Context, txBytes []byte, opts *SendOptions) (string, error) {
	if opts == nil {
		defaultOpts := DefaultSendOptions()
		opts = &defaultOpts
	}

	encodedTx := base64.StdEncoding.EncodeToString(txBytes)

	sendCfg := map[string]any{
		"encoding":            "base64",
		"skipPreflight":       opts.SkipPreflight,
		"preflightCommitment": opts.PreflightCommitment,
	}
	if opts.MaxRetries != nil {
		sendCfg["maxRetries"] = *opts.MaxRetries
	}

	params := []any{encodedTx, sendCfg}

	var resp struct {
		Result string               `json:"result"`
		Error  *projectrpc.RPCError `json:"error"`
	}

	if err := c.rpc.Call(ctx, "sendTransaction", params, &resp); err != nil {
		return "", fmt.Errorf("sendTransaction RPC failed: %w", err)
	}
	if resp.Error != nil {
		return "", fmt.Errorf("sendTransaction error: code=%d, message=%s",
			resp.Error.Code, resp.Error.Message)
	}

	return resp.Result, nil
}

// AccountData fetches raw account data for a pubkey. Uses base58 encoding,
// which the node permits for small accounts such as curve state.
func (c *Client) AccountData(ctx context.Context, pubkey solana.PublicKey, commitment string) ([]byte, error) {
	if commitment == "" {
		commitment = "confirmed"
	}

	var resp struct {
		Result struct {
			Value *struct {
				Data     []string `json:"data"` // [payload, encoding]
				Owner    string   `json:"owner"`
				Lamports uint64   `json:"lamports"`
			} `json:"value"`
		} `json:"result"`
		Error *projectrpc.RPCError `json:"error"`
	}

	params := []any{
		pubkey.String(),
		map[string]any{
			"encoding":   "base58",
			"commitment": commitment,
		},
	}

	if err := c.rpc.Call(ctx, "getAccountInfo", params, &resp); err != nil {
		return nil, fmt.Errorf("getAccountInfo RPC failed: %w", err)
	}
	if resp.Error != nil {
		return nil, fmt.Errorf("getAccountInfo error: %s", resp.Error.Message)
	}
	if resp.Result.Value == nil {
		return nil, fmt.Errorf("account %s not found", pubkey)
	}
	if len(resp.Result.Value.Data) == 0 {
		return nil, fmt.Errorf("account %s has no data", pubkey)
	}

	raw, err := base58.Decode(resp.Result.Value.Data[0])
	if err != nil {
		return nil, fmt.Errorf("invalid account data encoding: %w", err)
	}

	return raw, nil
}

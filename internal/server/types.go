package server

import "encoding/json"

// ErrorResponse represents a standardized error response format
type ErrorResponse struct {
	Error   string `json:"error"`             // Human-readable error message
	Code    int    `json:"code"`              // HTTP status code
	Details any    `json:"details,omitempty"` // Additional error details (dev mode only)
}

// HealthResponse represents the health check response
type HealthResponse struct {
	OK bool `json:"ok"` // Service health status
}

// PrepareRequest is the body of POST /api/trading/prepare
type PrepareRequest struct {
	UserWallet string       `json:"userWallet"` // Base58 public key of the fee payer
	TradeType  string       `json:"tradeType"`  // "buy" or "sell", case-insensitive
	Amount     *json.Number `json:"amount"`     // Whole-token quantity, positive integer
}

// PrepareResponse carries the serialized unsigned transaction
type PrepareResponse struct {
	Message    string `json:"message"`
	UnsignedTx string `json:"unsignedTx"` // Base64-encoded transaction bytes
}

// SubmitRequest is the body of POST /api/trading/submit
type SubmitRequest struct {
	SignedTx string `json:"signedTx"` // Base64-encoded signed transaction bytes
}

// SubmitResponse carries the signature assigned on submission
type SubmitResponse struct {
	Message string `json:"message"`
	TxHash  string `json:"txHash"`
}

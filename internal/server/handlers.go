package server

import (
	"encoding/base64"
	"errors"
	"math"
	"net/http"

	"github.com/gagliardetto/solana-go"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"moonshot-trading-api/internal/trading"
)

// Handlers contains all dependencies for API endpoint handlers
type Handlers struct {
	Assembler trading.TransactionAssembler // Builds unsigned trade transactions
	Relay     trading.TransactionRelay     // Forwards signed transactions to the network
	DevMode   bool                         // Enable detailed error responses in development
	Logger    *logrus.Logger               // Structured logger
}

// err returns a standardized JSON error response
// In dev mode, includes additional error details for debugging
func (h *Handlers) err(c echo.Context, code int, msg string, details any) error {
	resp := ErrorResponse{Error: msg, Code: code}
	if h.DevMode && details != nil {
		resp.Details = details
	}
	return c.JSON(code, resp)
}

// Health returns a simple health check endpoint
func (h *Handlers) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{OK: true})
}

// Prepare validates a trade request and returns an unsigned transaction
// for the caller to sign. No upstream calls happen until validation passes.
func (h *Handlers) Prepare(c echo.Context) error {
	var req PrepareRequest
	if err := c.Bind(&req); err != nil {
		return h.err(c, http.StatusBadRequest, "invalid json", nil)
	}

	if req.UserWallet == "" || req.TradeType == "" || req.Amount == nil {
		return h.err(c, http.StatusBadRequest, "Missing required fields (userWallet, tradeType, amount)", nil)
	}

	userKey, err := solana.PublicKeyFromBase58(req.UserWallet)
	if err != nil || !userKey.IsOnCurve() {
		return h.err(c, http.StatusBadRequest, "Invalid userWallet public key", nil)
	}

	direction, err := trading.ParseDirection(req.TradeType)
	if err != nil {
		return h.err(c, http.StatusBadRequest, "Invalid tradeType (must be 'buy' or 'sell')", nil)
	}

	// Whole positive number only; fractional token quantities are rejected.
	f, err := req.Amount.Float64()
	if err != nil || f <= 0 || f != math.Trunc(f) {
		return h.err(c, http.StatusBadRequest, "Invalid amount (must be a positive integer)", nil)
	}
	amount := uint64(f)

	tx, err := h.Assembler.Assemble(c.Request().Context(), userKey, direction, amount)
	if err != nil {
		h.Logger.WithError(err).Error("failed to prepare transaction")
		return h.err(c, http.StatusInternalServerError, "Internal server error", map[string]any{"err": err.Error()})
	}

	raw, err := tx.MarshalBinary()
	if err != nil {
		h.Logger.WithError(err).Error("failed to serialize transaction")
		return h.err(c, http.StatusInternalServerError, "Internal server error", map[string]any{"err": err.Error()})
	}

	return c.JSON(http.StatusOK, PrepareResponse{
		Message:    "Transaction prepared successfully",
		UnsignedTx: base64.StdEncoding.EncodeToString(raw),
	})
}

// Submit decodes an externally-signed transaction and relays it on-chain.
// Decode and parse failures are reported distinctly; network rejections
// surface as a generic server error with the cause logged server-side.
func (h *Handlers) Submit(c echo.Context) error {
	var req SubmitRequest
	if err := c.Bind(&req); err != nil {
		return h.err(c, http.StatusBadRequest, "invalid json", nil)
	}

	if req.SignedTx == "" {
		return h.err(c, http.StatusBadRequest, "Missing required field: signedTx", nil)
	}

	raw, err := base64.StdEncoding.DecodeString(req.SignedTx)
	if err != nil {
		return h.err(c, http.StatusBadRequest, "Invalid base64 encoding for signedTx", nil)
	}

	txHash, err := h.Relay.Relay(c.Request().Context(), raw)
	if err != nil {
		if errors.Is(err, trading.ErrMalformedTransaction) {
			return h.err(c, http.StatusBadRequest, err.Error(), nil)
		}
		h.Logger.WithError(err).Error("failed to submit transaction")
		return h.err(c, http.StatusInternalServerError, "Internal server error", map[string]any{"err": err.Error()})
	}

	return c.JSON(http.StatusOK, SubmitResponse{
		Message: "Transaction submitted successfully",
		TxHash:  txHash,
	})
}

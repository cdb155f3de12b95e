package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/gagliardetto/solana-go"
)

// DefaultMintAddress is the bonding-curve instrument the service trades
// unless MINT_ADDRESS overrides it.
const DefaultMintAddress = "9ThH8ayxFCFZqssoZmodgvtbTiBmMoLWUqQhRAP89Y97"

type Config struct {
	// HTTP server settings
	Addr    string
	DevMode bool
	APIKey  string

	// Solana settings
	RPCUrl      string
	FeeWallet   string
	MintAddress string

	// RPC client settings
	HTTPTimeout  time.Duration
	MaxRetries   int
	RetryBackoff time.Duration

	// Parsed by Validate; zero until then.
	FeeWalletKey solana.PublicKey
	MintKey      solana.PublicKey
}

func Load() *Config {
	return &Config{
		// HTTP
		Addr:    ":" + getEnv("PORT", "3000"),
		DevMode: getBoolEnv("DEV_MODE", false),
		APIKey:  getEnv("API_KEY", ""),

		// Solana
		RPCUrl:      getEnv("RPC_URL", ""),
		FeeWallet:   getEnv("FEE_WALLET", ""),
		MintAddress: getEnv("MINT_ADDRESS", DefaultMintAddress),

		// RPC client
		HTTPTimeout:  getDurationEnv("HTTP_TIMEOUT", 30*time.Second),
		MaxRetries:   getIntEnv("MAX_RETRIES", 5),
		RetryBackoff: getDurationEnv("RETRY_BACKOFF", 2*time.Second),
	}
}

// Validate checks required settings and parses address fields.
// The process must refuse to start when this returns an error.
func (c *Config) Validate() error {
	if c.RPCUrl == "" {
		return fmt.Errorf("RPC_URL is required")
	}
	if c.FeeWallet == "" {
		return fmt.Errorf("FEE_WALLET is required")
	}

	feeWallet, err := solana.PublicKeyFromBase58(c.FeeWallet)
	if err != nil {
		return fmt.Errorf("FEE_WALLET is not a valid public key: %w", err)
	}
	c.FeeWalletKey = feeWallet

	mint, err := solana.PublicKeyFromBase58(c.MintAddress)
	if err != nil {
		return fmt.Errorf("MINT_ADDRESS is not a valid public key: %w", err)
	}
	c.MintKey = mint

	return nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getIntEnv(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

func getBoolEnv(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return defaultVal
}

func getDurationEnv(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}

package moonshot

import "github.com/gagliardetto/solana-go"

// Moonshot token launchpad program
const ProgramIDBase58 = "MoonCVVNZFSYkqNXP6bxHLPL6QQJiMagDL3qcqUQTrG"

var (
	ProgramID = solana.MustPublicKeyFromBase58(ProgramIDBase58)

	// Protocol fee receivers, fixed by the program
	DexFeeAccount   = solana.MustPublicKeyFromBase58("3udvfL24waJcLhskRAsStNMoNUvtyXdxrWQz4hgi953N")
	HelioFeeAccount = solana.MustPublicKeyFromBase58("5K5RtTWzzLp4P8Npi84ocf7F1vBsAu29N1irG4iiUnzt")

	// SPL Associated Token Account program
	associatedTokenProgramID = solana.MustPublicKeyFromBase58("ATokenGPvbdGVxr1b2hvZbsiqW5xWH25efTNsLJA8knL")
)

// PDA seeds
const (
	curveSeed  = "token"
	configSeed = "config_account"
)

// Trading policy constants. Fixed by the service, not user-configurable.
const (
	// DefaultSlippageBps bounds how far collateral may drift from the quote.
	DefaultSlippageBps = uint64(500)

	// TokenDecimalFactor scales whole-token quantities to raw curve units.
	TokenDecimalFactor = uint64(1_000_000_000)
)

// TradeDirection mirrors the launchpad's BUY/SELL trade sides
type TradeDirection string

const (
	TradeDirectionBuy  TradeDirection = "BUY"
	TradeDirectionSell TradeDirection = "SELL"
)

// FixedSide selects which leg of the swap is held exact.
type FixedSide uint8

const (
	// FixedSideIn holds the collateral amount exact; tokens float.
	FixedSideIn FixedSide = 0
	// FixedSideOut holds the token amount exact; collateral floats.
	FixedSideOut FixedSide = 1
)

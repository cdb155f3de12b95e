package moonshot

import (
	"encoding/binary"
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// Anchor instruction discriminators (sha256("global:<name>")[0:8])
var (
	buyDiscriminator  = [8]byte{102, 6, 61, 18, 1, 218, 235, 234}
	sellDiscriminator = [8]byte{51, 230, 133, 164, 1, 127, 131, 173}
)

// TradeParams is the instruction payload for both buy and sell.
type TradeParams struct {
	TokenAmount      uint64
	CollateralAmount uint64
	FixedSide        FixedSide
	SlippageBps      uint64
}

// BuildTradeInstruction constructs the launchpad buy or sell instruction.
//
// Account order (launchpad program):
// 0. sender (signer, writable)
// 1. sender_token_account (writable)
// 2. curve_account (writable)
// 3. curve_token_account (writable)
// 4. dex_fee (writable)
// 5. helio_fee (writable)
// 6. mint (read-only)
// 7. config_account (read-only)
// 8. token_program
// 9. associated_token_program
// 10. system_program
func BuildTradeInstruction(
	sender solana.PublicKey,
	mint solana.PublicKey,
	direction TradeDirection,
	params TradeParams,
) (solana.Instruction, error) {

	if sender.IsZero() {
		return nil, fmt.Errorf("sender is zero")
	}
	if mint.IsZero() {
		return nil, fmt.Errorf("mint is zero")
	}

	var discriminator [8]byte
	switch direction {
	case TradeDirectionBuy:
		discriminator = buyDiscriminator
	case TradeDirectionSell:
		discriminator = sellDiscriminator
	default:
		return nil, fmt.Errorf("invalid trade direction: %q", direction)
	}

	curveAccount, err := DeriveCurveAccount(mint)
	if err != nil {
		return nil, err
	}
	configAccount, err := DeriveConfigAccount()
	if err != nil {
		return nil, err
	}
	senderTokenAccount, err := FindAssociatedTokenAddress(sender, mint)
	if err != nil {
		return nil, err
	}
	curveTokenAccount, err := FindAssociatedTokenAddress(curveAccount, mint)
	if err != nil {
		return nil, err
	}

	accounts := []*solana.AccountMeta{
		{PublicKey: sender, IsSigner: true, IsWritable: true},
		{PublicKey: senderTokenAccount, IsSigner: false, IsWritable: true},
		{PublicKey: curveAccount, IsSigner: false, IsWritable: true},
		{PublicKey: curveTokenAccount, IsSigner: false, IsWritable: true},
		{PublicKey: DexFeeAccount, IsSigner: false, IsWritable: true},
		{PublicKey: HelioFeeAccount, IsSigner: false, IsWritable: true},
		{PublicKey: mint, IsSigner: false, IsWritable: false},
		{PublicKey: configAccount, IsSigner: false, IsWritable: false},
		{PublicKey: solana.TokenProgramID, IsSigner: false, IsWritable: false},
		{PublicKey: associatedTokenProgramID, IsSigner: false, IsWritable: false},
		{PublicKey: solana.SystemProgramID, IsSigner: false, IsWritable: false},
	}

	// Instruction data layout:
	// [0:8]   discriminator
	// [8:16]  token_amount (u64, little-endian)
	// [16:24] collateral_amount (u64, little-endian)
	// [24]    fixed_side (u8)
	// [25:33] slippage_bps (u64, little-endian)
	data := make([]byte, 33)
	copy(data[0:8], discriminator[:])
	binary.LittleEndian.PutUint64(data[8:16], params.TokenAmount)
	binary.LittleEndian.PutUint64(data[16:24], params.CollateralAmount)
	data[24] = byte(params.FixedSide)
	binary.LittleEndian.PutUint64(data[25:33], params.SlippageBps)

	return solana.NewInstruction(ProgramID, accounts, data), nil
}

// NewCreateATAIdempotentIx builds an idempotent create instruction for the
// sender's associated token account. No-op on chain if it already exists.
// Account order (ATA program):
// 0. payer (signer, writable)
// 1. ata (writable)
// 2. owner (read-only)
// 3. mint (read-only)
// 4. system_program
// 5. token_program
func NewCreateATAIdempotentIx(payer, owner, mint solana.PublicKey) (solana.Instruction, error) {
	ata, err := FindAssociatedTokenAddress(owner, mint)
	if err != nil {
		return nil, err
	}

	accounts := []*solana.AccountMeta{
		{PublicKey: payer, IsSigner: true, IsWritable: true},
		{PublicKey: ata, IsSigner: false, IsWritable: true},
		{PublicKey: owner, IsSigner: false, IsWritable: false},
		{PublicKey: mint, IsSigner: false, IsWritable: false},
		{PublicKey: solana.SystemProgramID, IsSigner: false, IsWritable: false},
		{PublicKey: solana.TokenProgramID, IsSigner: false, IsWritable: false},
	}

	// ATA program instruction index 1 = CreateIdempotent
	return solana.NewInstruction(associatedTokenProgramID, accounts, []byte{1}), nil
}

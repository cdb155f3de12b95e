package moonshot

import (
	"bytes"
	"fmt"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
)

// curveAccountDiscriminator prefixes every curve state account (anchor
// account discriminator).
var curveAccountDiscriminator = [8]byte{23, 183, 248, 55, 96, 216, 172, 96}

// CurveAccount is the on-chain bonding curve state for one mint.
// The virtual reserves drive pricing; the real reserves track what the
// curve actually holds.
type CurveAccount struct {
	VirtualTokenReserves      uint64
	VirtualCollateralReserves uint64
	RealTokenReserves         uint64
	RealCollateralReserves    uint64
	TokenTotalSupply          uint64
	Complete                  bool
}

// DecodeCurveAccount parses raw account data (Borsh, anchor-discriminated)
// into a CurveAccount.
func DecodeCurveAccount(data []byte) (*CurveAccount, error) {
	if len(data) < 8 {
		return nil, fmt.Errorf("curve account data too short: %d bytes", len(data))
	}
	if !bytes.Equal(data[:8], curveAccountDiscriminator[:]) {
		return nil, fmt.Errorf("not a curve account (discriminator mismatch)")
	}

	var acc CurveAccount
	dec := bin.NewBorshDecoder(data[8:])
	if err := dec.Decode(&acc); err != nil {
		return nil, fmt.Errorf("failed to decode curve account: %w", err)
	}

	return &acc, nil
}

// DeriveCurveAccount derives the curve state PDA for a mint.
func DeriveCurveAccount(mint solana.PublicKey) (solana.PublicKey, error) {
	addr, _, err := solana.FindProgramAddress(
		[][]byte{
			[]byte(curveSeed),
			mint.Bytes(),
		},
		ProgramID,
	)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("failed to derive curve account: %w", err)
	}
	return addr, nil
}

// DeriveConfigAccount derives the program-wide config PDA.
func DeriveConfigAccount() (solana.PublicKey, error) {
	addr, _, err := solana.FindProgramAddress(
		[][]byte{[]byte(configSeed)},
		ProgramID,
	)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("failed to derive config account: %w", err)
	}
	return addr, nil
}

// FindAssociatedTokenAddress derives the ATA PDA for (owner, mint).
func FindAssociatedTokenAddress(owner, mint solana.PublicKey) (solana.PublicKey, error) {
	ata, _, err := solana.FindProgramAddress(
		[][]byte{
			owner.Bytes(),
			solana.TokenProgramID.Bytes(),
			mint.Bytes(),
		},
		associatedTokenProgramID,
	)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("failed to derive token account: %w", err)
	}
	return ata, nil
}

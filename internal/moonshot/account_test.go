package moonshot

import (
	"encoding/binary"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testMint = solana.MustPublicKeyFromBase58("9ThH8ayxFCFZqssoZmodgvtbTiBmMoLWUqQhRAP89Y97")

// encodeCurveAccount lays out a curve account the way the program stores it:
// 8-byte discriminator, five u64 little-endian fields, then a bool byte.
func encodeCurveAccount(acc CurveAccount) []byte {
	data := make([]byte, 0, 8+5*8+1)
	data = append(data, curveAccountDiscriminator[:]...)
	for _, v := range []uint64{
		acc.VirtualTokenReserves,
		acc.VirtualCollateralReserves,
		acc.RealTokenReserves,
		acc.RealCollateralReserves,
		acc.TokenTotalSupply,
	} {
		data = binary.LittleEndian.AppendUint64(data, v)
	}
	if acc.Complete {
		data = append(data, 1)
	} else {
		data = append(data, 0)
	}
	return data
}

func TestDecodeCurveAccount(t *testing.T) {
	want := CurveAccount{
		VirtualTokenReserves:      1_073_000_000_000_000,
		VirtualCollateralReserves: 30_000_000_000,
		RealTokenReserves:         793_100_000_000_000,
		RealCollateralReserves:    0,
		TokenTotalSupply:          1_000_000_000_000_000,
		Complete:                  false,
	}

	got, err := DecodeCurveAccount(encodeCurveAccount(want))
	require.NoError(t, err)
	assert.Equal(t, want, *got)
}

func TestDecodeCurveAccount_CompleteFlag(t *testing.T) {
	want := CurveAccount{
		VirtualTokenReserves:      1,
		VirtualCollateralReserves: 1,
		Complete:                  true,
	}

	got, err := DecodeCurveAccount(encodeCurveAccount(want))
	require.NoError(t, err)
	assert.True(t, got.Complete)
}

func TestDecodeCurveAccount_TooShort(t *testing.T) {
	_, err := DecodeCurveAccount([]byte{1, 2, 3})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too short")
}

func TestDecodeCurveAccount_WrongDiscriminator(t *testing.T) {
	data := encodeCurveAccount(CurveAccount{VirtualTokenReserves: 1})
	data[0] ^= 0xff

	_, err := DecodeCurveAccount(data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "discriminator")
}

func TestDeriveCurveAccount(t *testing.T) {
	addr, err := DeriveCurveAccount(testMint)
	require.NoError(t, err)
	assert.False(t, addr.IsZero())
	assert.NotEqual(t, testMint, addr)

	// derivation is deterministic
	again, err := DeriveCurveAccount(testMint)
	require.NoError(t, err)
	assert.Equal(t, addr, again)
}

func TestDeriveConfigAccount(t *testing.T) {
	addr, err := DeriveConfigAccount()
	require.NoError(t, err)
	assert.False(t, addr.IsZero())
}

func TestFindAssociatedTokenAddress(t *testing.T) {
	owner := solana.MustPublicKeyFromBase58("So11111111111111111111111111111111111111112")

	ata, err := FindAssociatedTokenAddress(owner, testMint)
	require.NoError(t, err)
	assert.False(t, ata.IsZero())
	assert.NotEqual(t, owner, ata)

	// distinct owners get distinct token accounts
	other, err := FindAssociatedTokenAddress(testMint, testMint)
	require.NoError(t, err)
	assert.NotEqual(t, ata, other)
}

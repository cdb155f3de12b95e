package moonshot

import (
	"context"
	"encoding/binary"
	"fmt"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFetcher struct {
	data map[solana.PublicKey][]byte
	err  error
}

func (s *stubFetcher) AccountData(_ context.Context, pubkey solana.PublicKey, _ string) ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}
	data, ok := s.data[pubkey]
	if !ok {
		return nil, fmt.Errorf("account %s not found", pubkey)
	}
	return data, nil
}

func TestNewClient_RequiresFetcher(t *testing.T) {
	_, err := NewClient(nil, nil)
	assert.Error(t, err)
}

func TestCurveState(t *testing.T) {
	curveAddr, err := DeriveCurveAccount(testMint)
	require.NoError(t, err)

	want := CurveAccount{
		VirtualTokenReserves:      1_073_000_000_000_000,
		VirtualCollateralReserves: 30_000_000_000,
		TokenTotalSupply:          1_000_000_000_000_000,
	}
	fetcher := &stubFetcher{data: map[solana.PublicKey][]byte{
		curveAddr: encodeCurveAccount(want),
	}}

	client, err := NewClient(fetcher, nil)
	require.NoError(t, err)

	got, err := client.CurveState(context.Background(), testMint)
	require.NoError(t, err)
	assert.Equal(t, want, *got)
}

func TestCurveState_FetchError(t *testing.T) {
	client, err := NewClient(&stubFetcher{err: fmt.Errorf("node unavailable")}, nil)
	require.NoError(t, err)

	_, err = client.CurveState(context.Background(), testMint)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "node unavailable")
}

func TestCurveState_BadAccountData(t *testing.T) {
	curveAddr, err := DeriveCurveAccount(testMint)
	require.NoError(t, err)

	fetcher := &stubFetcher{data: map[solana.PublicKey][]byte{
		curveAddr: {1, 2, 3, 4, 5, 6, 7, 8, 9},
	}}
	client, err := NewClient(fetcher, nil)
	require.NoError(t, err)

	_, err = client.CurveState(context.Background(), testMint)
	assert.Error(t, err)
}

func TestPrepareSwapInstructions_BuyIncludesATACreate(t *testing.T) {
	client, err := NewClient(&stubFetcher{}, nil)
	require.NoError(t, err)

	ixs, err := client.PrepareSwapInstructions(
		testSender, testMint, TradeDirectionBuy, 1_000_000_000, 10_000, DefaultSlippageBps)
	require.NoError(t, err)
	require.Len(t, ixs, 2)

	assert.Equal(t, associatedTokenProgramID, ixs[0].ProgramID())
	assert.Equal(t, ProgramID, ixs[1].ProgramID())

	// collateral is bounded upward for a buy
	data, err := ixs[1].Data()
	require.NoError(t, err)
	assert.Equal(t, buyDiscriminator[:], data[0:8])
	assert.Equal(t, MaxCollateralWithSlippage(10_000, DefaultSlippageBps), binary.LittleEndian.Uint64(data[16:24]))
}

func TestPrepareSwapInstructions_SellIsSingleInstruction(t *testing.T) {
	client, err := NewClient(&stubFetcher{}, nil)
	require.NoError(t, err)

	ixs, err := client.PrepareSwapInstructions(
		testSender, testMint, TradeDirectionSell, 1_000_000_000, 10_000, DefaultSlippageBps)
	require.NoError(t, err)
	require.Len(t, ixs, 1)

	data, err := ixs[0].Data()
	require.NoError(t, err)
	assert.Equal(t, sellDiscriminator[:], data[0:8])
	assert.Equal(t, MinCollateralWithSlippage(10_000, DefaultSlippageBps), binary.LittleEndian.Uint64(data[16:24]))
}

func TestPrepareSwapInstructions_BadDirection(t *testing.T) {
	client, err := NewClient(&stubFetcher{}, nil)
	require.NoError(t, err)

	_, err = client.PrepareSwapInstructions(
		testSender, testMint, TradeDirection("HOLD"), 1, 1, 0)
	assert.Error(t, err)
}

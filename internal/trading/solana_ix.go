package trading

import (
	"encoding/binary"

	"github.com/gagliardetto/solana-go"
)

var computeBudgetProgramID = solana.MustPublicKeyFromBase58("ComputeBudget111111111111111111111111111111")

// NewSetComputeUnitPriceIx builds a ComputeBudget instruction raising the
// transaction's priority fee.
func NewSetComputeUnitPriceIx(microLamports uint64) solana.Instruction {
	// ComputeBudget instruction layout:
	// u8:  instruction index (3 = SetComputeUnitPrice)
	// u64: micro-lamports per compute unit
	data := make([]byte, 1+8)
	data[0] = 3
	binary.LittleEndian.PutUint64(data[1:9], microLamports)

	// ComputeBudget instructions take no accounts.
	return solana.NewInstruction(computeBudgetProgramID, nil, data)
}

// NewSystemTransferIx builds a SystemProgram transfer instruction.
func NewSystemTransferIx(from, to solana.PublicKey, lamports uint64) solana.Instruction {
	// SystemProgram instruction layout:
	// u32: instruction index (2 = Transfer)
	// u64: lamports
	data := make([]byte, 4+8)
	binary.LittleEndian.PutUint32(data[0:4], 2)
	binary.LittleEndian.PutUint64(data[4:12], lamports)

	accounts := []*solana.AccountMeta{
		{PublicKey: from, IsSigner: true, IsWritable: true},
		{PublicKey: to, IsSigner: false, IsWritable: true},
	}
	return solana.NewInstruction(solana.SystemProgramID, accounts, data)
}

package ledger

import (
	"context"
	"sync"

	"github.com/console-banking-ledger/internal/domain/account"
	"github.com/panjf2000/ants/v2"
	"github.com/shopspring/decimal"
)

// TransferInstruction names both sides of a transfer by client and account identifiers
type TransferInstruction struct {
	SourceClientID  string
	SourceAccountID string
	TargetClientID  string
	TargetAccountID string
	Amount          decimal.Decimal
}

// TransferResult is the outcome of one instruction; exactly one of Receipt and Err is set
type TransferResult struct {
	Instruction TransferInstruction
	Receipt     *account.Receipt
	Err         error
}

// BatchTransferer executes independent transfers concurrently on a bounded worker pool.
// Per-account locking keeps every transfer all-or-nothing regardless of interleaving.
type BatchTransferer struct {
	ledger *Ledger
	pool   *ants.Pool
}

// NewBatchTransferer creates a transferer backed by a pool of size workers
func NewBatchTransferer(l *Ledger, size int) (*BatchTransferer, error) {
	pool, err := ants.NewPool(size)
	if err != nil {
		return nil, err
	}

	return &BatchTransferer{
		ledger: l,
		pool:   pool,
	}, nil
}

// Run executes every instruction and returns results in instruction order.
// Instructions not yet started when ctx is cancelled fail with ctx.Err().
func (b *BatchTransferer) Run(ctx context.Context, instructions []TransferInstruction) []TransferResult {
	results := make([]TransferResult, len(instructions))
	var wg sync.WaitGroup

	for i, instruction := range instructions {
		results[i].Instruction = instruction

		if err := ctx.Err(); err != nil {
			results[i].Err = err
			continue
		}

		wg.Add(1)
		err := b.pool.Submit(func() {
			defer wg.Done()
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return
			}
			results[i].Receipt, results[i].Err = b.execute(instruction)
		})
		if err != nil {
			wg.Done()
			results[i].Err = err
		}
	}

	wg.Wait()
	return results
}

func (b *BatchTransferer) execute(instruction TransferInstruction) (*account.Receipt, error) {
	source, err := b.ledger.FindAccount(instruction.SourceClientID, instruction.SourceAccountID)
	if err != nil {
		return nil, err
	}
	target, err := b.ledger.FindAccount(instruction.TargetClientID, instruction.TargetAccountID)
	if err != nil {
		return nil, err
	}
	return b.ledger.Transfer(source, target, instruction.Amount)
}

// Shutdown releases the worker pool
func (b *BatchTransferer) Shutdown() {
	b.pool.Release()
}

// Capacity returns the capacity of the worker pool.
func (b *BatchTransferer) Capacity() int {
	return b.pool.Cap()
}

// Package committer collects Spanner mutations from repositories into a
// CommitPlan that is applied in a single transaction.
//
// Repositories never apply mutations themselves: domain aggregates mutate
// in memory, repositories translate the dirty state into mutations, and a
// usecase gathers every mutation for the operation (aggregate rows plus
// outbox events) into one plan. The plan commits atomically, so a cascade
// such as hiding a product together with all of its variants either lands
// completely or not at all.
//
// Check-then-act sequences (hard deletes gated on referential counts) go
// through ApplyWithReadWriteTransaction instead, which lets the caller
// re-run its reads inside the transaction before buffering the writes.
package committer

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
)

// CommitPlan accumulates mutations destined for one atomic commit.
type CommitPlan struct {
	mutations []*spanner.Mutation
}

// NewPlan creates an empty CommitPlan.
func NewPlan() *CommitPlan {
	return &CommitPlan{
		mutations: make([]*spanner.Mutation, 0),
	}
}

// Add appends a mutation to the plan. Nil mutations are ignored so
// repositories can return nil for no-op updates.
func (cp *CommitPlan) Add(mut *spanner.Mutation) {
	if mut != nil {
		cp.mutations = append(cp.mutations, mut)
	}
}

// AddMultiple appends several mutations to the plan.
func (cp *CommitPlan) AddMultiple(muts []*spanner.Mutation) {
	for _, mut := range muts {
		cp.Add(mut)
	}
}

// Mutations returns the collected mutations.
func (cp *CommitPlan) Mutations() []*spanner.Mutation {
	return cp.mutations
}

// IsEmpty reports whether the plan holds no mutations.
func (cp *CommitPlan) IsEmpty() bool {
	return len(cp.mutations) == 0
}

// Count returns the number of mutations in the plan.
func (cp *CommitPlan) Count() int {
	return len(cp.mutations)
}

// Committer executes CommitPlans against Spanner.
type Committer struct {
	client *spanner.Client
}

// NewCommitter creates a Committer bound to the given client.
func NewCommitter(client *spanner.Client) *Committer {
	return &Committer{client: client}
}

// Apply commits the plan atomically. An empty plan is a no-op.
func (c *Committer) Apply(ctx context.Context, plan *CommitPlan) error {
	if plan.IsEmpty() {
		return nil
	}

	_, err := c.client.Apply(ctx, plan.Mutations())
	if err != nil {
		return fmt.Errorf("failed to apply commit plan: %w", err)
	}

	return nil
}

// ApplyWithReadWriteTransaction runs fn inside a Spanner read-write
// transaction. fn performs its own reads on the transaction and buffers
// writes with txn.BufferWrite; returning an error aborts the commit.
func (c *Committer) ApplyWithReadWriteTransaction(ctx context.Context, fn func(context.Context, *spanner.ReadWriteTransaction) error) error {
	_, err := c.client.ReadWriteTransaction(ctx, fn)
	return err
}

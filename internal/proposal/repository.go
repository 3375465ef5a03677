package proposal

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	proposaldb "grocery-optimizer/internal/proposal/db"
)

// Proposal is a stored three-version basket bundle.
type Proposal struct {
	ID        int64
	UserID    string
	Data      []byte // Raw JSON of the proposal bundle
	CreatedAt time.Time
}

// Repository is a database-backed repository for generated proposals.
type Repository struct {
	queries *proposaldb.Queries
	db      *sql.DB
}

// NewRepository creates a new Repository.
func NewRepository(d *sql.DB) *Repository {
	return &Repository{
		queries: proposaldb.New(d),
		db:      d,
	}
}

// Save inserts a new proposal bundle into the database.
func (r *Repository) Save(ctx context.Context, userID string, data []byte) error {
	return r.queries.InsertProposal(ctx, proposaldb.InsertProposalParams{
		UserID:    userID,
		Data:      string(data),
		CreatedAt: time.Now().UTC(),
	})
}

// ListRecentByUserID retrieves the N most recent proposals for a user.
func (r *Repository) ListRecentByUserID(ctx context.Context, userID string, limit int) ([]Proposal, error) {
	dbProposals, err := r.queries.ListRecentProposalsByUserID(ctx, proposaldb.ListRecentProposalsByUserIDParams{
		UserID: userID,
		Limit:  int64(limit),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list recent proposals for user %s: %w", userID, err)
	}

	var proposals []Proposal
	for _, p := range dbProposals {
		proposals = append(proposals, Proposal{
			ID:        p.ID,
			UserID:    p.UserID,
			Data:      []byte(p.Data),
			CreatedAt: p.CreatedAt,
		})
	}
	return proposals, nil
}

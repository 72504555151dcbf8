package ports

import "context"

// RoundRecord is one player's result for a finished round.
type RoundRecord struct {
	UserID   string
	Won      bool
	Metadata map[string]interface{}
}

// StatsPort persists cumulative per-user Punto results.
type StatsPort interface {
	// GetWins retrieves the lifetime round wins of a user.
	GetWins(ctx context.Context, userID string) (int64, error)

	// RecordRounds adds one played round, and a win where Won is set, per record.
	RecordRounds(ctx context.Context, records []RoundRecord) error

	// InitRecordOnce creates the user's stats record. Returns created=false when it already exists.
	InitRecordOnce(ctx context.Context, userID string) (bool, error)
}

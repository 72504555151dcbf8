package onboarding

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"punto/internal/ports"
)

// Result captures non-fatal onboarding outcomes.
type Result struct {
	// ProfileUpdateErr is set when the profile update failed but onboarding continued.
	ProfileUpdateErr error
	// StatsCreated is false when the user already had a stats record.
	StatsCreated bool
}

// Service prepares freshly created accounts for their first match.
type Service struct {
	accounts ports.AccountPort
	stats    ports.StatsPort
	rng      *rand.Rand
}

// NewService constructs an onboarding service with required ports.
// rng may be nil to use a time-seeded default.
func NewService(accounts ports.AccountPort, stats ports.StatsPort, rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{
		accounts: accounts,
		stats:    stats,
		rng:      rng,
	}
}

// OnboardNewUser names the account and creates its win/round counters.
// A failed profile update is reported in Result; a failed stats init is an error.
func (s *Service) OnboardNewUser(ctx context.Context, userID string) (Result, error) {
	if s.accounts == nil || s.stats == nil {
		return Result{}, fmt.Errorf("onboarding service not configured")
	}

	result := Result{}
	metadata := map[string]interface{}{"favorite_color": s.pickColor()}
	if err := s.accounts.SetDisplayName(ctx, userID, s.generateFriendlyName(), metadata); err != nil {
		result.ProfileUpdateErr = err
	}

	created, err := s.stats.InitRecordOnce(ctx, userID)
	if err != nil {
		return result, fmt.Errorf("failed to init stats: %w", err)
	}
	result.StatsCreated = created
	return result, nil
}

func (s *Service) pickColor() string {
	colors := []string{"red", "blue", "green", "yellow"}
	return colors[s.rng.Intn(len(colors))]
}

func (s *Service) generateFriendlyName() string {
	adjectives := []string{"Bold", "Quiet", "Lucky", "Sharp", "Rapid", "Steady", "Clever", "Sly"}
	nouns := []string{"Placer", "Stacker", "Dealer", "Tiler", "Lynx", "Heron", "Badger", "Crow"}

	adj := adjectives[s.rng.Intn(len(adjectives))]
	noun := nouns[s.rng.Intn(len(nouns))]
	return fmt.Sprintf("%s%s%d", adj, noun, s.rng.Intn(9000)+1000)
}

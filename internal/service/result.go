package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

type ResultService interface {
	RecordMatch(ctx context.Context, match *entity.Match) error

	RecentMatches(ctx context.Context, limit int) ([]*entity.Match, error)
	Leaderboard(ctx context.Context, limit int) ([]entity.LeaderboardEntry, error)
}

type resultRepo interface {
	Save(ctx context.Context, match *entity.Match) error

	ListRecent(ctx context.Context, limit int) ([]*entity.Match, error)
	Leaderboard(ctx context.Context, limit int) ([]entity.LeaderboardEntry, error)
}

type resultService struct {
	resultRepo resultRepo
	now        func() time.Time
}

func NewResultService(resultRepo resultRepo) ResultService {
	return &resultService{
		resultRepo: resultRepo,
		now:        time.Now,
	}
}

// RecordMatch - gives the match an ID if it has none, stamps the finish time and stores it.
func (that *resultService) RecordMatch(ctx context.Context, match *entity.Match) error {
	if match.ID == "" {
		match.ID = uuid.NewString()
	}

	match.FinishedAt = that.now().UTC()

	if err := that.resultRepo.Save(ctx, match); err != nil {
		return fmt.Errorf("failed to save match result: %w", err)
	}

	return nil
}

func (that *resultService) RecentMatches(ctx context.Context, limit int) ([]*entity.Match, error) {
	matches, err := that.resultRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve recent matches from storage: %w", err)
	}

	return matches, nil
}

func (that *resultService) Leaderboard(ctx context.Context, limit int) ([]entity.LeaderboardEntry, error) {
	entries, err := that.resultRepo.Leaderboard(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve leaderboard from storage: %w", err)
	}

	return entries, nil
}

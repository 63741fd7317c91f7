package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const (
	recentMatchesKey = "matches:recent"
	leaderboardKey   = "leaderboard"

	recentMatchesLimit = 100
)

var ErrMatchNotFound = errors.New("match not found")

type ResultRepository interface {
	Save(ctx context.Context, match *entity.Match) error
	GetByID(ctx context.Context, id string) (*entity.Match, error)
	DeleteByID(ctx context.Context, id string) error

	ListRecent(ctx context.Context, limit int) ([]*entity.Match, error)
	Leaderboard(ctx context.Context, limit int) ([]entity.LeaderboardEntry, error)
}

type dbResult struct {
	client *redis.Client
}

func NewResultRepository(client *redis.Client) ResultRepository {
	return &dbResult{
		client: client,
	}
}

func matchKey(id string) string {
	return "match:" + id
}

// Save - stores the match, pushes it onto the recent list and credits the champion on the leaderboard.
func (that *dbResult) Save(ctx context.Context, match *entity.Match) error {
	matchJSON, err := json.Marshal(match)
	if err != nil {
		return fmt.Errorf("could not marshal match: %w", err)
	}

	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, matchKey(match.ID), matchJSON, 0)
		pipe.LPush(ctx, recentMatchesKey, match.ID)
		pipe.LTrim(ctx, recentMatchesKey, 0, recentMatchesLimit-1)

		if champion := match.Champion(); champion != nil {
			pipe.ZIncrBy(ctx, leaderboardKey, 1, champion.Name)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save match: %w", err)
	}

	return nil
}

func (that *dbResult) GetByID(ctx context.Context, id string) (*entity.Match, error) {
	response, err := that.client.Get(ctx, matchKey(id)).Result()

	if errors.Is(err, redis.Nil) {
		return &entity.Match{}, ErrMatchNotFound
	}

	if err != nil {
		return &entity.Match{}, fmt.Errorf("failed to get match by ID: %w", err)
	}

	var existingMatch entity.Match
	if err = json.Unmarshal([]byte(response), &existingMatch); err != nil {
		return &entity.Match{}, fmt.Errorf("failed to unmarshal match: %w", err)
	}

	return &existingMatch, nil
}

func (that *dbResult) DeleteByID(ctx context.Context, id string) error {
	deleted, err := that.client.Del(ctx, matchKey(id)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete match by ID: %w", err)
	}

	if deleted == 0 {
		return ErrMatchNotFound
	}

	if err = that.client.LRem(ctx, recentMatchesKey, 0, id).Err(); err != nil {
		return fmt.Errorf("failed to remove match from recent list: %w", err)
	}

	return nil
}

// ListRecent - newest first. Ids whose match is gone are skipped.
func (that *dbResult) ListRecent(ctx context.Context, limit int) ([]*entity.Match, error) {
	if limit <= 0 {
		return []*entity.Match{}, nil
	}

	ids, err := that.client.LRange(ctx, recentMatchesKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list recent matches: %w", err)
	}

	if len(ids) == 0 {
		return []*entity.Match{}, nil
	}

	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, matchKey(id))
	}

	values, err := that.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get recent matches: %w", err)
	}

	matches := make([]*entity.Match, 0, len(values))
	for _, value := range values {
		raw, ok := value.(string)
		if !ok {
			continue
		}

		var match entity.Match
		if err = json.Unmarshal([]byte(raw), &match); err != nil {
			return nil, fmt.Errorf("failed to unmarshal match: %w", err)
		}

		matches = append(matches, &match)
	}

	return matches, nil
}

func (that *dbResult) Leaderboard(ctx context.Context, limit int) ([]entity.LeaderboardEntry, error) {
	if limit <= 0 {
		return []entity.LeaderboardEntry{}, nil
	}

	scores, err := that.client.ZRevRangeWithScores(ctx, leaderboardKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read leaderboard: %w", err)
	}

	entries := make([]entity.LeaderboardEntry, 0, len(scores))
	for _, score := range scores {
		name, _ := score.Member.(string)
		entries = append(entries, entity.LeaderboardEntry{Name: name, Wins: int(score.Score)})
	}

	return entries, nil
}

package repository

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// memoryResult - result store that lives as long as the process.
type memoryResult struct {
	mu sync.Mutex

	matches map[string]entity.Match
	recent  []string
	wins    map[string]int
}

func NewMemoryResultRepository() ResultRepository {
	return &memoryResult{
		matches: make(map[string]entity.Match),
		wins:    make(map[string]int),
	}
}

func (that *memoryResult) Save(_ context.Context, match *entity.Match) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.matches[match.ID] = copyMatch(match)

	that.recent = slices.Insert(that.recent, 0, match.ID)
	if len(that.recent) > recentMatchesLimit {
		that.recent = that.recent[:recentMatchesLimit]
	}

	if champion := match.Champion(); champion != nil {
		that.wins[champion.Name]++
	}

	return nil
}

func (that *memoryResult) GetByID(_ context.Context, id string) (*entity.Match, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	match, ok := that.matches[id]
	if !ok {
		return &entity.Match{}, ErrMatchNotFound
	}

	cp := copyMatch(&match)

	return &cp, nil
}

func (that *memoryResult) DeleteByID(_ context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.matches[id]; !ok {
		return ErrMatchNotFound
	}

	delete(that.matches, id)
	that.recent = slices.DeleteFunc(that.recent, func(recentID string) bool {
		return recentID == id
	})

	return nil
}

func (that *memoryResult) ListRecent(_ context.Context, limit int) ([]*entity.Match, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	matches := make([]*entity.Match, 0, min(max(limit, 0), len(that.recent)))
	for _, id := range that.recent {
		if len(matches) >= limit {
			break
		}

		stored := that.matches[id]
		match := copyMatch(&stored)
		matches = append(matches, &match)
	}

	return matches, nil
}

// Leaderboard - most wins first, names in reverse order on equal wins like a Redis sorted set.
func (that *memoryResult) Leaderboard(_ context.Context, limit int) ([]entity.LeaderboardEntry, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	entries := make([]entity.LeaderboardEntry, 0, len(that.wins))
	for name, wins := range that.wins {
		entries = append(entries, entity.LeaderboardEntry{Name: name, Wins: wins})
	}

	slices.SortFunc(entries, func(a, b entity.LeaderboardEntry) int {
		if a.Wins != b.Wins {
			return b.Wins - a.Wins
		}

		return strings.Compare(b.Name, a.Name)
	})

	if limit < len(entries) {
		entries = entries[:max(limit, 0)]
	}

	return entries, nil
}

// copyMatch - detaches the stored match from the caller's players.
func copyMatch(match *entity.Match) entity.Match {
	cp := *match
	for i, player := range match.Players {
		if player != nil {
			p := *player
			cp.Players[i] = &p
		}
	}

	return cp
}

package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/mealping/mealping-coaching-core/internal/domain"
)

const (
	streakStateKeyPrefix = "mealping:streak:"
)

// streakStateRecord is the stored shape of a StreakState. Sets are stored as
// sorted-friendly slices so records stay readable in redis-cli.
type streakStateRecord struct {
	UserID                string   `json:"user_id"`
	CurrentStreak         int      `json:"current_streak"`
	BestStreak            int      `json:"best_streak"`
	CreditedStreak        int      `json:"credited_streak"`
	CurrentLevel          string   `json:"current_level"`
	AwardedBadges         []string `json:"awarded_badges"`
	HasEverLogged         bool     `json:"has_ever_logged"`
	LastEvaluatedDay      string   `json:"last_evaluated_day"`
	LastCreditedDay       string   `json:"last_credited_day"`
	TodaysAchievementKeys []string `json:"todays_achievement_keys"`
}

type streakRepository struct {
	client *redis.Client
}

func NewStreakRepository(client *redis.Client) domain.StreakRepository {
	return &streakRepository{
		client: client,
	}
}

func (r *streakRepository) GetStreakState(ctx context.Context, userID string) (*domain.StreakState, error) {
	key := streakStateKeyPrefix + userID

	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrStreakStateNotFound
		}
		return nil, err
	}

	var record streakStateRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, ErrInvalidStreakStateData
	}

	return recordToState(&record), nil
}

func (r *streakRepository) SaveStreakState(ctx context.Context, state *domain.StreakState) error {
	if state == nil || state.UserID == "" {
		return ErrInvalidStreakStateData
	}

	key := streakStateKeyPrefix + state.UserID

	data, err := json.Marshal(stateToRecord(state))
	if err != nil {
		return ErrInvalidStreakStateData
	}

	// Gamification state is durable: no TTL.
	return r.client.Set(ctx, key, data, 0).Err()
}

func (r *streakRepository) DeleteStreakState(ctx context.Context, userID string) error {
	return r.client.Del(ctx, streakStateKeyPrefix+userID).Err()
}

func stateToRecord(state *domain.StreakState) *streakStateRecord {
	badges := make([]string, 0, len(state.AwardedBadges))
	for id := range state.AwardedBadges {
		badges = append(badges, string(id))
	}

	keys := make([]string, 0, len(state.TodaysAchievementKeys))
	for key := range state.TodaysAchievementKeys {
		keys = append(keys, key)
	}

	return &streakStateRecord{
		UserID:                state.UserID,
		CurrentStreak:         state.CurrentStreak,
		BestStreak:            state.BestStreak,
		CreditedStreak:        state.CreditedStreak,
		CurrentLevel:          state.CurrentLevel.String(),
		AwardedBadges:         badges,
		HasEverLogged:         state.HasEverLogged,
		LastEvaluatedDay:      state.LastEvaluatedDay,
		LastCreditedDay:       state.LastCreditedDay,
		TodaysAchievementKeys: keys,
	}
}

func recordToState(record *streakStateRecord) *domain.StreakState {
	state := domain.NewStreakState(record.UserID)
	state.CurrentStreak = record.CurrentStreak
	state.BestStreak = record.BestStreak
	state.CreditedStreak = record.CreditedStreak
	state.CurrentLevel = domain.Level(record.CurrentLevel)
	state.HasEverLogged = record.HasEverLogged
	state.LastEvaluatedDay = record.LastEvaluatedDay
	state.LastCreditedDay = record.LastCreditedDay

	for _, badge := range record.AwardedBadges {
		state.AwardedBadges[domain.BadgeID(badge)] = true
	}
	for _, key := range record.TodaysAchievementKeys {
		state.TodaysAchievementKeys[key] = true
	}

	return state
}

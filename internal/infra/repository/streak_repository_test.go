package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/mealping/mealping-coaching-core/internal/domain"
	"github.com/mealping/mealping-coaching-core/internal/testutil"
)

func TestStreakRepositoryRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client, cleanup := testutil.SetupRedisContainer(ctx, t)
	defer cleanup()

	repo := NewStreakRepository(client)

	state := domain.NewStreakState("user-1")
	state.CurrentStreak = 7
	state.BestStreak = 12
	state.CreditedStreak = 7
	state.CurrentLevel = domain.LevelConsistent
	state.HasEverLogged = true
	state.LastEvaluatedDay = "2026-03-02"
	state.LastCreditedDay = "2026-03-02"
	state.AwardedBadges[domain.BadgeThreeDay] = true
	state.AwardedBadges[domain.BadgeFirstWeek] = true
	state.TodaysAchievementKeys["first_today"] = true

	if err := repo.SaveStreakState(ctx, state); err != nil {
		t.Fatalf("SaveStreakState() error = %v", err)
	}

	loaded, err := repo.GetStreakState(ctx, "user-1")
	if err != nil {
		t.Fatalf("GetStreakState() error = %v", err)
	}

	if loaded.CurrentStreak != 7 {
		t.Errorf("CurrentStreak = %d, want 7", loaded.CurrentStreak)
	}
	if loaded.BestStreak != 12 {
		t.Errorf("BestStreak = %d, want 12", loaded.BestStreak)
	}
	if loaded.CreditedStreak != 7 {
		t.Errorf("CreditedStreak = %d, want 7", loaded.CreditedStreak)
	}
	if loaded.CurrentLevel != domain.LevelConsistent {
		t.Errorf("CurrentLevel = %v, want %v", loaded.CurrentLevel, domain.LevelConsistent)
	}
	if !loaded.HasEverLogged {
		t.Errorf("HasEverLogged = false, want true")
	}
	if loaded.LastCreditedDay != "2026-03-02" {
		t.Errorf("LastCreditedDay = %q, want %q", loaded.LastCreditedDay, "2026-03-02")
	}
	if !loaded.HasBadge(domain.BadgeThreeDay) || !loaded.HasBadge(domain.BadgeFirstWeek) {
		t.Errorf("badges lost in round trip: %v", loaded.AwardedBadges)
	}
	if !loaded.TodaysAchievementKeys["first_today"] {
		t.Errorf("achievement keys lost in round trip: %v", loaded.TodaysAchievementKeys)
	}
}

func TestStreakRepositoryLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client, cleanup := testutil.SetupRedisContainer(ctx, t)
	defer cleanup()

	repo := NewStreakRepository(client)

	t.Run("missing state reports not found", func(t *testing.T) {
		testutil.FlushRedis(ctx, t, client)

		_, err := repo.GetStreakState(ctx, "nobody")
		if !errors.Is(err, domain.ErrStreakStateNotFound) {
			t.Fatalf("GetStreakState() error = %v, want %v", err, domain.ErrStreakStateNotFound)
		}
	})

	t.Run("save overwrites previous state", func(t *testing.T) {
		testutil.FlushRedis(ctx, t, client)

		state := domain.NewStreakState("user-1")
		state.CurrentStreak = 1
		if err := repo.SaveStreakState(ctx, state); err != nil {
			t.Fatalf("first SaveStreakState() error = %v", err)
		}

		state.CurrentStreak = 2
		state.AwardedBadges[domain.BadgeThreeDay] = true
		if err := repo.SaveStreakState(ctx, state); err != nil {
			t.Fatalf("second SaveStreakState() error = %v", err)
		}

		loaded, err := repo.GetStreakState(ctx, "user-1")
		if err != nil {
			t.Fatalf("GetStreakState() error = %v", err)
		}
		if loaded.CurrentStreak != 2 {
			t.Errorf("CurrentStreak = %d, want 2", loaded.CurrentStreak)
		}
	})

	t.Run("delete removes state", func(t *testing.T) {
		testutil.FlushRedis(ctx, t, client)

		if err := repo.SaveStreakState(ctx, domain.NewStreakState("user-1")); err != nil {
			t.Fatalf("SaveStreakState() error = %v", err)
		}
		if err := repo.DeleteStreakState(ctx, "user-1"); err != nil {
			t.Fatalf("DeleteStreakState() error = %v", err)
		}

		_, err := repo.GetStreakState(ctx, "user-1")
		if !errors.Is(err, domain.ErrStreakStateNotFound) {
			t.Fatalf("GetStreakState() after delete error = %v, want %v", err, domain.ErrStreakStateNotFound)
		}
	})
}

func TestSaveStreakStateRejectsInvalid(t *testing.T) {
	repo := NewStreakRepository(nil)

	if err := repo.SaveStreakState(context.Background(), nil); !errors.Is(err, ErrInvalidStreakStateData) {
		t.Errorf("SaveStreakState(nil) error = %v, want %v", err, ErrInvalidStreakStateData)
	}
	if err := repo.SaveStreakState(context.Background(), &domain.StreakState{}); !errors.Is(err, ErrInvalidStreakStateData) {
		t.Errorf("SaveStreakState(empty user) error = %v, want %v", err, ErrInvalidStreakStateData)
	}
}

package service_test

import (
	"fmt"
	"testing"

	"github.com/fittrack/fittrack-cli/internal/model"
	"github.com/fittrack/fittrack-cli/internal/service"
	"github.com/fittrack/fittrack-cli/internal/store"
)

type captureNotifier struct {
	successes    []string
	undos        []func()
	failures     []string
	achievements []string
}

func (n *captureNotifier) ShowSuccess(msg string, undo func()) {
	n.successes = append(n.successes, msg)
	n.undos = append(n.undos, undo)
}
func (n *captureNotifier) ShowError(msg string) { n.failures = append(n.failures, msg) }
func (n *captureNotifier) ShowAchievement(msg string) {
	n.achievements = append(n.achievements, msg)
}

func seedTodayMeal(t *testing.T, s *store.Store) {
	t.Helper()
	if err := store.Write(s, store.KeyDailyMeals, []model.Meal{{ID: "m1", Name: "Egg", Calories: 78}}); err != nil {
		t.Fatalf("seed meals: %v", err)
	}
}

func TestUpdateGamificationStreakTransitions(t *testing.T) {
	t.Parallel()
	now := testNow(t)

	cases := []struct {
		name        string
		lastLogDate string
		streak      int
		longest     int
		wantStreak  int
		wantLongest int
	}{
		{"first log ever", "", 0, 0, 1, 1},
		{"continued from yesterday", service.YesterdayString(now), 4, 4, 5, 5},
		{"already counted today", service.TodayString(now), 4, 6, 4, 6},
		{"gap restarts streak", service.DateString(now.AddDate(0, 0, -3)), 9, 9, 1, 9},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			s := newTestStore(t)
			seedTodayMeal(t, s)
			if err := store.Write(s, store.KeyUserStats, model.UserStats{
				CurrentStreak: tc.streak,
				LongestStreak: tc.longest,
				LastLogDate:   tc.lastLogDate,
			}); err != nil {
				t.Fatalf("seed stats: %v", err)
			}

			if err := service.UpdateGamification(s, now, nil); err != nil {
				t.Fatalf("update gamification: %v", err)
			}
			stats := service.UserStats(s)
			if stats.CurrentStreak != tc.wantStreak {
				t.Fatalf("expected streak %d, got %d", tc.wantStreak, stats.CurrentStreak)
			}
			if stats.LongestStreak != tc.wantLongest {
				t.Fatalf("expected longest streak %d, got %d", tc.wantLongest, stats.LongestStreak)
			}
			if stats.LastLogDate != service.TodayString(now) {
				t.Fatalf("expected last log date %s, got %s", service.TodayString(now), stats.LastLogDate)
			}
		})
	}
}

func TestUpdateGamificationNoActivityIsNoOp(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	now := testNow(t)

	seeded := model.UserStats{CurrentStreak: 3, LongestStreak: 5, LastLogDate: service.YesterdayString(now)}
	if err := store.Write(s, store.KeyUserStats, seeded); err != nil {
		t.Fatalf("seed stats: %v", err)
	}

	if err := service.UpdateGamification(s, now, nil); err != nil {
		t.Fatalf("update gamification: %v", err)
	}
	stats := service.UserStats(s)
	if stats.CurrentStreak != 3 || stats.LastLogDate != seeded.LastLogDate {
		t.Fatalf("expected stats untouched without activity, got %+v", stats)
	}
}

func TestUpdateGamificationTotals(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	now := testNow(t)
	today := service.TodayString(now)
	yesterday := service.YesterdayString(now)

	// Today appears both live and in history (the rollup ran first); only
	// the live copy may count for meals and exercises. Water counts from
	// history alone.
	if err := store.Write(s, store.KeyDailyHistory, []model.DailyHistory{
		{Date: today, WaterMl: 250, CaloriesBurned: 100, Meals: []model.Meal{{ID: "m-today"}}, Exercises: []model.Exercise{{ID: "e-today", CaloriesBurned: 100}}},
		{Date: yesterday, WaterMl: 500, CaloriesBurned: 300, Meals: []model.Meal{{ID: "y1"}, {ID: "y2"}}, Exercises: []model.Exercise{{ID: "e1", CaloriesBurned: 300}}},
	}); err != nil {
		t.Fatalf("seed history: %v", err)
	}
	if err := store.Write(s, store.KeyDailyMeals, []model.Meal{{ID: "m-today"}}); err != nil {
		t.Fatalf("seed meals: %v", err)
	}
	if err := store.Write(s, store.KeyDailyExercises, []model.Exercise{{ID: "e-today", CaloriesBurned: 100}}); err != nil {
		t.Fatalf("seed exercises: %v", err)
	}

	if err := service.UpdateGamification(s, now, nil); err != nil {
		t.Fatalf("update gamification: %v", err)
	}
	stats := service.UserStats(s)
	if stats.TotalMealsLogged != 3 {
		t.Fatalf("expected 3 meals total, got %d", stats.TotalMealsLogged)
	}
	if stats.TotalExercises != 2 {
		t.Fatalf("expected 2 exercises total, got %d", stats.TotalExercises)
	}
	if stats.TotalCaloriesBurned != 400 {
		t.Fatalf("expected 400 kcal burned total, got %d", stats.TotalCaloriesBurned)
	}
	if stats.TotalWaterLoggedMl != 750 {
		t.Fatalf("expected 750 ml water total, got %d", stats.TotalWaterLoggedMl)
	}

	// Running again with the same inputs changes nothing.
	if err := service.UpdateGamification(s, now, nil); err != nil {
		t.Fatalf("second update: %v", err)
	}
	again := service.UserStats(s)
	if again.TotalMealsLogged != 3 || again.TotalCaloriesBurned != 400 || again.CurrentStreak != stats.CurrentStreak {
		t.Fatalf("expected idempotent totals, got %+v", again)
	}
}

func TestUpdateGamificationUnlocksAchievementsOnce(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	now := testNow(t)
	notifier := &captureNotifier{}

	nineMeals := make([]model.Meal, 9)
	for i := range nineMeals {
		nineMeals[i] = model.Meal{ID: fmt.Sprintf("y%d", i)}
	}
	if err := store.Write(s, store.KeyDailyHistory, []model.DailyHistory{
		{Date: service.YesterdayString(now), Meals: nineMeals},
	}); err != nil {
		t.Fatalf("seed history: %v", err)
	}
	seedTodayMeal(t, s)

	if err := service.UpdateGamification(s, now, notifier); err != nil {
		t.Fatalf("update gamification: %v", err)
	}
	stats := service.UserStats(s)
	if got := countString(stats.AchievementsUnlocked, "meals-10"); got != 1 {
		t.Fatalf("expected meals-10 unlocked once, got %d in %v", got, stats.AchievementsUnlocked)
	}
	if len(notifier.achievements) != 1 {
		t.Fatalf("expected 1 achievement notification, got %d: %v", len(notifier.achievements), notifier.achievements)
	}

	// A second run must neither duplicate the unlock nor notify again.
	if err := service.UpdateGamification(s, now, notifier); err != nil {
		t.Fatalf("second update: %v", err)
	}
	stats = service.UserStats(s)
	if got := countString(stats.AchievementsUnlocked, "meals-10"); got != 1 {
		t.Fatalf("expected meals-10 still unlocked once, got %d", got)
	}
	if len(notifier.achievements) != 1 {
		t.Fatalf("expected no repeat notification, got %d", len(notifier.achievements))
	}
}

func countString(values []string, want string) int {
	count := 0
	for _, v := range values {
		if v == want {
			count++
		}
	}
	return count
}

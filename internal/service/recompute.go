package service

import (
	"time"

	"github.com/fittrack/fittrack-cli/internal/store"
)

// Recompute re-derives all state that depends on today's logs: the history
// rollup first, then gamification. The ordering matters: gamification folds
// history excluding today and trusts the aggregator to have refreshed
// today's entry already. Hosts call this after every mutation to meals,
// exercises, or water; running it twice for one logical change is harmless.
func Recompute(s *store.Store, now time.Time, notifier Notifier) error {
	if err := UpdateDailyHistory(s, now); err != nil {
		return err
	}
	return UpdateGamification(s, now, notifier)
}

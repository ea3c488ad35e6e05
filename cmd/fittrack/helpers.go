package fittrack

import (
	"database/sql"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/fittrack/fittrack-cli/internal/app"
	"github.com/fittrack/fittrack-cli/internal/db"
	"github.com/fittrack/fittrack-cli/internal/service"
	"github.com/fittrack/fittrack-cli/internal/store"
)

// withStore opens the state store, runs the daily rollover gate, and hands
// the store to run. When the database cannot be opened the session degrades
// to in-memory state with a warning instead of failing.
func withStore(run func(*store.Store) error) error {
	s, closeFn := openStore()
	defer closeFn()

	if _, err := service.CheckDailyRollover(s, time.Now()); err != nil {
		return err
	}
	if err := service.EnsureSeedData(s); err != nil {
		return err
	}
	return run(s)
}

func openStore() (*store.Store, func()) {
	path, err := resolveDBPath()
	if err == nil {
		err = app.EnsureDBDir(path)
	}
	if err == nil {
		var database *sql.DB
		database, err = db.Open(path)
		if err == nil {
			if err = db.ApplyMigrations(database); err == nil {
				return store.New(database, logger), func() { _ = database.Close() }
			}
			_ = database.Close()
		}
	}
	logger.Warn("database unavailable, running in-memory for this session", zap.Error(err))
	return store.NewInMemory(logger), func() {}
}

func resolveDBPath() (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}
	return app.DefaultDBPath()
}

// terminalNotifier renders engine notifications as plain output lines. A
// one-shot command has no surface for an undo affordance, so the callback is
// ignored.
type terminalNotifier struct {
	out io.Writer
}

func (n terminalNotifier) ShowSuccess(message string, _ func()) {
	fmt.Fprintln(n.out, message)
}

func (n terminalNotifier) ShowError(message string) {
	fmt.Fprintln(n.out, "error:", message)
}

func (n terminalNotifier) ShowAchievement(message string) {
	fmt.Fprintln(n.out, message)
}

func parseInt64Arg(name, value string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, value)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%s must be > 0", name)
	}
	return v, nil
}

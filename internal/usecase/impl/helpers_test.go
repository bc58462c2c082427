package impl

import (
	"log/slog"
	"time"

	"empreende/config"
)

// fakeClock pins time for deterministic window arithmetic.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Event.Timezone = "America/Recife"
	cfg.Reminder.IntervalMinutes = 5
	cfg.Reminder.BatchSize = 25
	cfg.Reminder.WindowDuration = time.Hour
	cfg.Security.DocumentHashSalt = "test-salt"

	return cfg
}

func intPtr(v int) *int {
	return &v
}

func timePtr(v time.Time) *time.Time {
	return &v
}

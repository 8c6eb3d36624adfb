package tzoffset

import (
	"context"
	"fmt"
	"strings"
	"time"

	cronlib "github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

const defaultRefreshSchedule = "@hourly"

// Refresher periodically re-resolves every zone already present in the
// cache, so long-lived servers pick up DST transitions without waiting
// for the next stale lookup. It is purely additive: GetOffset behaves
// identically whether or not a refresher is running.
type Refresher struct {
	resolver *Resolver
	cron     *cronlib.Cron
	timeout  time.Duration
	log      zerolog.Logger
}

// NewRefresher schedules a cache rewarm using a cron expression or
// descriptor (default "@hourly").
func NewRefresher(resolver *Resolver, schedule string, log zerolog.Logger) (*Refresher, error) {
	if strings.TrimSpace(schedule) == "" {
		schedule = defaultRefreshSchedule
	}
	ref := &Refresher{
		resolver: resolver,
		cron:     cronlib.New(),
		timeout:  30 * time.Second,
		log:      log,
	}
	if _, err := ref.cron.AddFunc(schedule, ref.RefreshAll); err != nil {
		return nil, fmt.Errorf("parse refresh schedule %q: %w", schedule, err)
	}
	return ref, nil
}

// Start begins running the schedule in a background goroutine.
func (ref *Refresher) Start() {
	ref.cron.Start()
}

// Stop halts the schedule and waits for an in-flight rewarm to finish.
func (ref *Refresher) Stop() {
	<-ref.cron.Stop().Done()
}

// RefreshAll forces a live refresh of every cached zone.
func (ref *Refresher) RefreshAll() {
	ctx, cancel := context.WithTimeout(context.Background(), ref.timeout)
	defer cancel()
	snapshot := ref.resolver.Snapshot()
	for zone := range snapshot {
		ref.resolver.Refresh(ctx, zone)
	}
	ref.log.Debug().Int("zones", len(snapshot)).Msg("Rewarmed timezone offset cache")
}

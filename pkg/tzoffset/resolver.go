// Package tzoffset resolves UTC offsets for named time zones by asking
// an external PHP interpreter, caching results in memory and falling
// back to pre-generated static tables when the interpreter is
// unavailable.
package tzoffset

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/xid"
	"github.com/rs/zerolog"
	"go.mau.fi/util/jsontime"
)

// CacheLifetime is how long a fetched offset stays fresh before the
// next lookup triggers a live refresh.
const CacheLifetime = time.Hour

const defaultInterpreter = "php"

// CachedOffset is one cache entry: the last offset fetched for a zone
// and when it was fetched.
type CachedOffset struct {
	Offset     int                `json:"offset"`
	CapturedAt jsontime.UnixMilli `json:"captured_at"`
}

// RunFunc executes the external offset computation for a zone and
// returns the process stdout and stderr. Any stderr content is treated
// as a failed refresh even if the process exited cleanly.
type RunFunc func(ctx context.Context, zone string) (stdout, stderr []byte, err error)

// ResolverDeps provides integration hooks for a Resolver.
type ResolverDeps struct {
	// Interpreter is the external interpreter binary. Defaults to "php".
	Interpreter string
	// Now is the clock. Defaults to time.Now.
	Now func() time.Time
	// Run overrides the subprocess invocation.
	Run RunFunc
	// ServerUTCOffsetMinutes returns the number of minutes to add to
	// server-local time at t to reach UTC (positive west of Greenwich).
	// Defaults to the running system's zone.
	ServerUTCOffsetMinutes func(t time.Time) int
	// ClockLocation is the zone used to read wall-clock fields of
	// converted times when formatting. Defaults to the system zone.
	ClockLocation *time.Location

	Log zerolog.Logger
}

// Resolver owns the offset cache. Entries are created on first lookup
// and refreshed in place; nothing is ever evicted (the IANA zone name
// space is small and bounded).
type Resolver struct {
	deps ResolverDeps

	mu    sync.Mutex
	cache map[string]*CachedOffset
}

// NewResolver creates a resolver with an empty cache.
func NewResolver(deps ResolverDeps) *Resolver {
	if deps.Interpreter == "" {
		deps.Interpreter = defaultInterpreter
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.ServerUTCOffsetMinutes == nil {
		deps.ServerUTCOffsetMinutes = systemUTCOffsetMinutes
	}
	if deps.ClockLocation == nil {
		deps.ClockLocation = time.Local
	}
	r := &Resolver{deps: deps, cache: make(map[string]*CachedOffset)}
	if r.deps.Run == nil {
		r.deps.Run = r.runInterpreter
	}
	return r
}

// GetOffset returns the zone's current offset from UTC in seconds.
// Fresh cache entries are served directly; stale or missing ones
// trigger a live refresh, which degrades to the static fallback table
// (or zero) on failure. It never returns an error.
func (r *Resolver) GetOffset(ctx context.Context, zone string) int {
	now := r.deps.Now()
	entry := r.ensureEntry(zone, now)

	r.mu.Lock()
	offset := entry.Offset
	capturedAt := entry.CapturedAt.Time
	r.mu.Unlock()

	if now.Sub(capturedAt) < CacheLifetime {
		return offset
	}
	return r.Refresh(ctx, zone)
}

// Refresh runs the external offset computation for zone regardless of
// cache freshness and stores the result. On failure it logs and
// returns the static fallback value without touching the cache entry.
// Concurrent refreshes of the same zone are not de-duplicated; both
// writes are last-write-wins.
func (r *Resolver) Refresh(ctx context.Context, zone string) int {
	now := r.deps.Now()
	entry := r.ensureEntry(zone, now)
	log := r.logger(ctx)
	refreshID := xid.New().String()

	stdout, stderr, err := r.deps.Run(ctx, zone)
	out := strings.TrimSpace(string(stdout))
	diag := strings.TrimSpace(string(stderr))
	if err == nil && diag != "" {
		err = fmt.Errorf("interpreter produced diagnostics: %s", diag)
	}
	if err == nil {
		offset, parseErr := strconv.Atoi(out)
		if parseErr == nil {
			r.mu.Lock()
			entry.Offset = offset
			entry.CapturedAt = jsontime.UM(now)
			r.mu.Unlock()
			log.Debug().
				Str("refresh_id", refreshID).
				Str("zone", zone).
				Int("offset_seconds", offset).
				Msg("Refreshed timezone offset")
			return offset
		}
		err = fmt.Errorf("unparsable interpreter output %q", out)
	}
	log.Error().Err(err).
		Str("refresh_id", refreshID).
		Str("zone", zone).
		Msg("Failed to refresh timezone offset, using static fallback")
	return summerOffsets[zone]
}

// Snapshot returns a copy of the current cache contents.
func (r *Resolver) Snapshot() map[string]CachedOffset {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]CachedOffset, len(r.cache))
	for zone, entry := range r.cache {
		out[zone] = *entry
	}
	return out
}

// logger prefers a logger attached to the context over the one from
// the deps struct.
func (r *Resolver) logger(ctx context.Context) *zerolog.Logger {
	if ctx != nil {
		if ctxLog := zerolog.Ctx(ctx); ctxLog != nil && ctxLog.GetLevel() != zerolog.Disabled {
			return ctxLog
		}
	}
	return &r.deps.Log
}

// ensureEntry returns the cache entry for zone, creating an
// already-expired one on first sight so the first lookup refreshes.
func (r *Resolver) ensureEntry(zone string, now time.Time) *CachedOffset {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.cache[zone]
	if !ok {
		entry = &CachedOffset{
			Offset:     0,
			CapturedAt: jsontime.UM(now.Add(-CacheLifetime)),
		}
		r.cache[zone] = entry
	}
	return entry
}

// runInterpreter asks the PHP interpreter for the zone's offset from
// UTC-now in seconds. -n skips php.ini so stray ini warnings don't end
// up on stderr and fail the refresh.
func (r *Resolver) runInterpreter(ctx context.Context, zone string) ([]byte, []byte, error) {
	script := fmt.Sprintf(`echo (new DateTime("now", new DateTimeZone(%q)))->getOffset();`, zone)
	cmd := exec.CommandContext(ctx, r.deps.Interpreter, "-n", "-r", script)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}

func systemUTCOffsetMinutes(t time.Time) int {
	_, offsetSeconds := t.Zone()
	return -offsetSeconds / 60
}

package tzoffset

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestGetOffsetServesCacheWithinLifetime(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	calls := 0
	r := NewResolver(ResolverDeps{
		Now: func() time.Time { return now },
		Run: func(ctx context.Context, zone string) ([]byte, []byte, error) {
			calls++
			return []byte("7200\n"), nil, nil
		},
		Log: zerolog.Nop(),
	})

	if got := r.GetOffset(context.Background(), "Europe/Paris"); got != 7200 {
		t.Fatalf("first GetOffset = %d, want 7200", got)
	}
	now = now.Add(30 * time.Minute)
	if got := r.GetOffset(context.Background(), "Europe/Paris"); got != 7200 {
		t.Fatalf("second GetOffset = %d, want 7200", got)
	}
	if calls != 1 {
		t.Fatalf("interpreter invoked %d times, want 1", calls)
	}
}

func TestGetOffsetRefreshesStaleEntry(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	calls := 0
	r := NewResolver(ResolverDeps{
		Now: func() time.Time { return now },
		Run: func(ctx context.Context, zone string) ([]byte, []byte, error) {
			calls++
			return []byte("3600"), nil, nil
		},
		Log: zerolog.Nop(),
	})

	r.GetOffset(context.Background(), "Europe/Paris")
	now = now.Add(CacheLifetime)
	r.GetOffset(context.Background(), "Europe/Paris")
	if calls != 2 {
		t.Fatalf("interpreter invoked %d times, want 2", calls)
	}
}

func TestGetOffsetFallsBackToStaticTable(t *testing.T) {
	cases := []struct {
		name string
		run  RunFunc
		zone string
		want int
	}{
		{
			name: "spawn error",
			run: func(ctx context.Context, zone string) ([]byte, []byte, error) {
				return nil, nil, errors.New("executable not found")
			},
			zone: "Europe/London",
			want: 0,
		},
		{
			name: "diagnostic output",
			run: func(ctx context.Context, zone string) ([]byte, []byte, error) {
				return []byte("3600"), []byte("PHP Warning: something"), nil
			},
			zone: "Europe/Moscow",
			want: 10800,
		},
		{
			name: "unparsable output",
			run: func(ctx context.Context, zone string) ([]byte, []byte, error) {
				return []byte("not a number"), nil, nil
			},
			zone: "Asia/Kolkata",
			want: 19800,
		},
		{
			name: "unknown zone",
			run: func(ctx context.Context, zone string) ([]byte, []byte, error) {
				return nil, nil, errors.New("boom")
			},
			zone: "Atlantis/Capital",
			want: 0,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := NewResolver(ResolverDeps{Run: tc.run, Log: zerolog.Nop()})
			if got := r.GetOffset(context.Background(), tc.zone); got != tc.want {
				t.Fatalf("GetOffset(%q) = %d, want %d", tc.zone, got, tc.want)
			}
		})
	}
}

func TestGetOffsetFailedRefreshKeepsEntryStale(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	calls := 0
	fail := true
	r := NewResolver(ResolverDeps{
		Now: func() time.Time { return now },
		Run: func(ctx context.Context, zone string) ([]byte, []byte, error) {
			calls++
			if fail {
				return nil, nil, errors.New("boom")
			}
			return []byte("3600"), nil, nil
		},
		Log: zerolog.Nop(),
	})

	if got := r.GetOffset(context.Background(), "Europe/London"); got != 0 {
		t.Fatalf("fallback GetOffset = %d, want 0", got)
	}
	// The failed refresh must not have stamped the entry fresh; the next
	// lookup retries the interpreter.
	fail = false
	if got := r.GetOffset(context.Background(), "Europe/London"); got != 3600 {
		t.Fatalf("recovered GetOffset = %d, want 3600", got)
	}
	if calls != 2 {
		t.Fatalf("interpreter invoked %d times, want 2", calls)
	}
}

func TestSnapshotCopiesEntries(t *testing.T) {
	r := NewResolver(ResolverDeps{
		Run: func(ctx context.Context, zone string) ([]byte, []byte, error) {
			return []byte("19800"), nil, nil
		},
		Log: zerolog.Nop(),
	})
	r.GetOffset(context.Background(), "Asia/Kolkata")

	snapshot := r.Snapshot()
	if len(snapshot) != 1 {
		t.Fatalf("snapshot has %d entries, want 1", len(snapshot))
	}
	entry := snapshot["Asia/Kolkata"]
	if entry.Offset != 19800 {
		t.Fatalf("snapshot offset = %d, want 19800", entry.Offset)
	}
	entry.Offset = 0
	if again := r.Snapshot()["Asia/Kolkata"]; again.Offset != 19800 {
		t.Fatalf("snapshot mutation leaked into cache: offset = %d", again.Offset)
	}
}

func TestRefresherRewarmsCachedZones(t *testing.T) {
	calls := map[string]int{}
	r := NewResolver(ResolverDeps{
		Run: func(ctx context.Context, zone string) ([]byte, []byte, error) {
			calls[zone]++
			return []byte("0"), nil, nil
		},
		Log: zerolog.Nop(),
	})
	r.GetOffset(context.Background(), "Europe/Paris")
	r.GetOffset(context.Background(), "UTC")

	ref, err := NewRefresher(r, "", zerolog.Nop())
	if err != nil {
		t.Fatalf("NewRefresher: %v", err)
	}
	ref.RefreshAll()

	for _, zone := range []string{"Europe/Paris", "UTC"} {
		if calls[zone] != 2 {
			t.Fatalf("zone %s refreshed %d times, want 2", zone, calls[zone])
		}
	}
}

func TestRefresherRejectsBadSchedule(t *testing.T) {
	r := NewResolver(ResolverDeps{Log: zerolog.Nop()})
	if _, err := NewRefresher(r, "not a schedule", zerolog.Nop()); err == nil {
		t.Fatal("NewRefresher accepted an invalid schedule")
	}
}

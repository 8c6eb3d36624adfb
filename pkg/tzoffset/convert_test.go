package tzoffset

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestIs24HourFormat(t *testing.T) {
	cases := map[string]bool{
		"America/New_York": false,
		"Europe/London":    false,
		"Europe/Paris":     true,
		"Asia/Tokyo":       true,
		"UTC":              true,
	}
	for zone, want := range cases {
		if got := Is24HourFormat(zone); got != want {
			t.Fatalf("Is24HourFormat(%q) = %v, want %v", zone, got, want)
		}
	}
}

// fixedOffsetResolver resolves every zone to the given offset without
// touching a subprocess, with the server pinned to UTC.
func fixedOffsetResolver(offsetSeconds int) *Resolver {
	return NewResolver(ResolverDeps{
		Run: func(ctx context.Context, zone string) ([]byte, []byte, error) {
			return []byte(strconv.Itoa(offsetSeconds)), nil, nil
		},
		ServerUTCOffsetMinutes: func(time.Time) int { return 0 },
		ClockLocation:          time.UTC,
		Log:                    zerolog.Nop(),
	})
}

func TestConvertRoundTrip(t *testing.T) {
	r := NewResolver(ResolverDeps{
		Run: func(ctx context.Context, zone string) ([]byte, []byte, error) {
			return []byte("19800"), nil, nil
		},
		ServerUTCOffsetMinutes: func(time.Time) int { return -120 },
		Log:                    zerolog.Nop(),
	})
	ctx := context.Background()
	server := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)

	local := r.ConvertServerTimeToZoneTime(ctx, server, "Asia/Kolkata")
	back := r.ConvertZoneTimeToServerTime(ctx, local, "Asia/Kolkata")
	if !back.Equal(server) {
		t.Fatalf("round trip = %v, want %v", back, server)
	}

	utc := r.ConvertZoneTimeToUTC(ctx, local, "Asia/Kolkata")
	if want := local.Add(-19800 * time.Second); !utc.Equal(want) {
		t.Fatalf("ConvertZoneTimeToUTC = %v, want %v", utc, want)
	}
}

func TestConvertServerTimeToZoneTime(t *testing.T) {
	r := NewResolver(ResolverDeps{
		Run: func(ctx context.Context, zone string) ([]byte, []byte, error) {
			return []byte("3600"), nil, nil
		},
		ServerUTCOffsetMinutes: func(time.Time) int { return -60 },
		Log:                    zerolog.Nop(),
	})
	server := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	local := r.ConvertServerTimeToZoneTime(context.Background(), server, "Europe/Paris")
	// Server offset cancels the zone offset exactly here.
	if !local.Equal(server) {
		t.Fatalf("ConvertServerTimeToZoneTime = %v, want %v", local, server)
	}
}

func TestFormatLocalTime(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		name           string
		zone           string
		offsetSeconds  int
		serverTime     time.Time
		includeSeconds bool
		want           string
	}{
		{
			name:       "midnight twelve hour",
			zone:       "America/New_York",
			serverTime: time.Date(2025, 6, 1, 0, 5, 0, 0, time.UTC),
			want:       "12:05 am",
		},
		{
			name:           "afternoon twelve hour with seconds",
			zone:           "America/New_York",
			serverTime:     time.Date(2025, 6, 1, 13, 30, 9, 0, time.UTC),
			includeSeconds: true,
			want:           "1:30:09 pm",
		},
		{
			name:       "noon twelve hour",
			zone:       "Europe/London",
			serverTime: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
			want:       "12:00 pm",
		},
		{
			name:          "twenty four hour with offset",
			zone:          "Europe/Paris",
			offsetSeconds: 3600,
			serverTime:    time.Date(2025, 6, 1, 8, 4, 0, 0, time.UTC),
			want:          "9:04",
		},
		{
			name:           "twenty four hour with seconds",
			zone:           "Asia/Tokyo",
			serverTime:     time.Date(2025, 6, 1, 23, 59, 1, 0, time.UTC),
			includeSeconds: true,
			want:           "23:59:01",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := fixedOffsetResolver(tc.offsetSeconds)
			got := r.FormatLocalTime(ctx, tc.serverTime, tc.zone, tc.includeSeconds)
			if got != tc.want {
				t.Fatalf("FormatLocalTime = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestFormatClock(t *testing.T) {
	cases := []struct {
		hour, minute, second           int
		twentyFourHour, includeSeconds bool
		want                           string
	}{
		{0, 5, 0, false, false, "12:05 am"},
		{11, 59, 59, false, true, "11:59:59 am"},
		{12, 0, 0, false, false, "12:00 pm"},
		{13, 30, 9, false, true, "1:30:09 pm"},
		{23, 5, 0, false, false, "11:05 pm"},
		{0, 5, 0, true, false, "0:05"},
		{9, 4, 2, true, true, "9:04:02"},
	}
	for _, tc := range cases {
		clock := time.Date(2025, 6, 1, tc.hour, tc.minute, tc.second, 0, time.UTC)
		got := formatClock(clock, tc.twentyFourHour, tc.includeSeconds)
		if got != tc.want {
			t.Fatalf("formatClock(%02d:%02d:%02d, 24h=%v, sec=%v) = %q, want %q",
				tc.hour, tc.minute, tc.second, tc.twentyFourHour, tc.includeSeconds, got, tc.want)
		}
	}
}

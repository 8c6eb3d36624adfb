package tzoffset

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Is24HourFormat reports whether times for the zone should be rendered
// on a 24-hour clock. This is a crude substring heuristic, not a locale
// database: any zone name containing "America" or "London" gets the
// 12-hour clock, everything else 24-hour.
func Is24HourFormat(zone string) bool {
	return !strings.Contains(zone, "America") && !strings.Contains(zone, "London")
}

// ConvertServerTimeToZoneTime shifts a server-local time into the
// zone's local time: first to UTC using the server's own offset, then
// into the zone using the resolved offset.
func (r *Resolver) ConvertServerTimeToZoneTime(ctx context.Context, serverTime time.Time, zone string) time.Time {
	serverOffsetMinutes := r.deps.ServerUTCOffsetMinutes(serverTime)
	zoneOffsetSeconds := r.GetOffset(ctx, zone)
	return serverTime.
		Add(time.Duration(serverOffsetMinutes) * time.Minute).
		Add(time.Duration(zoneOffsetSeconds) * time.Second)
}

// ConvertZoneTimeToServerTime is the inverse of
// ConvertServerTimeToZoneTime.
func (r *Resolver) ConvertZoneTimeToServerTime(ctx context.Context, localTime time.Time, zone string) time.Time {
	serverOffsetMinutes := r.deps.ServerUTCOffsetMinutes(localTime)
	zoneOffsetSeconds := r.GetOffset(ctx, zone)
	return localTime.
		Add(-time.Duration(zoneOffsetSeconds) * time.Second).
		Add(-time.Duration(serverOffsetMinutes) * time.Minute)
}

// ConvertZoneTimeToUTC shifts a zone-local time back to UTC.
func (r *Resolver) ConvertZoneTimeToUTC(ctx context.Context, localTime time.Time, zone string) time.Time {
	return localTime.Add(-time.Duration(r.GetOffset(ctx, zone)) * time.Second)
}

// FormatLocalTime renders serverTime as a clock string in the zone's
// local time, using a 12- or 24-hour clock per Is24HourFormat.
func (r *Resolver) FormatLocalTime(ctx context.Context, serverTime time.Time, zone string, includeSeconds bool) string {
	local := r.ConvertServerTimeToZoneTime(ctx, serverTime, zone)
	return formatClock(local.In(r.deps.ClockLocation), Is24HourFormat(zone), includeSeconds)
}

// formatClock renders a wall clock as H:mm[:ss] (24-hour) or
// H:mm[:ss] am/pm (12-hour, hour 0 shown as 12).
func formatClock(t time.Time, twentyFourHour, includeSeconds bool) string {
	hour, minute, second := t.Clock()
	if twentyFourHour {
		if includeSeconds {
			return fmt.Sprintf("%d:%02d:%02d", hour, minute, second)
		}
		return fmt.Sprintf("%d:%02d", hour, minute)
	}
	suffix := " am"
	if hour >= 12 {
		suffix = " pm"
	}
	displayHour := hour % 12
	if displayHour == 0 {
		displayHour = 12
	}
	if includeSeconds {
		return fmt.Sprintf("%d:%02d:%02d%s", displayHour, minute, second, suffix)
	}
	return fmt.Sprintf("%d:%02d%s", displayHour, minute, suffix)
}

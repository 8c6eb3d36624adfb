package tzoffset

import "testing"

func TestFallbackTables(t *testing.T) {
	if len(summerOffsets) == 0 || len(summerOffsets) != len(winterOffsets) {
		t.Fatalf("table sizes: summer=%d winter=%d", len(summerOffsets), len(winterOffsets))
	}
	for zone := range summerOffsets {
		if _, ok := winterOffsets[zone]; !ok {
			t.Fatalf("zone %s missing from winter table", zone)
		}
	}

	// Baseline values the resolver's fallback path relies on.
	cases := map[string]int{
		"Europe/London":    0,
		"Europe/Moscow":    10800,
		"Asia/Kolkata":     19800,
		"America/New_York": -18000,
		"UTC":              0,
	}
	for zone, want := range cases {
		if got := summerOffsets[zone]; got != want {
			t.Fatalf("summerOffsets[%q] = %d, want %d", zone, got, want)
		}
	}
	if got := winterOffsets["Europe/London"]; got != 3600 {
		t.Fatalf("winterOffsets[Europe/London] = %d, want 3600", got)
	}
}

package timeline

import (
	"strings"
	"testing"

	"tableflip.dev/moodlog/pkg/api"
	"tableflip.dev/moodlog/pkg/emotion"
)

func TestPointsKeepOrderAndColor(t *testing.T) {
	entries := []api.HistoryEntry{
		{Date: "2026-08-28", Emotion: "joy"},
		{Date: "2026-08-29", Emotion: "sadness"},
	}
	points := Points(entries)
	if len(points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(points))
	}
	if points[0].Date != "2026-08-28" || points[1].Date != "2026-08-29" {
		t.Fatalf("order must match the entries, got %v", points)
	}
	if points[0].Color != emotion.ColorFor(emotion.Joy) {
		t.Fatalf("unexpected color %q", points[0].Color)
	}
}

func TestPointsFallBackOnUnknownEmotion(t *testing.T) {
	points := Points([]api.HistoryEntry{{Date: "2026-08-30", Emotion: "boredom"}})
	if points[0].Color != emotion.FallbackColor {
		t.Fatalf("unknown emotion must use the fallback color, got %q", points[0].Color)
	}
}

func TestRenderTrimsToWidthKeepingMostRecent(t *testing.T) {
	points := []Point{
		{Date: "2026-08-28", Color: "#ffffff"},
		{Date: "2026-08-29", Color: "#ffffff"},
		{Date: "2026-08-30", Color: "#ffffff"},
	}
	out := Render(points, 2)
	if got := strings.Count(out, dot); got != 2 {
		t.Fatalf("expected 2 dots, got %d in %q", got, out)
	}
	if full := Render(points, 0); strings.Count(full, dot) != 3 {
		t.Fatalf("zero width must be unbounded, got %q", full)
	}
}

func TestRenderEmpty(t *testing.T) {
	if got := Render(nil, 10); got != "" {
		t.Fatalf("expected empty render, got %q", got)
	}
}

func TestLegend(t *testing.T) {
	if got := Legend(nil); got != "no entries yet" {
		t.Fatalf("unexpected empty legend %q", got)
	}
	one := []Point{{Date: "2026-08-30"}}
	if got := Legend(one); got != "2026-08-30" {
		t.Fatalf("single entry legend should be the date alone, got %q", got)
	}
	span := []Point{{Date: "2026-06-01"}, {Date: "2026-08-30"}}
	if got := Legend(span); got != "2026-06-01 … 2026-08-30" {
		t.Fatalf("unexpected span legend %q", got)
	}
}

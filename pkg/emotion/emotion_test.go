package emotion

import "testing"

func TestColorForFallsBackForUnknownLabel(t *testing.T) {
	if got := ColorFor(Label("boredom")); got != FallbackColor {
		t.Fatalf("ColorFor(boredom) = %q, want fallback %q", got, FallbackColor)
	}
	if got := ColorFor(Joy); got == FallbackColor {
		t.Fatal("known label must not use the fallback color")
	}
}

func TestColorForNormalizesCasing(t *testing.T) {
	if ColorFor(Label(" JOY ")) != ColorFor(Joy) {
		t.Fatal("label lookup must be case and whitespace insensitive")
	}
}

func TestKnown(t *testing.T) {
	if !Known(Neutral) {
		t.Fatal("neutral must be a known label")
	}
	if Known(Label("boredom")) {
		t.Fatal("boredom is not part of the label set")
	}
}

func TestDisplayUppercases(t *testing.T) {
	if got := Display(Joy); got != "JOY" {
		t.Fatalf("Display(joy) = %q, want JOY", got)
	}
}

func TestFormatScoreTrimsTrailingZeros(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{92, "92%"},
		{87.5, "87.5%"},
		{100, "100%"},
		{0, "0%"},
	}
	for _, tc := range cases {
		if got := FormatScore(tc.score); got != tc.want {
			t.Errorf("FormatScore(%v) = %q, want %q", tc.score, got, tc.want)
		}
	}
}

func TestShadeClampsScore(t *testing.T) {
	if Shade(Joy, 150) != Shade(Joy, 100) {
		t.Fatal("scores above 100 must clamp")
	}
	if Shade(Joy, -5) != Shade(Joy, 0) {
		t.Fatal("negative scores must clamp")
	}
	if Shade(Joy, 100) == Shade(Joy, 10) {
		t.Fatal("confidence must change the shade")
	}
}

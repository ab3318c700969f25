// Package emotion holds the label set the analysis backend classifies
// journal entries into, and the display channel (color, casing, score
// formatting) the client renders them through.
package emotion

import (
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Label is an emotion label as returned by the analysis backend.
type Label string

const (
	Admiration     Label = "admiration"
	Amusement      Label = "amusement"
	Anger          Label = "anger"
	Annoyance      Label = "annoyance"
	Approval       Label = "approval"
	Caring         Label = "caring"
	Confusion      Label = "confusion"
	Curiosity      Label = "curiosity"
	Desire         Label = "desire"
	Disappointment Label = "disappointment"
	Disapproval    Label = "disapproval"
	Disgust        Label = "disgust"
	Embarrassment  Label = "embarrassment"
	Excitement     Label = "excitement"
	Fear           Label = "fear"
	Gratitude      Label = "gratitude"
	Grief          Label = "grief"
	Joy            Label = "joy"
	Love           Label = "love"
	Nervousness    Label = "nervousness"
	Optimism       Label = "optimism"
	Pride          Label = "pride"
	Realization    Label = "realization"
	Relief         Label = "relief"
	Remorse        Label = "remorse"
	Sadness        Label = "sadness"
	Surprise       Label = "surprise"
	Neutral        Label = "neutral"
)

// FallbackColor is used for labels the client does not recognize.
const FallbackColor = "#8a8a8a"

var palette = map[Label]string{
	Admiration:     "#f4b8e4",
	Amusement:      "#f9e2af",
	Anger:          "#e64553",
	Annoyance:      "#ea7659",
	Approval:       "#a6d189",
	Caring:         "#f2cdcd",
	Confusion:      "#b4a7d6",
	Curiosity:      "#74c7ec",
	Desire:         "#ee99a0",
	Disappointment: "#6c7086",
	Disapproval:    "#8c6f5a",
	Disgust:        "#7a9f35",
	Embarrassment:  "#d8a657",
	Excitement:     "#fab387",
	Fear:           "#9d4edd",
	Gratitude:      "#94e2d5",
	Grief:          "#45475a",
	Joy:            "#f9d71c",
	Love:           "#f38ba8",
	Nervousness:    "#c77dff",
	Optimism:       "#a6e3a1",
	Pride:          "#cba6f7",
	Realization:    "#89b4fa",
	Relief:         "#b9fbc0",
	Remorse:        "#585b70",
	Sadness:        "#5b7bb2",
	Surprise:       "#f5c2e7",
	Neutral:        "#9399b2",
}

// Known reports whether the backend label is part of the palette.
func Known(l Label) bool {
	_, ok := palette[normalize(l)]
	return ok
}

// ColorFor resolves a label to its display color, falling back to the
// neutral FallbackColor for unrecognized labels.
func ColorFor(l Label) string {
	if c, ok := palette[normalize(l)]; ok {
		return c
	}
	return FallbackColor
}

// Shade blends the label color toward gray as the confidence score drops,
// so a low-confidence classification reads visually muted. Score is the
// backend's 0-100 value.
func Shade(l Label, score float64) string {
	base, err := colorful.Hex(ColorFor(l))
	if err != nil {
		return FallbackColor
	}
	gray, _ := colorful.Hex(FallbackColor)
	t := score / 100
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return gray.BlendLab(base, t).Clamped().Hex()
}

// Display renders a label in its presentation form ("joy" -> "JOY").
func Display(l Label) string {
	return strings.ToUpper(strings.TrimSpace(string(l)))
}

// FormatScore renders a 0-100 confidence score for display, trimming
// trailing zeros: 92 -> "92%", 87.5 -> "87.5%".
func FormatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', -1, 64) + "%"
}

func normalize(l Label) Label {
	return Label(strings.ToLower(strings.TrimSpace(string(l))))
}

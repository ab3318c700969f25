package printers

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/moodlog/pkg/api"
	"tableflip.dev/moodlog/pkg/emotion"
	"tableflip.dev/moodlog/pkg/timeline"
)

type PrettyPrint struct {
	Width int
}

func (pp *PrettyPrint) wrapWidth() int {
	if pp.Width > 0 {
		return pp.Width
	}
	return 72
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

// Result prints an analysis card: EMOTION, confidence, insight, and the
// transcription when the backend produced one.
func (pp *PrettyPrint) Result(r *api.AnalysisResult) {
	if r == nil {
		return
	}
	label := emotion.Label(r.Emotion)

	head := color.New(color.Bold)
	faint := color.New(color.Faint)

	_, _ = head.Print(emotion.Display(label))
	_, _ = faint.Printf("  %s confidence\n", emotion.FormatScore(r.Score))

	if r.Insight != "" {
		fmt.Println(wordwrap.String(r.Insight, pp.wrapWidth()))
	}
	if r.Transcription != "" {
		_, _ = faint.Println("transcribed:")
		fmt.Println(wordwrap.String(r.Transcription, pp.wrapWidth()))
	}
}

// History prints the cached entries as a date/emotion table.
func (pp *PrettyPrint) History(entries []api.HistoryEntry) {
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}
	table := uitable.New()
	table.MaxColWidth = 40
	table.AddRow("DATE", "EMOTION")
	for _, e := range entries {
		table.AddRow(e.Date, emotion.Display(emotion.Label(e.Emotion)))
	}
	fmt.Println(table)
}

// Timeline prints the color-coded dot row for the entries plus its span.
func (pp *PrettyPrint) Timeline(entries []api.HistoryEntry) {
	points := timeline.Points(entries)
	row := timeline.Render(points, pp.wrapWidth()/2)
	if row != "" {
		fmt.Println(row)
	}
	f := color.New(color.Faint)
	_, _ = f.Println(timeline.Legend(points))
}

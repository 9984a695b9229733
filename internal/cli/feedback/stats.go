package feedback

import (
	"strings"

	"github.com/julianstephens/culturepulse/internal/cli"
	"github.com/julianstephens/culturepulse/internal/models"
	"github.com/julianstephens/culturepulse/internal/stats"
)

const barWidth = 30

type StatsCmd struct{}

func (cmd *StatsCmd) Run(ctx *cli.Context) error {
	subs := ctx.Sheet.FetchAll(ctx.Ctx)
	buckets := stats.MoodHistogram(subs)
	total := stats.Total(buckets)

	ctx.Printf("Responses:     %d\n", len(subs))
	ctx.Printf("Average mood:  %s / 5.0\n", stats.FormatAverage(subs))
	ctx.Println()
	ctx.Println("Mood distribution:")

	for i := len(buckets) - 1; i >= 0; i-- {
		b := buckets[i]
		bar := strings.Repeat("█", int(b.Share(total)*barWidth+0.5))
		ctx.Printf("  %s %-8s %-*s %d\n", models.MoodEmoji(b.Mood), b.Label, barWidth, bar, b.Count)
	}
	return nil
}

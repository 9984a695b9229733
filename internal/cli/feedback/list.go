package feedback

import (
	"encoding/json"
	"fmt"

	"github.com/julianstephens/culturepulse/internal/cli"
	"github.com/julianstephens/culturepulse/internal/constants"
	"github.com/julianstephens/culturepulse/internal/models"
	"github.com/julianstephens/culturepulse/internal/tui/state"
)

type ListCmd struct {
	Limit int  `help:"Maximum number of entries to show (0 for all)." default:"20"`
	JSON  bool `name:"json" help:"Print raw submissions as JSON."`
}

func (cmd *ListCmd) Run(ctx *cli.Context) error {
	subs := state.SortNewestFirst(ctx.Sheet.FetchAll(ctx.Ctx))
	if cmd.Limit > 0 && len(subs) > cmd.Limit {
		subs = subs[:cmd.Limit]
	}

	if cmd.JSON {
		out, err := json.MarshalIndent(subs, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal submissions: %w", err)
		}
		ctx.Println(string(out))
		return nil
	}

	if len(subs) == 0 {
		ctx.Println(constants.EmptyFeedMessage)
		return nil
	}
	for _, sub := range subs {
		ctx.Printf("%s  %s %-8s  %s\n",
			sub.Time().Format(constants.DateFormat),
			models.MoodEmoji(sub.Mood),
			models.MoodLabel(sub.Mood),
			sub.Feedback,
		)
	}
	return nil
}

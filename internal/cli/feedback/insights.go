package feedback

import (
	"github.com/julianstephens/culturepulse/internal/cli"
	"github.com/julianstephens/culturepulse/internal/tui/components/actionplan"
)

type InsightsCmd struct {
	Style string `help:"Markdown style (auto, dark, light, notty)." default:"auto" enum:"auto,dark,light,notty"`
	Width int    `help:"Wrap width for the rendered plan." default:"80"`
}

func (cmd *InsightsCmd) Run(ctx *cli.Context) error {
	subs := ctx.Sheet.FetchAll(ctx.Ctx)
	plan, err := ctx.Insights.GenerateActionPlan(ctx.Ctx, subs)
	if err != nil {
		return err
	}

	ctx.Println(actionplan.New(cmd.Style, cmd.Width).Render(plan))
	return nil
}

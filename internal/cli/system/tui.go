package system

import (
	"github.com/julianstephens/culturepulse/internal/cli"
	"github.com/julianstephens/culturepulse/internal/logger"
	"github.com/julianstephens/culturepulse/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	if !ctx.Sheet.Configured() {
		logger.Warn("Sheet endpoint not configured; submissions will not be persisted")
	}
	return tui.Run(ctx.Ctx, ctx.Sheet, ctx.Insights)
}

// Package feedback holds the headless commands: submitting, listing and
// summarising feedback without the TUI.
package feedback

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/culturepulse/internal/cli"
	"github.com/julianstephens/culturepulse/internal/logger"
	"github.com/julianstephens/culturepulse/internal/models"
)

type SubmitCmd struct {
	Mood     int    `help:"Mood from 1 (terrible) to 5 (great)." required:""`
	Feedback string `help:"Anonymous feedback text." required:"" short:"f"`
}

func (cmd *SubmitCmd) Run(ctx *cli.Context) error {
	sub, err := models.NewSubmission(
		models.Draft{Mood: cmd.Mood, Feedback: cmd.Feedback},
		uuid.NewString(),
		time.Now(),
	)
	if err != nil {
		return err
	}

	if !ctx.Sheet.Configured() {
		ctx.Println("⚠ Sheet endpoint not configured: submission accepted but not saved")
		return nil
	}

	if !ctx.Sheet.Append(ctx.Ctx, sub) {
		return errors.New("failed to save submission to the sheet")
	}
	logger.Info("Submitted feedback", "id", sub.ID, "mood", sub.Mood)
	ctx.Printf("✓ Feedback submitted (%s %s): %s\n", models.MoodEmoji(sub.Mood), models.MoodLabel(sub.Mood), sub.ID)
	return nil
}

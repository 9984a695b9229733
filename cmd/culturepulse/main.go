package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	_ "go.uber.org/automaxprocs"

	"github.com/julianstephens/culturepulse/internal/cli"
	"github.com/julianstephens/culturepulse/internal/cli/feedback"
	"github.com/julianstephens/culturepulse/internal/cli/system"
	"github.com/julianstephens/culturepulse/internal/config"
	"github.com/julianstephens/culturepulse/internal/constants"
	"github.com/julianstephens/culturepulse/internal/errors"
	"github.com/julianstephens/culturepulse/internal/insight"
	"github.com/julianstephens/culturepulse/internal/keyring"
	"github.com/julianstephens/culturepulse/internal/logger"
	"github.com/julianstephens/culturepulse/internal/sheet"
)

var CLI struct {
	Version  kong.VersionFlag
	Config   string `help:"Config file path." type:"path" default:"~/.config/culturepulse/config.yaml"`
	Endpoint string `help:"Sheet webhook URL (overrides config and CULTUREPULSE_ENDPOINT)."`
	Model    string `help:"Gemini model used for action plans."`
	Debug    bool   `help:"Log to stderr at debug level."`

	Tui      system.TuiCmd        `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Submit   feedback.SubmitCmd   `cmd:"" help:"Submit anonymous feedback."`
	List     feedback.ListCmd     `cmd:"" help:"List recent feedback, newest first."`
	Stats    feedback.StatsCmd    `cmd:"" help:"Show the average mood and distribution."`
	Insights feedback.InsightsCmd `cmd:"" help:"Generate an action plan from all feedback."`
	Serve    system.ServeCmd      `cmd:"" help:"Run a sheet-compatible endpoint backed by SQLite or PostgreSQL."`
	Doctor   system.DoctorCmd     `cmd:"" help:"Run health checks and diagnostics."`
	Backup   system.BackupCmd     `cmd:"" help:"Manage backups of the sheet server's SQLite database."`
	Settings system.ConfigCmd     `cmd:"" name:"config" help:"Manage configuration and stored secrets."`
}

func main() {
	kctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Anonymous team mood and feedback pulse"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	cfg, err := config.Load(CLI.Config)
	if err != nil {
		errors.Fatal(err)
	}
	if CLI.Endpoint != "" {
		cfg.Endpoint = CLI.Endpoint
	}
	if CLI.Model != "" {
		cfg.Model = CLI.Model
	}
	if CLI.Debug {
		cfg.Debug = true
	}
	cfg.ResolveAPIKey(keyring.GetAPIKey)

	if err := logger.Init(logger.Config{
		Debug:     cfg.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logger: %v\n", err)
	}

	ctx := context.Background()

	var gen insight.Generator
	if cfg.APIKey != "" {
		g, err := insight.NewGeminiGenerator(ctx, cfg.APIKey, cfg.Model)
		if err != nil {
			errors.Fatal(err)
		}
		gen = g
	}

	appCtx := &cli.Context{
		Ctx:        ctx,
		Config:     cfg,
		ConfigPath: CLI.Config,
		Sheet:      sheet.New(cfg.Endpoint),
		Insights:   insight.NewClient(gen),
	}

	logger.Debug("Starting command", "command", kctx.Command(), "endpoint_configured", appCtx.Sheet.Configured(), "api_key_source", cfg.APIKeySource)
	if err := kctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}

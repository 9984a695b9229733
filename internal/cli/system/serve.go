package system

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/julianstephens/culturepulse/internal/cli"
	"github.com/julianstephens/culturepulse/internal/logger"
	"github.com/julianstephens/culturepulse/internal/server"
)

// ServeCmd runs a sheet-compatible endpoint backed by SQLite or PostgreSQL.
type ServeCmd struct {
	Addr string `help:"Listen address (default from config)."`
	DB   string `name:"db" help:"SQLite path or PostgreSQL connection string. Credentials must NOT be embedded; use the keyring, CULTUREPULSE_DB_CONNECTION or .pgpass."`
}

func (cmd *ServeCmd) Run(ctx *cli.Context) error {
	dsn, source := ctx.ResolveDSN(cmd.DB)
	store, err := cli.OpenStore(dsn, source)
	if err != nil {
		return err
	}
	if err := store.Init(); err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}
	defer store.Close()

	ctx.PerformAutomaticBackup(store)

	cfg := server.Config{
		Addr:          ctx.Config.Server.Addr,
		RatePerMinute: ctx.Config.Server.RatePerMinute,
		Burst:         ctx.Config.Server.Burst,
	}
	if cmd.Addr != "" {
		cfg.Addr = cmd.Addr
	}

	sigCtx, stop := signal.NotifyContext(ctx.Ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("Starting sheet server", "addr", cfg.Addr, "dsn_source", source)
	ctx.Printf("Serving submissions on %s (store: %s)\n", cfg.Addr, cli.MaskConnectionString(store.GetConfigPath()))
	ctx.Printf("Point the widget at it with: export CULTUREPULSE_ENDPOINT=http://localhost%s\n", cfg.Addr)
	return server.New(store, cfg).Run(sigCtx)
}

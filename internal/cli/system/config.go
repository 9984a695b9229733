package system

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/julianstephens/culturepulse/internal/cli"
	"github.com/julianstephens/culturepulse/internal/config"
	"github.com/julianstephens/culturepulse/internal/keyring"
	"github.com/julianstephens/culturepulse/internal/storage/postgres"
)

type ConfigCmd struct {
	Show      ConfigShowCmd      `cmd:"" help:"Show the effective configuration." default:"1"`
	Init      ConfigInitCmd      `cmd:"" help:"Write the current settings to the config file."`
	SetKey    ConfigSetKeyCmd    `cmd:"" name:"set-key" help:"Store the Gemini API key in the OS keyring."`
	DeleteKey ConfigDeleteKeyCmd `cmd:"" name:"delete-key" help:"Remove the Gemini API key from the OS keyring."`
	SetDSN    ConfigSetDSNCmd    `cmd:"" name:"set-dsn" help:"Store the sheet server's PostgreSQL connection string in the OS keyring."`
	DeleteDSN ConfigDeleteDSNCmd `cmd:"" name:"delete-dsn" help:"Remove the stored connection string from the OS keyring."`
}

type ConfigShowCmd struct{}

func (cmd *ConfigShowCmd) Run(ctx *cli.Context) error {
	cfg := ctx.Config

	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = "(not set)"
	}
	keySource := ""
	if cfg.APIKey != "" {
		keySource = fmt.Sprintf(" (from %s)", cfg.APIKeySource)
	}

	ctx.Printf("Config file:      %s\n", ctx.ConfigPath)
	ctx.Printf("Endpoint:         %s\n", endpoint)
	ctx.Printf("Model:            %s\n", cfg.Model)
	ctx.Printf("API key:          %s%s\n", cfg.MaskedAPIKey(), keySource)
	ctx.Printf("Debug:            %t\n", cfg.Debug)
	ctx.Println()
	ctx.Println("Sheet server:")
	ctx.Printf("  Address:        %s\n", cfg.Server.Addr)
	dsn, source := ctx.ResolveDSN("")
	ctx.Printf("  Database:       %s (from %s)\n", cli.MaskConnectionString(dsn), source)
	ctx.Printf("  Rate limit:     %d/min, burst %d\n", cfg.Server.RatePerMinute, cfg.Server.Burst)
	return nil
}

type ConfigInitCmd struct {
	Force bool `help:"Overwrite an existing config file."`
}

func (cmd *ConfigInitCmd) Run(ctx *cli.Context) error {
	path := config.ExpandPath(ctx.ConfigPath)
	if _, err := os.Stat(path); err == nil && !cmd.Force {
		return fmt.Errorf("config file already exists at %s (use --force to overwrite)", path)
	}

	if err := ctx.Config.Save(path); err != nil {
		return err
	}
	ctx.Printf("✓ Config written to %s\n", path)
	if ctx.Config.APIKey != "" {
		ctx.Println("  The API key is not written to the file; use 'culturepulse config set-key' to keep it in the keyring.")
	}
	return nil
}

// ConfigSetKeyCmd stores the Gemini API key in the OS keyring
type ConfigSetKeyCmd struct {
	Key string `arg:"" help:"Gemini API key."`
}

func (cmd *ConfigSetKeyCmd) Run(ctx *cli.Context) error {
	key := strings.TrimSpace(cmd.Key)
	if err := keyring.SetAPIKey(key); err != nil {
		return fmt.Errorf("failed to store API key in keyring: %w", err)
	}
	ctx.Println("✓ API key stored successfully in OS keyring")
	return nil
}

type ConfigDeleteKeyCmd struct{}

func (cmd *ConfigDeleteKeyCmd) Run(ctx *cli.Context) error {
	if err := keyring.DeleteAPIKey(); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errors.New("no API key found in keyring")
		}
		return fmt.Errorf("failed to delete API key from keyring: %w", err)
	}
	ctx.Println("✓ API key deleted from OS keyring")
	return nil
}

// ConfigSetDSNCmd stores the sheet server's database connection string in the OS keyring
type ConfigSetDSNCmd struct {
	ConnectionString string `arg:"" help:"PostgreSQL connection string to store in keyring."`
}

func (cmd *ConfigSetDSNCmd) Run(ctx *cli.Context) error {
	if !postgres.IsConnectionString(cmd.ConnectionString) {
		return errors.New("connection string must be a postgres:// or postgresql:// URL")
	}

	if err := postgres.ValidateConnString(cmd.ConnectionString); err != nil {
		if !errors.Is(err, postgres.ErrEmbeddedCredentials) {
			return fmt.Errorf("invalid connection string: %w", err)
		}
		// the keyring is encrypted, so a password is tolerated here
		ctx.Println("⚠️  Warning: Connection string contains embedded credentials.")
		ctx.Println("   It will be stored as-is in the encrypted OS keyring.")
	}

	if err := keyring.SetConnectionString(cmd.ConnectionString); err != nil {
		return fmt.Errorf("failed to store connection string in keyring: %w", err)
	}
	ctx.Println("✓ Connection string stored successfully in OS keyring")
	ctx.Println("  'culturepulse serve' will use it when --db is not given")
	return nil
}

type ConfigDeleteDSNCmd struct{}

func (cmd *ConfigDeleteDSNCmd) Run(ctx *cli.Context) error {
	if err := keyring.DeleteConnectionString(); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errors.New("no connection string found in keyring")
		}
		return fmt.Errorf("failed to delete connection string from keyring: %w", err)
	}
	ctx.Println("✓ Connection string deleted from OS keyring")
	return nil
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/julianstephens/culturepulse/internal/backup"
	"github.com/julianstephens/culturepulse/internal/config"
	"github.com/julianstephens/culturepulse/internal/constants"
	"github.com/julianstephens/culturepulse/internal/insight"
	"github.com/julianstephens/culturepulse/internal/keyring"
	"github.com/julianstephens/culturepulse/internal/logger"
	"github.com/julianstephens/culturepulse/internal/sheet"
	"github.com/julianstephens/culturepulse/internal/storage"
	"github.com/julianstephens/culturepulse/internal/storage/postgres"
	"github.com/julianstephens/culturepulse/internal/storage/sqlite"
)

// Context is handed to every command's Run method by kong.
type Context struct {
	Ctx        context.Context
	Config     *config.Config
	ConfigPath string
	Sheet      *sheet.Client
	Insights   *insight.Client
	Out        io.Writer
}

func (c *Context) Printf(format string, args ...any) {
	fmt.Fprintf(c.out(), format, args...)
}

func (c *Context) Println(args ...any) {
	fmt.Fprintln(c.out(), args...)
}

func (c *Context) out() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

// DSN sources, in precedence order after an explicit flag.
const (
	DSNSourceFlag    = "flag"
	DSNSourceEnv     = "environment"
	DSNSourceKeyring = "keyring"
	DSNSourceConfig  = "config"
)

// ResolveDSN picks the database for the sheet server: flag, then
// CULTUREPULSE_DB_CONNECTION, then the OS keyring, then the config file.
func (c *Context) ResolveDSN(flag string) (dsn, source string) {
	if flag != "" {
		return flag, DSNSourceFlag
	}
	if v := os.Getenv(constants.EnvDBConnection); v != "" {
		return v, DSNSourceEnv
	}
	if v, err := keyring.GetConnectionString(); err == nil && v != "" {
		return v, DSNSourceKeyring
	} else if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		logger.Debug("Keyring lookup failed", "error", err)
	}
	return c.Config.Server.Database, DSNSourceConfig
}

// OpenStore selects the storage backend from dsn. PostgreSQL URLs with an
// embedded password are refused unless they came from the keyring.
func OpenStore(dsn, source string) (storage.Provider, error) {
	if postgres.IsConnectionString(dsn) {
		if source != DSNSourceKeyring && postgres.HasEmbeddedCredentials(dsn) {
			return nil, postgres.ErrEmbeddedCredentials
		}
		return postgres.New(dsn), nil
	}
	return sqlite.NewStore(config.ExpandPath(dsn)), nil
}

// SQLitePath returns the database file behind dsn, or an error for PostgreSQL.
func SQLitePath(dsn string) (string, error) {
	if postgres.IsConnectionString(dsn) {
		return "", errors.New("backups are only supported for SQLite stores; use pg_dump for PostgreSQL")
	}
	return config.ExpandPath(dsn), nil
}

// PerformAutomaticBackup snapshots a SQLite store and only logs failures
func (c *Context) PerformAutomaticBackup(store storage.Provider) {
	if _, ok := store.(*sqlite.Store); !ok {
		return
	}
	if _, err := backup.NewManager(store.GetConfigPath()).Create(c.Ctx); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// MaskConnectionString hides the password in a PostgreSQL URL or DSN for display
func MaskConnectionString(connStr string) string {
	if postgres.IsConnectionString(connStr) {
		idx := strings.Index(connStr, "://")
		remaining := connStr[idx+3:]
		// the last @ separates user info from host
		if atIdx := strings.LastIndex(remaining, "@"); atIdx != -1 {
			userInfo := remaining[:atIdx]
			if colonIdx := strings.Index(userInfo, ":"); colonIdx != -1 {
				return connStr[:idx+3] + userInfo[:colonIdx] + ":****" + connStr[idx+3+atIdx:]
			}
		}
		return connStr
	}

	if strings.Contains(connStr, "password=") {
		parts := strings.Fields(connStr)
		for i, part := range parts {
			if strings.HasPrefix(part, "password=") {
				parts[i] = "password=****"
			}
		}
		return strings.Join(parts, " ")
	}
	return connStr
}

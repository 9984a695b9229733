package system

import (
	"fmt"
	"path/filepath"

	"github.com/julianstephens/culturepulse/internal/backup"
	"github.com/julianstephens/culturepulse/internal/cli"
	"github.com/julianstephens/culturepulse/internal/config"
)

type BackupCmd struct {
	Create  BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
	List    BackupListCmd    `cmd:"" help:"List available backups."`
	Restore BackupRestoreCmd `cmd:"" help:"Restore from a backup. Stop the server first."`
}

func backupManager(ctx *cli.Context, db string) (*backup.Manager, error) {
	dsn, _ := ctx.ResolveDSN(db)
	path, err := cli.SQLitePath(dsn)
	if err != nil {
		return nil, err
	}
	return backup.NewManager(path), nil
}

type BackupCreateCmd struct {
	DB string `name:"db" help:"SQLite database path (default from config)."`
}

func (cmd *BackupCreateCmd) Run(ctx *cli.Context) error {
	mgr, err := backupManager(ctx, cmd.DB)
	if err != nil {
		return err
	}
	path, err := mgr.Create(ctx.Ctx)
	if err != nil {
		return err
	}
	ctx.Printf("✓ Backup created: %s\n", path)
	return nil
}

type BackupListCmd struct {
	DB string `name:"db" help:"SQLite database path (default from config)."`
}

func (cmd *BackupListCmd) Run(ctx *cli.Context) error {
	mgr, err := backupManager(ctx, cmd.DB)
	if err != nil {
		return err
	}
	backups, err := mgr.List()
	if err != nil {
		return err
	}

	if len(backups) == 0 {
		ctx.Printf("No backups found in %s\n", mgr.Dir())
		return nil
	}
	ctx.Printf("Backups in %s:\n", mgr.Dir())
	for _, b := range backups {
		ctx.Printf("  %s  %s  %s\n", b.Timestamp.Format("2006-01-02 15:04:05"), formatSize(b.Size), filepath.Base(b.Path))
	}
	return nil
}

type BackupRestoreCmd struct {
	File string `arg:"" help:"Backup file name or path."`
	DB   string `name:"db" help:"SQLite database path (default from config)."`
}

func (cmd *BackupRestoreCmd) Run(ctx *cli.Context) error {
	mgr, err := backupManager(ctx, cmd.DB)
	if err != nil {
		return err
	}

	// a bare name refers to the backup directory
	file := config.ExpandPath(cmd.File)
	if filepath.Base(file) == file {
		file = filepath.Join(mgr.Dir(), file)
	}
	if err := mgr.Restore(ctx.Ctx, file); err != nil {
		return err
	}
	ctx.Printf("✓ Database restored from %s\n", filepath.Base(file))
	return nil
}

func formatSize(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}

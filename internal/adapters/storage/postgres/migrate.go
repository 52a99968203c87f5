package postgres

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/jackc/pgx/v5"
	tern "github.com/jackc/tern/v2/migrate"

	"dogs-registry/internal/platform/logger"
)

//go:embed migrations/*.sql
var migrations embed.FS

const versionTable = "schema_version"

// Migrate aplica las migraciones embebidas hasta la última versión.
func Migrate(ctx context.Context, dsn string, log logger.Logger) error {
	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer conn.Close(ctx)

	m, err := tern.NewMigrator(ctx, conn, versionTable)
	if err != nil {
		return fmt.Errorf("constructing migrator: %w", err)
	}

	subtree, err := fs.Sub(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("migrations subtree: %w", err)
	}
	if err := m.LoadMigrations(subtree); err != nil {
		return fmt.Errorf("loading migrations: %w", err)
	}

	from, err := m.GetCurrentVersion(ctx)
	if err != nil {
		return fmt.Errorf("current migration version: %w", err)
	}

	if err := m.Migrate(ctx); err != nil {
		return err
	}

	to := int32(len(m.Migrations))
	if from == to {
		log.Info("database schema up to date", map[string]any{"version": to})
	} else {
		log.Info("database schema migrated", map[string]any{"from": from, "to": to})
	}
	return nil
}

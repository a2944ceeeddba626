package database

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	iofs "github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"jan-server/services/application-settings-api/internal/infrastructure/database/entities"
	"jan-server/services/application-settings-api/migrations"
)

// AutoMigrate synchronizes the schema with the entity list.
func AutoMigrate(ctx context.Context, db *gorm.DB, log zerolog.Logger) error {
	models := entities.All()
	if err := db.WithContext(ctx).AutoMigrate(models...); err != nil {
		return fmt.Errorf("synchronize schema: %w", err)
	}
	log.Info().Int("entities", len(models)).Msg("schema synchronized")
	return nil
}

// Prepare applies the schema steps enabled in cfg: entity synchronization
// and/or the bundled SQL migrations.
func Prepare(ctx context.Context, db *gorm.DB, cfg Config, log zerolog.Logger) error {
	if cfg.MigrationsRun {
		if err := RunMigrations(ctx, db, migrations.FS, log); err != nil {
			return err
		}
	}
	if cfg.Synchronize {
		if err := AutoMigrate(ctx, db, log); err != nil {
			return err
		}
	}
	if !cfg.MigrationsRun && !cfg.Synchronize {
		log.Debug().Msg("schema synchronization and migrations disabled")
	}
	return nil
}

// RunMigrations applies all pending SQL migrations from source.
func RunMigrations(ctx context.Context, gormDB *gorm.DB, source fs.FS, log zerolog.Logger) (err error) {
	entries, err := fs.ReadDir(source, ".")
	if err != nil {
		return fmt.Errorf("read migration directory: %w", err)
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			log.Debug().Str("file", entry.Name()).Msg("found migration file")
		}
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return fmt.Errorf("retrieve sql db: %w", err)
	}

	conn, err := sqlDB.Conn(ctx)
	if err != nil {
		return fmt.Errorf("acquire dedicated connection: %w", err)
	}

	driver, err := postgres.WithConnection(ctx, conn, &postgres.Config{
		MigrationsTable: "schema_migrations",
	})
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("initialize postgres driver: %w", err)
	}
	defer func() {
		if closeErr := driver.Close(); err == nil && closeErr != nil {
			err = fmt.Errorf("close migration connection: %w", closeErr)
		}
	}()

	src, err := iofs.New(source, ".")
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}
	defer func() {
		if closeErr := src.Close(); err == nil && closeErr != nil {
			err = fmt.Errorf("close migration source: %w", closeErr)
		}
	}()

	migrator, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}

	version, dirty, err := migrator.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		log.Info().Msg("no migrations have been applied yet")
	case err != nil:
		log.Warn().Err(err).Msg("read migration version")
	default:
		log.Info().Uint("version", version).Bool("dirty", dirty).Msg("current migration state")
	}

	if dirty {
		return fmt.Errorf("database is dirty at migration version %d", version)
	}

	if err := migrator.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info().Msg("no new migrations to apply")
			return nil
		}
		return fmt.Errorf("apply migrations: %w", err)
	}

	log.Info().Msg("migrations applied")
	return nil
}

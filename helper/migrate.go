package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/chris-catignani/hotel-tracker-sub001/config"
	"github.com/chris-catignani/hotel-tracker-sub001/infras/postgres"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const migrationSource = "file://migrations/postgres"

const (
	ActionUp      = "up"
	ActionDown    = "down"
	ActionStepUp  = "step-up"
	ActionDrop    = "drop"
	ActionVersion = "version"
	ActionForce   = "force"
)

// Command is a parsed migration invocation. Version is only read by force.
type Command struct {
	Action  string
	Version int
}

// ParseCommand reads `<action> [version]` as given to cmd/migrate.
func ParseCommand(args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, errors.New("migration action is required (up, down, step-up, drop, version, force <version>)")
	}

	cmd := Command{Action: args[0]}

	switch cmd.Action {
	case ActionUp, ActionDown, ActionStepUp, ActionDrop, ActionVersion:
		return cmd, nil
	case ActionForce:
		if len(args) < 2 {
			return Command{}, errors.New("force requires a target version")
		}

		version, err := strconv.Atoi(args[1])
		if err != nil {
			return Command{}, fmt.Errorf("invalid force version %q: %w", args[1], err)
		}

		cmd.Version = version

		return cmd, nil
	default:
		return Command{}, fmt.Errorf("unknown migration action %q", cmd.Action)
	}
}

// DatabaseURL builds the write-side postgres URL with the migrations table
// option understood by golang-migrate.
func DatabaseURL(cfg *config.Config) string {
	extra := url.Values{}
	if cfg.DB.Postgres.MigrationTable != "" {
		extra.Set("x-migrations-table", cfg.DB.Postgres.MigrationTable)
	}

	return postgres.DSN(cfg.DB.Postgres.Write, cfg.DB.Postgres.Prefix, extra)
}

// Run applies cmd to the hotel tracker schema.
func Run(cfg *config.Config, cmd Command) error {
	mig, err := migrate.New(migrationSource, DatabaseURL(cfg))
	if err != nil {
		return fmt.Errorf("error creating migrate instance: %w", err)
	}

	defer mig.Close()

	switch cmd.Action {
	case ActionUp:
		err = mig.Up()
	case ActionDown:
		err = mig.Steps(-1)
	case ActionStepUp:
		err = mig.Steps(1)
	case ActionDrop:
		err = mig.Down()
	case ActionForce:
		err = mig.Force(cmd.Version)
	case ActionVersion:
		version, dirty, verr := mig.Version()
		if verr != nil && !errors.Is(verr, migrate.ErrNilVersion) {
			return fmt.Errorf("error reading schema version: %w", verr)
		}

		log.Info().Uint("version", version).Bool("dirty", dirty).Msg("Current schema version")

		return nil
	default:
		return fmt.Errorf("unknown migration action %q", cmd.Action)
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running migration %s: %w", cmd.Action, err)
	}

	log.Info().Str("action", cmd.Action).Msg("Database migration finished")

	return nil
}

// Up brings the schema to the latest version; used by AUTO_MIGRATE on start.
func Up(cfg *config.Config) error {
	return Run(cfg, Command{Action: ActionUp})
}

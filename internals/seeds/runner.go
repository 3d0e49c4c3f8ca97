package seeds

import (
	"log/slog"

	"gorm.io/gorm"

	"personavix_backend/internals/configs"
	authHelper "personavix_backend/internals/helpers/auth"
	questionary "personavix_backend/internals/seeds/questionary"
	users "personavix_backend/internals/seeds/users/auth"
)

func RunAllSeeds(db *gorm.DB, cfg *configs.Config, log *slog.Logger) error {

	//* Questionary
	if err := questionary.SeedQuestionaryFromJSON(db, log, cfg.SeedQuestionaryFile); err != nil {
		return err
	}

	//* User
	if err := users.SeedAdminFromEnv(db, cfg, authHelper.NewBcryptHasher(), log); err != nil {
		return err
	}

	return nil
}

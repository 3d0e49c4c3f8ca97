package database

import (
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	answerModel "personavix_backend/internals/features/answers/model"
	questionaryModel "personavix_backend/internals/features/questionary/model"
	linkModel "personavix_backend/internals/features/unique_access_links/model"
	userModel "personavix_backend/internals/features/users/user/model"
)

type foreignKey struct {
	table, name, column, refTable, refColumn, onDelete string
}

var foreignKeys = []foreignKey{
	{"caracteristicas_disc", "fk_caracteristicas_perguntas", "id_pergunta", "perguntas", "id_pergunta", "CASCADE"},
	{"respostas", "fk_respostas_usuarios", "id_usuario", "usuarios", "id_usuario", "CASCADE"},
	{"links_acesso_unico", "fk_links_usuarios", "id_usuario", "usuarios", "id_usuario", "CASCADE"},
	{"links_acesso_unico", "fk_links_respostas", "id_resposta", "respostas", "id_resposta", "SET NULL"},
}

// AutoMigrate creates or updates the schema. Production schemas are managed
// outside the service; this path is for development and tests.
func AutoMigrate(db *gorm.DB, log *slog.Logger) error {
	if err := db.AutoMigrate(
		&userModel.UserModel{},
		&questionaryModel.QuestionModel{},
		&questionaryModel.DiscCharacteristicModel{},
		&answerModel.AnswerModel{},
		&linkModel.UniqueAccessLinkModel{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	// sqlite tidak mendukung ALTER TABLE ADD CONSTRAINT
	if db.Dialector.Name() == "sqlite" {
		return nil
	}
	m := db.Migrator()
	for _, fk := range foreignKeys {
		if m.HasConstraint(fk.table, fk.name) {
			continue
		}
		stmt := fmt.Sprintf(
			"ALTER TABLE %s ADD CONSTRAINT %s FOREIGN KEY (%s) REFERENCES %s (%s) ON DELETE %s",
			fk.table, fk.name, fk.column, fk.refTable, fk.refColumn, fk.onDelete,
		)
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("add constraint %s: %w", fk.name, err)
		}
		log.Info("constraint added", "name", fk.name)
	}
	return nil
}

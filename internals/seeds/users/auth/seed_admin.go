package user

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"gorm.io/gorm"

	"personavix_backend/internals/configs"
	"personavix_backend/internals/constants"
	"personavix_backend/internals/features/users/user/model"
	authHelper "personavix_backend/internals/helpers/auth"
)

// SeedAdminFromEnv membuat akun admin pertama dari ADMIN_EMAIL/ADMIN_PASSWORD.
// Kalau email sudah terdaftar, tidak ada yang diubah.
func SeedAdminFromEnv(db *gorm.DB, cfg *configs.Config, hasher authHelper.Hasher, log *slog.Logger) error {
	email := strings.ToLower(strings.TrimSpace(cfg.AdminEmail))
	if email == "" || cfg.AdminPassword == "" {
		log.Info("ADMIN_EMAIL or ADMIN_PASSWORD not set, admin seed skipped")
		return nil
	}

	var existing model.UserModel
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		log.Info("admin already exists, skipped", "email", email)
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("lookup admin: %w", err)
	}

	hash, err := hasher.Hash(cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	name := cfg.AdminName
	admin := model.UserModel{
		Name:         &name,
		Email:        &email,
		AccessFlag:   constants.AccessEnabled,
		Permission:   constants.PermissionAdmin,
		PasswordHash: &hash,
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("insert admin: %w", err)
	}
	log.Info("admin seeded", "email", email, "id_usuario", admin.ID)
	return nil
}

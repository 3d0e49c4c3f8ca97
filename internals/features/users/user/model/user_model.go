package model

import (
	"time"

	"personavix_backend/internals/constants"
)

// UserModel merepresentasikan tabel usuarios
type UserModel struct {
	ID           uint      `gorm:"column:id_usuario;primaryKey;autoIncrement" json:"id_usuario"`
	Name         *string   `gorm:"column:nome;size:80" json:"nome"`
	Email        *string   `gorm:"column:email;size:80;index:idx_usuarios_email" json:"email"`
	Phone        *string   `gorm:"column:telefone;size:30;index:idx_usuarios_telefone" json:"telefone"`
	AccessFlag   int       `gorm:"column:flag_acesso;not null;default:0" json:"flag_acesso"`
	Permission   int       `gorm:"column:permissao;not null;default:1" json:"permissao"`
	Sector       *string   `gorm:"column:setor;size:45" json:"setor"`
	PasswordHash *string   `gorm:"column:senha_hash;size:72" json:"-"`
	CreatedAt    time.Time `gorm:"column:criado_em;autoCreateTime" json:"criado_em"`
	UpdatedAt    time.Time `gorm:"column:atualizado_em;autoUpdateTime" json:"atualizado_em"`
}

func (UserModel) TableName() string {
	return "usuarios"
}

// IsActive reports whether the account may be authorized for anything.
func (u *UserModel) IsActive() bool {
	return u.AccessFlag == constants.AccessEnabled
}

// Identity is the value carried in the token identity claim: email, or the
// phone number for respondents created from a phone-only link.
func (u *UserModel) Identity() string {
	if u.Email != nil && *u.Email != "" {
		return *u.Email
	}
	if u.Phone != nil {
		return *u.Phone
	}
	return ""
}

// HasIdentity reports whether v is this user's email or telefone.
func (u *UserModel) HasIdentity(v string) bool {
	if v == "" {
		return false
	}
	return (u.Email != nil && *u.Email == v) || (u.Phone != nil && *u.Phone == v)
}

package dto

import (
	"strings"

	"personavix_backend/internals/features/users/user/model"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

// CreateUserRequest, admin only
type CreateUserRequest struct {
	Name       *string `json:"nome" validate:"omitempty,min=3,max=80"`
	Email      string  `json:"email" validate:"required,email,max=80"`
	Phone      *string `json:"telefone" validate:"omitempty,min=8,max=30"`
	AccessFlag *int    `json:"flag_acesso" validate:"required,gte=0,lte=1"`
	Permission *int    `json:"permissao" validate:"required,gte=1,lte=3"`
	Sector     *string `json:"setor" validate:"omitempty,min=3,max=45"`
	Password   *string `json:"senha_hash" validate:"omitempty,min=6,max=128"`
}

func (r *CreateUserRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Name = trimPtr(r.Name)
	r.Phone = trimPtr(r.Phone)
	r.Sector = trimPtr(r.Sector)
}

// ToModel, password di-hash di service
func (r *CreateUserRequest) ToModel() *model.UserModel {
	email := r.Email
	m := &model.UserModel{
		Name:   r.Name,
		Email:  &email,
		Phone:  r.Phone,
		Sector: r.Sector,
	}
	if r.AccessFlag != nil {
		m.AccessFlag = *r.AccessFlag
	}
	if r.Permission != nil {
		m.Permission = *r.Permission
	}
	return m
}

// UpdateUserRequest, partial update (pointer = field dikirim)
type UpdateUserRequest struct {
	Name       *string `json:"nome" validate:"omitempty,min=3,max=80"`
	Email      *string `json:"email" validate:"omitempty,email,max=80"`
	Phone      *string `json:"telefone" validate:"omitempty,min=8,max=30"`
	Sector     *string `json:"setor" validate:"omitempty,min=3,max=45"`
	Permission *int    `json:"permissao" validate:"omitempty,gte=1,lte=3"`
	AccessFlag *int    `json:"flag_acesso" validate:"omitempty,gte=0,lte=1"`
	Password   *string `json:"senha" validate:"omitempty,min=6,max=128"`
}

func (r *UpdateUserRequest) Normalize() {
	r.Name = trimPtr(r.Name)
	r.Phone = trimPtr(r.Phone)
	r.Sector = trimPtr(r.Sector)
	if r.Email != nil {
		v := strings.ToLower(strings.TrimSpace(*r.Email))
		r.Email = &v
	}
}

// HasPrivilegedFields: permissao, flag_acesso dan senha hanya untuk admin
func (r *UpdateUserRequest) HasPrivilegedFields() bool {
	return r.Permission != nil || r.AccessFlag != nil || r.Password != nil
}

// Changes returns the columns whose requested value differs from m. The
// password is handled by the service because only its digest is stored.
func (r *UpdateUserRequest) Changes(m *model.UserModel) map[string]any {
	out := map[string]any{}
	if r.Name != nil && !samePtr(m.Name, *r.Name) {
		out["nome"] = *r.Name
	}
	if r.Email != nil && !samePtr(m.Email, *r.Email) {
		out["email"] = *r.Email
	}
	if r.Phone != nil && !samePtr(m.Phone, *r.Phone) {
		out["telefone"] = *r.Phone
	}
	if r.Sector != nil && !samePtr(m.Sector, *r.Sector) {
		out["setor"] = *r.Sector
	}
	if r.Permission != nil && *r.Permission != m.Permission {
		out["permissao"] = *r.Permission
	}
	if r.AccessFlag != nil && *r.AccessFlag != m.AccessFlag {
		out["flag_acesso"] = *r.AccessFlag
	}
	return out
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"senha" validate:"required,min=6,max=128"`
}

func (r *LoginRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

type LoginResponse struct {
	User        *model.UserModel `json:"user_datas"`
	AccessToken string           `json:"access_token"`
	TokenType   string           `json:"token_type"`
	ExpiresIn   int64            `json:"expires_in"`
}

func trimPtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := strings.TrimSpace(*p)
	return &v
}

func samePtr(cur *string, v string) bool {
	return cur != nil && *cur == v
}

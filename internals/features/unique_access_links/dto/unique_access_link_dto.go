package dto

import (
	"strings"

	"personavix_backend/internals/features/unique_access_links/model"
	userModel "personavix_backend/internals/features/users/user/model"
	helper "personavix_backend/internals/helpers"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

// CreateUniqueAccessLinkRequest, admin only. User is the respondent email or
// phone; an empty Link gets a generated one.
type CreateUniqueAccessLinkRequest struct {
	Link     string  `json:"link" validate:"omitempty,min=1,max=255"`
	User     string  `json:"user" validate:"required,min=6,max=80"`
	Password *string `json:"senha_hash" validate:"omitempty,min=6,max=128"`
}

func (r *CreateUniqueAccessLinkRequest) Normalize() {
	r.Link = strings.TrimSpace(r.Link)
	r.User = strings.TrimSpace(r.User)
	if helper.IsEmail(r.User) {
		r.User = strings.ToLower(r.User)
	}
}

type UniqueAccessLinkLoginRequest struct {
	Password string `json:"senha" validate:"required,min=6,max=128"`
}

// UpdateUniqueAccessLinkRequest is the internal change set applied when a
// test response resolves a link.
type UpdateUniqueAccessLinkRequest struct {
	SessionID uint  `json:"id_sessao" validate:"required,gte=1"`
	Answered  int   `json:"respondido" validate:"gte=0,lte=1"`
	AnswerID  *uint `json:"id_resposta" validate:"omitempty,gte=1"`
}

func (r *UpdateUniqueAccessLinkRequest) Validate() error {
	if err := helper.ValidateStruct(r); err != nil {
		return err
	}
	if r.Answered == 1 && r.AnswerID == nil {
		return &helper.ValidationError{Fields: map[string][]string{"id_resposta": {"required_with=respondido"}}}
	}
	return nil
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

type UniqueAccessLinkWithUser struct {
	model.UniqueAccessLinkModel
	User *userModel.UserModel `json:"usuarios_"`
}

func WithUsers(links []model.UniqueAccessLinkModel, users map[uint]userModel.UserModel) []UniqueAccessLinkWithUser {
	out := make([]UniqueAccessLinkWithUser, 0, len(links))
	for _, l := range links {
		item := UniqueAccessLinkWithUser{UniqueAccessLinkModel: l}
		if u, ok := users[l.UserID]; ok {
			item.User = &u
		}
		out = append(out, item)
	}
	return out
}

type UniqueAccessLinkLoginResponse struct {
	Session     UniqueAccessLinkWithUser `json:"session_datas"`
	AccessToken string                   `json:"access_token"`
	TokenType   string                   `json:"token_type"`
	ExpiresIn   int64                    `json:"expires_in"`
}

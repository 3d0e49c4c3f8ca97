package dto

import (
	"strings"

	"personavix_backend/internals/features/answers/model"
	userModel "personavix_backend/internals/features/users/user/model"
)

// CreateAnswerRequest: skor DISC 0..100, id_sessao opsional menutup link
type CreateAnswerRequest struct {
	Dominance  *float64 `json:"dominancia" validate:"required,gte=0,lte=100"`
	Influence  *float64 `json:"influencia" validate:"required,gte=0,lte=100"`
	Stability  *float64 `json:"estabilidade" validate:"required,gte=0,lte=100"`
	Conformity *float64 `json:"conformidade" validate:"required,gte=0,lte=100"`
	Reason     string   `json:"motivo" validate:"required,min=1,max=45"`
	SessionID  *uint    `json:"id_sessao" validate:"omitempty,gte=1"`
}

func (r *CreateAnswerRequest) Normalize() {
	r.Reason = strings.TrimSpace(r.Reason)
}

func (r *CreateAnswerRequest) ToModel(userID uint) *model.AnswerModel {
	return &model.AnswerModel{
		UserID:     userID,
		Dominance:  *r.Dominance,
		Influence:  *r.Influence,
		Stability:  *r.Stability,
		Conformity: *r.Conformity,
		Reason:     r.Reason,
	}
}

type AnswerWithUser struct {
	model.AnswerModel
	User *userModel.UserModel `json:"usuarios_"`
}

func WithUsers(answers []model.AnswerModel, users map[uint]userModel.UserModel) []AnswerWithUser {
	out := make([]AnswerWithUser, 0, len(answers))
	for _, a := range answers {
		item := AnswerWithUser{AnswerModel: a}
		if u, ok := users[a.UserID]; ok {
			item.User = &u
		}
		out = append(out, item)
	}
	return out
}

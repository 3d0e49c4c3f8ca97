package model

import "time"

// UniqueAccessLinkModel: tabel links_acesso_unico.
// Sekali respondido=1, id_resposta terisi dan milik user yang sama.
type UniqueAccessLinkModel struct {
	ID           uint       `gorm:"column:id_sessao;primaryKey;autoIncrement" json:"id_sessao"`
	UserID       uint       `gorm:"column:id_usuario;not null;index:idx_links_usuario" json:"id_usuario"`
	Link         string     `gorm:"column:link;size:255;not null;uniqueIndex:uq_links_link" json:"link"`
	PasswordHash *string    `gorm:"column:senha_hash;size:72" json:"-"`
	Answered     int        `gorm:"column:respondido;not null;default:0" json:"respondido"`
	AnswerID     *uint      `gorm:"column:id_resposta;index:idx_links_resposta" json:"id_resposta"`
	CreatedAt    time.Time  `gorm:"column:criado_em;autoCreateTime" json:"criado_em"`
	AnsweredAt   *time.Time `gorm:"column:respondido_em" json:"respondido_em"`
}

func (UniqueAccessLinkModel) TableName() string {
	return "links_acesso_unico"
}

func (l *UniqueAccessLinkModel) IsAnswered() bool {
	return l.Answered == 1
}

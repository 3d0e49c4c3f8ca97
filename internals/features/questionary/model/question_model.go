package model

import "time"

// QuestionModel: tabel perguntas (reference data, read only lewat API)
type QuestionModel struct {
	ID        uint      `gorm:"column:id_pergunta;primaryKey;autoIncrement" json:"id_pergunta"`
	Text      string    `gorm:"column:pergunta;size:60;not null" json:"pergunta"`
	CreatedAt time.Time `gorm:"column:criado_em;autoCreateTime" json:"criado_em"`
	UpdatedAt time.Time `gorm:"column:atualizado_em;autoUpdateTime" json:"atualizado_em"`
}

func (QuestionModel) TableName() string {
	return "perguntas"
}

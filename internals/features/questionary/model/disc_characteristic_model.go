package model

import "time"

// DiscCharacteristicModel: tabel caracteristicas_disc, FK ke perguntas (cascade)
type DiscCharacteristicModel struct {
	ID         uint      `gorm:"column:id_caracteristica;primaryKey;autoIncrement" json:"id_caracteristica"`
	QuestionID uint      `gorm:"column:id_pergunta;not null;index:idx_caracteristicas_pergunta" json:"id_pergunta"`
	Text       string    `gorm:"column:caracteristica;size:45;not null" json:"caracteristica"`
	Factor     string    `gorm:"column:fator;size:20;not null" json:"fator"`
	CreatedAt  time.Time `gorm:"column:criado_em;autoCreateTime" json:"criado_em"`
	UpdatedAt  time.Time `gorm:"column:atualizado_em;autoUpdateTime" json:"atualizado_em"`
}

func (DiscCharacteristicModel) TableName() string {
	return "caracteristicas_disc"
}

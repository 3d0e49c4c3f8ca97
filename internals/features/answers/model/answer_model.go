package model

import "time"

// AnswerModel: tabel respostas, immutable setelah dibuat
type AnswerModel struct {
	ID         uint      `gorm:"column:id_resposta;primaryKey;autoIncrement" json:"id_resposta"`
	UserID     uint      `gorm:"column:id_usuario;not null;index:idx_respostas_usuario" json:"id_usuario"`
	Dominance  float64   `gorm:"column:dominancia;not null" json:"dominancia"`
	Influence  float64   `gorm:"column:influencia;not null" json:"influencia"`
	Stability  float64   `gorm:"column:estabilidade;not null" json:"estabilidade"`
	Conformity float64   `gorm:"column:conformidade;not null" json:"conformidade"`
	Reason     string    `gorm:"column:motivo;size:45;not null" json:"motivo"`
	AnsweredAt time.Time `gorm:"column:respondido_em;autoCreateTime" json:"respondido_em"`
}

func (AnswerModel) TableName() string {
	return "respostas"
}

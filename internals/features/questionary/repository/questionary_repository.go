package repository

import (
	"context"

	"gorm.io/gorm"

	"personavix_backend/internals/features/questionary/model"
)

type QuestionaryRepository interface {
	ListQuestions(ctx context.Context) ([]model.QuestionModel, error)
	ListCharacteristics(ctx context.Context) ([]model.DiscCharacteristicModel, error)
}

type gormQuestionaryRepository struct {
	db *gorm.DB
}

func NewQuestionaryRepository(db *gorm.DB) QuestionaryRepository {
	return &gormQuestionaryRepository{db: db}
}

func (r *gormQuestionaryRepository) ListQuestions(ctx context.Context) ([]model.QuestionModel, error) {
	rows := []model.QuestionModel{}
	if err := r.db.WithContext(ctx).Order("id_pergunta").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *gormQuestionaryRepository) ListCharacteristics(ctx context.Context) ([]model.DiscCharacteristicModel, error) {
	rows := []model.DiscCharacteristicModel{}
	if err := r.db.WithContext(ctx).Order("id_pergunta, id_caracteristica").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

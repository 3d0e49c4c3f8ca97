package repository

import (
	"context"

	"gorm.io/gorm"

	"personavix_backend/internals/features/answers/model"
	helper "personavix_backend/internals/helpers"
)

type AnswerRepository interface {
	WithTx(tx *gorm.DB) AnswerRepository
	FindByID(ctx context.Context, id uint) (*model.AnswerModel, error)
	List(ctx context.Context, userID *uint, paging *helper.Paging) ([]model.AnswerModel, int64, error)
	Insert(ctx context.Context, a *model.AnswerModel) error
}

type gormAnswerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &gormAnswerRepository{db: db}
}

func (r *gormAnswerRepository) WithTx(tx *gorm.DB) AnswerRepository {
	return &gormAnswerRepository{db: tx}
}

func (r *gormAnswerRepository) FindByID(ctx context.Context, id uint) (*model.AnswerModel, error) {
	var a model.AnswerModel
	if err := r.db.WithContext(ctx).First(&a, "id_resposta = ?", id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *gormAnswerRepository) List(ctx context.Context, userID *uint, paging *helper.Paging) ([]model.AnswerModel, int64, error) {
	var (
		rows  []model.AnswerModel
		total int64
	)
	scope := func(db *gorm.DB) *gorm.DB {
		if userID != nil {
			return db.Where("id_usuario = ?", *userID)
		}
		return db
	}

	if err := r.db.WithContext(ctx).Model(&model.AnswerModel{}).Scopes(scope).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	q := r.db.WithContext(ctx).Scopes(scope).Order("id_resposta")
	if paging != nil {
		q = q.Offset(paging.Offset).Limit(paging.Limit)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *gormAnswerRepository) Insert(ctx context.Context, a *model.AnswerModel) error {
	return r.db.WithContext(ctx).Create(a).Error
}

package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"personavix_backend/internals/features/unique_access_links/model"
	helper "personavix_backend/internals/helpers"
)

type UniqueAccessLinkRepository interface {
	WithTx(tx *gorm.DB) UniqueAccessLinkRepository
	FindByID(ctx context.Context, id uint) (*model.UniqueAccessLinkModel, error)
	FindByLink(ctx context.Context, link string) (*model.UniqueAccessLinkModel, error)
	LinkExists(ctx context.Context, link string) (bool, error)
	List(ctx context.Context, paging *helper.Paging) ([]model.UniqueAccessLinkModel, int64, error)
	Insert(ctx context.Context, l *model.UniqueAccessLinkModel) error
	MarkAnswered(ctx context.Context, sessionID, answerID uint, at time.Time) error
}

type gormUniqueAccessLinkRepository struct {
	db *gorm.DB
}

func NewUniqueAccessLinkRepository(db *gorm.DB) UniqueAccessLinkRepository {
	return &gormUniqueAccessLinkRepository{db: db}
}

func (r *gormUniqueAccessLinkRepository) WithTx(tx *gorm.DB) UniqueAccessLinkRepository {
	return &gormUniqueAccessLinkRepository{db: tx}
}

func (r *gormUniqueAccessLinkRepository) FindByID(ctx context.Context, id uint) (*model.UniqueAccessLinkModel, error) {
	var l model.UniqueAccessLinkModel
	if err := r.db.WithContext(ctx).First(&l, "id_sessao = ?", id).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *gormUniqueAccessLinkRepository) FindByLink(ctx context.Context, link string) (*model.UniqueAccessLinkModel, error) {
	var l model.UniqueAccessLinkModel
	if err := r.db.WithContext(ctx).Where("link = ?", link).First(&l).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *gormUniqueAccessLinkRepository) LinkExists(ctx context.Context, link string) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.UniqueAccessLinkModel{}).Where("link = ?", link).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *gormUniqueAccessLinkRepository) List(ctx context.Context, paging *helper.Paging) ([]model.UniqueAccessLinkModel, int64, error) {
	var (
		rows  []model.UniqueAccessLinkModel
		total int64
	)
	if err := r.db.WithContext(ctx).Model(&model.UniqueAccessLinkModel{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	q := r.db.WithContext(ctx).Order("id_sessao")
	if paging != nil {
		q = q.Offset(paging.Offset).Limit(paging.Limit)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *gormUniqueAccessLinkRepository) Insert(ctx context.Context, l *model.UniqueAccessLinkModel) error {
	return r.db.WithContext(ctx).Create(l).Error
}

// MarkAnswered only flips links still open; a concurrent second answer sees
// gorm.ErrRecordNotFound.
func (r *gormUniqueAccessLinkRepository) MarkAnswered(ctx context.Context, sessionID, answerID uint, at time.Time) error {
	res := r.db.WithContext(ctx).
		Model(&model.UniqueAccessLinkModel{}).
		Where("id_sessao = ? AND respondido = 0", sessionID).
		Updates(map[string]any{
			"respondido":    1,
			"id_resposta":   answerID,
			"respondido_em": at,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

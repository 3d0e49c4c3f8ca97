package repository

import (
	"context"

	"gorm.io/gorm"

	"personavix_backend/internals/constants"
	"personavix_backend/internals/features/users/user/model"
	helper "personavix_backend/internals/helpers"
)

// UserRepository is the persistence boundary for usuarios.
type UserRepository interface {
	WithTx(tx *gorm.DB) UserRepository
	FindByID(ctx context.Context, id uint) (*model.UserModel, error)
	FindByIDs(ctx context.Context, ids []uint) (map[uint]model.UserModel, error)
	FindByEmail(ctx context.Context, email string) (*model.UserModel, error)
	FindByPhone(ctx context.Context, phone string) (*model.UserModel, error)
	FindActiveByEmail(ctx context.Context, email string) (*model.UserModel, error)
	IdentityTaken(ctx context.Context, value string, exceptID uint) (bool, error)
	List(ctx context.Context, paging *helper.Paging) ([]model.UserModel, int64, error)
	Insert(ctx context.Context, u *model.UserModel) error
	Update(ctx context.Context, id uint, changes map[string]any) error
}

type gormUserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &gormUserRepository{db: db}
}

func (r *gormUserRepository) WithTx(tx *gorm.DB) UserRepository {
	return &gormUserRepository{db: tx}
}

func (r *gormUserRepository) FindByID(ctx context.Context, id uint) (*model.UserModel, error) {
	var u model.UserModel
	if err := r.db.WithContext(ctx).First(&u, "id_usuario = ?", id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *gormUserRepository) FindByIDs(ctx context.Context, ids []uint) (map[uint]model.UserModel, error) {
	out := make(map[uint]model.UserModel, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var rows []model.UserModel
	if err := r.db.WithContext(ctx).Where("id_usuario IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, u := range rows {
		out[u.ID] = u
	}
	return out, nil
}

func (r *gormUserRepository) FindByEmail(ctx context.Context, email string) (*model.UserModel, error) {
	var u model.UserModel
	if err := r.db.WithContext(ctx).Where("email = ?", email).Order("id_usuario").First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *gormUserRepository) FindByPhone(ctx context.Context, phone string) (*model.UserModel, error) {
	var u model.UserModel
	if err := r.db.WithContext(ctx).Where("telefone = ?", phone).Order("id_usuario").First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *gormUserRepository) FindActiveByEmail(ctx context.Context, email string) (*model.UserModel, error) {
	var u model.UserModel
	if err := r.db.WithContext(ctx).
		Where("email = ? AND flag_acesso = ?", email, constants.AccessEnabled).
		Order("id_usuario").
		First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// IdentityTaken reports whether value is already some other user's email or
// telefone. Both columns share one namespace because either can identify a
// respondent.
func (r *gormUserRepository) IdentityTaken(ctx context.Context, value string, exceptID uint) (bool, error) {
	var n int64
	q := r.db.WithContext(ctx).Model(&model.UserModel{}).Where("(email = ? OR telefone = ?)", value, value)
	if exceptID != 0 {
		q = q.Where("id_usuario <> ?", exceptID)
	}
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *gormUserRepository) List(ctx context.Context, paging *helper.Paging) ([]model.UserModel, int64, error) {
	var (
		rows  []model.UserModel
		total int64
	)
	if err := r.db.WithContext(ctx).Model(&model.UserModel{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	q := r.db.WithContext(ctx).Order("id_usuario")
	if paging != nil {
		q = q.Offset(paging.Offset).Limit(paging.Limit)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *gormUserRepository) Insert(ctx context.Context, u *model.UserModel) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *gormUserRepository) Update(ctx context.Context, id uint, changes map[string]any) error {
	if len(changes) == 0 {
		return nil
	}
	res := r.db.WithContext(ctx).Model(&model.UserModel{ID: id}).Updates(changes)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

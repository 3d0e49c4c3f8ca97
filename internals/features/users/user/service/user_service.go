package service

import (
	"context"

	"gorm.io/gorm"

	"personavix_backend/internals/features/users/user/dto"
	"personavix_backend/internals/features/users/user/model"
	"personavix_backend/internals/features/users/user/repository"
	helper "personavix_backend/internals/helpers"
	authHelper "personavix_backend/internals/helpers/auth"
)

const (
	msgUserNotFound    = "User not found"
	msgUserExists      = "User already exists"
	msgPhoneInUse      = "Phone already in use"
	msgErrListUsers    = "Error retrieving users"
	msgErrGetUser      = "Error retrieving user"
	msgErrCreateUser   = "Error creating user"
	msgErrUpdateUser   = "Error updating user"
	msgErrHashPassword = "Error processing password"
)

type UserService struct {
	db     *gorm.DB
	users  repository.UserRepository
	hasher authHelper.Hasher
}

func NewUserService(db *gorm.DB, users repository.UserRepository, hasher authHelper.Hasher) *UserService {
	return &UserService{db: db, users: users, hasher: hasher}
}

func (s *UserService) List(ctx context.Context, paging *helper.Paging) ([]model.UserModel, int64, error) {
	rows, total, err := s.users.List(ctx, paging)
	if err != nil {
		return nil, 0, helper.NewInternal(msgErrListUsers, err)
	}
	return rows, total, nil
}

func (s *UserService) Get(ctx context.Context, ac authHelper.AuthContext, id uint) (*model.UserModel, error) {
	if !ac.CanActOn(id) {
		return nil, authHelper.ErrPermissionDenied
	}
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, helper.FromDBError(err, msgUserNotFound, msgErrGetUser, msgErrGetUser)
	}
	return u, nil
}

func (s *UserService) Create(ctx context.Context, req *dto.CreateUserRequest) (*model.UserModel, error) {
	if err := checkIdentityFree(ctx, s.users, req.Email, 0, msgUserExists, msgErrCreateUser); err != nil {
		return nil, err
	}
	if req.Phone != nil && *req.Phone != "" {
		if err := checkIdentityFree(ctx, s.users, *req.Phone, 0, msgPhoneInUse, msgErrCreateUser); err != nil {
			return nil, err
		}
	}

	m := req.ToModel()
	if req.Password != nil && *req.Password != "" {
		digest, err := s.hasher.Hash(*req.Password)
		if err != nil {
			return nil, helper.NewInternal(msgErrHashPassword, err)
		}
		m.PasswordHash = &digest
	}

	if err := s.users.Insert(ctx, m); err != nil {
		return nil, helper.FromDBError(err, msgUserNotFound, msgUserExists, msgErrCreateUser)
	}
	return m, nil
}

// Update applies a partial update. Nothing is written when no field
// actually changes, so atualizado_em is left alone.
func (s *UserService) Update(ctx context.Context, ac authHelper.AuthContext, id uint, req *dto.UpdateUserRequest) (*model.UserModel, error) {
	if !ac.CanActOn(id) {
		return nil, authHelper.ErrPermissionDenied
	}
	if req.HasPrivilegedFields() && !ac.IsAdmin() {
		return nil, authHelper.ErrPermissionDenied
	}

	var out *model.UserModel
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		users := s.users.WithTx(tx)

		cur, err := users.FindByID(ctx, id)
		if err != nil {
			return helper.FromDBError(err, msgUserNotFound, msgErrUpdateUser, msgErrUpdateUser)
		}

		changes := req.Changes(cur)
		if email, ok := changes["email"].(string); ok {
			if err := checkIdentityFree(ctx, users, email, id, msgUserExists, msgErrUpdateUser); err != nil {
				return err
			}
		}
		if phone, ok := changes["telefone"].(string); ok && phone != "" {
			if err := checkIdentityFree(ctx, users, phone, id, msgPhoneInUse, msgErrUpdateUser); err != nil {
				return err
			}
		}
		if req.Password != nil && (cur.PasswordHash == nil || !s.hasher.Verify(*req.Password, *cur.PasswordHash)) {
			digest, err := s.hasher.Hash(*req.Password)
			if err != nil {
				return helper.NewInternal(msgErrHashPassword, err)
			}
			changes["senha_hash"] = digest
		}

		if len(changes) == 0 {
			out = cur
			return nil
		}
		if err := users.Update(ctx, id, changes); err != nil {
			return helper.FromDBError(err, msgUserNotFound, msgUserExists, msgErrUpdateUser)
		}
		out, err = users.FindByID(ctx, id)
		if err != nil {
			return helper.NewInternal(msgErrUpdateUser, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ResolveIdentity finds the user behind verified claims. Regular tokens need
// an enabled account matched by email. Link-session tokens load exactly the
// respondent row they were issued for, whatever its access flag, and only
// while that row still carries the token identity.
func (s *UserService) ResolveIdentity(ctx context.Context, claims *authHelper.Claims) (*model.UserModel, error) {
	if !claims.IsUniqueAccessLink {
		return s.users.FindActiveByEmail(ctx, claims.Email)
	}
	u, err := s.users.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if !u.HasIdentity(claims.Email) {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

// email and telefone share one identity namespace.
func checkIdentityFree(ctx context.Context, users repository.UserRepository, value string, exceptID uint, conflictMsg, internalMsg string) error {
	taken, err := users.IdentityTaken(ctx, value, exceptID)
	if err != nil {
		return helper.NewInternal(internalMsg, err)
	}
	if taken {
		return helper.NewConflict(conflictMsg)
	}
	return nil
}

package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"personavix_backend/internals/constants"
	userDTO "personavix_backend/internals/features/users/user/dto"
	userModel "personavix_backend/internals/features/users/user/model"
	userRepo "personavix_backend/internals/features/users/user/repository"
	helper "personavix_backend/internals/helpers"
	authHelper "personavix_backend/internals/helpers/auth"
)

const msgErrLogin = "Error logging in"

type AuthService struct {
	users  userRepo.UserRepository
	hasher authHelper.Hasher
	tokens *authHelper.TokenService
}

func NewAuthService(users userRepo.UserRepository, hasher authHelper.Hasher, tokens *authHelper.TokenService) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens}
}

// ========================== LOGIN ==========================
func (s *AuthService) Login(ctx context.Context, req *userDTO.LoginRequest) (*userDTO.LoginResponse, error) {
	u, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.NewUnauthenticated(constants.MsgInvalidCredential)
		}
		return nil, helper.NewInternal(msgErrLogin, err)
	}
	if u.PasswordHash == nil || !s.hasher.Verify(req.Password, *u.PasswordHash) {
		return nil, helper.NewUnauthenticated(constants.MsgInvalidCredential)
	}
	return s.issue(u, req.Email, false)
}

// LoginWithToken re-issues a fresh token for the caller, keeping the access
// mode of the presented one. The access flag is read again from the database.
func (s *AuthService) LoginWithToken(ctx context.Context, ac authHelper.AuthContext) (*userDTO.LoginResponse, error) {
	u, err := s.users.FindByID(ctx, ac.UserID)
	if err != nil {
		return nil, helper.FromDBError(err, constants.MsgUserNotAuthorized, msgErrLogin, msgErrLogin)
	}
	if !u.IsActive() {
		return nil, helper.NewUnauthorized(constants.MsgUserNotAuthorized)
	}
	return s.issue(u, ac.Identity, ac.IsLinkSession)
}

func (s *AuthService) issue(u *userModel.UserModel, identity string, linkSession bool) (*userDTO.LoginResponse, error) {
	var (
		token string
		err   error
	)
	if linkSession {
		token, _, err = s.tokens.IssueLinkSession(identity, u.ID)
	} else {
		token, _, err = s.tokens.Issue(identity)
	}
	if err != nil {
		return nil, helper.NewInternal(msgErrLogin, err)
	}
	return &userDTO.LoginResponse{
		User:        u,
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int64(s.tokens.TTL().Seconds()),
	}, nil
}

package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"personavix_backend/internals/constants"
	"personavix_backend/internals/features/unique_access_links/dto"
	"personavix_backend/internals/features/unique_access_links/model"
	"personavix_backend/internals/features/unique_access_links/repository"
	userModel "personavix_backend/internals/features/users/user/model"
	userRepo "personavix_backend/internals/features/users/user/repository"
	helper "personavix_backend/internals/helpers"
	authHelper "personavix_backend/internals/helpers/auth"
)

const (
	msgLinkNotFound  = "Unique access link not found"
	msgLinkExists    = "Unique access link already exists"
	msgErrListLinks  = "Error getting unique access links"
	msgErrGetLink    = "Error getting unique access link"
	msgErrCreateLink = "Error creating unique access link"
	msgErrLinkLogin  = "Error logging in with unique access link"
	maxPhoneLength   = 30
)

type UniqueAccessLinkService struct {
	db     *gorm.DB
	links  repository.UniqueAccessLinkRepository
	users  userRepo.UserRepository
	hasher authHelper.Hasher
	tokens *authHelper.TokenService
}

func NewUniqueAccessLinkService(
	db *gorm.DB,
	links repository.UniqueAccessLinkRepository,
	users userRepo.UserRepository,
	hasher authHelper.Hasher,
	tokens *authHelper.TokenService,
) *UniqueAccessLinkService {
	return &UniqueAccessLinkService{db: db, links: links, users: users, hasher: hasher, tokens: tokens}
}

func (s *UniqueAccessLinkService) List(ctx context.Context, paging *helper.Paging) ([]dto.UniqueAccessLinkWithUser, int64, error) {
	rows, total, err := s.links.List(ctx, paging)
	if err != nil {
		return nil, 0, helper.NewInternal(msgErrListLinks, err)
	}
	ids := make([]uint, 0, len(rows))
	for _, l := range rows {
		ids = append(ids, l.UserID)
	}
	users, err := s.users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, 0, helper.NewInternal(msgErrListLinks, err)
	}
	return dto.WithUsers(rows, users), total, nil
}

func (s *UniqueAccessLinkService) GetByLink(ctx context.Context, link string) (*dto.UniqueAccessLinkWithUser, error) {
	l, err := s.links.FindByLink(ctx, link)
	if err != nil {
		return nil, helper.FromDBError(err, msgLinkNotFound, msgErrGetLink, msgErrGetLink)
	}
	return s.withUser(ctx, l, msgErrGetLink)
}

// Create issues a link for the respondent identified by email or phone,
// creating a minimal disabled account when none exists yet.
func (s *UniqueAccessLinkService) Create(ctx context.Context, req *dto.CreateUniqueAccessLinkRequest) (*dto.UniqueAccessLinkWithUser, error) {
	isEmail := helper.IsEmail(req.User)
	if !isEmail && len(req.User) > maxPhoneLength {
		return nil, &helper.ValidationError{Fields: map[string][]string{"user": {"email|phone"}}}
	}

	var digest *string
	if req.Password != nil && *req.Password != "" {
		d, err := s.hasher.Hash(*req.Password)
		if err != nil {
			return nil, helper.NewInternal(msgErrCreateLink, err)
		}
		digest = &d
	}

	linkStr := req.Link
	if linkStr == "" {
		linkStr = newLinkString()
	}

	var out *dto.UniqueAccessLinkWithUser
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		users := s.users.WithTx(tx)
		links := s.links.WithTx(tx)

		exists, err := links.LinkExists(ctx, linkStr)
		if err != nil {
			return helper.NewInternal(msgErrCreateLink, err)
		}
		if exists {
			return helper.NewConflict(msgLinkExists)
		}

		u, err := findOrCreateRespondent(ctx, users, req.User, isEmail)
		if err != nil {
			return helper.FromDBError(err, msgErrCreateLink, msgErrCreateLink, msgErrCreateLink)
		}

		l := &model.UniqueAccessLinkModel{
			UserID:       u.ID,
			Link:         linkStr,
			PasswordHash: digest,
		}
		if err := links.Insert(ctx, l); err != nil {
			return helper.FromDBError(err, msgErrCreateLink, msgLinkExists, msgErrCreateLink)
		}
		out = &dto.UniqueAccessLinkWithUser{UniqueAccessLinkModel: *l, User: u}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Login verifies the link passcode and issues a link-session token for the
// respondent. A link created without passcode can never be logged into.
func (s *UniqueAccessLinkService) Login(ctx context.Context, sessionID uint, req *dto.UniqueAccessLinkLoginRequest) (*dto.UniqueAccessLinkLoginResponse, error) {
	l, err := s.links.FindByID(ctx, sessionID)
	if err != nil {
		return nil, helper.FromDBError(err, msgLinkNotFound, msgErrLinkLogin, msgErrLinkLogin)
	}
	if l.PasswordHash == nil || !s.hasher.Verify(req.Password, *l.PasswordHash) {
		return nil, helper.NewUnauthenticated(constants.MsgInvalidCredential)
	}

	session, err := s.withUser(ctx, l, msgErrLinkLogin)
	if err != nil {
		return nil, err
	}
	if session.User == nil || session.User.Identity() == "" {
		return nil, helper.NewInternal(msgErrLinkLogin, errors.New("link respondent has no identity"))
	}

	token, _, err := s.tokens.IssueLinkSession(session.User.Identity(), session.User.ID)
	if err != nil {
		return nil, helper.NewInternal(msgErrLinkLogin, err)
	}
	return &dto.UniqueAccessLinkLoginResponse{
		Session:     *session,
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int64(s.tokens.TTL().Seconds()),
	}, nil
}

// MarkAnswered validates the change set and flips the link inside tx.
func MarkAnswered(ctx context.Context, links repository.UniqueAccessLinkRepository, upd *dto.UpdateUniqueAccessLinkRequest, at time.Time) error {
	if err := upd.Validate(); err != nil {
		return err
	}
	return links.MarkAnswered(ctx, upd.SessionID, *upd.AnswerID, at)
}

func (s *UniqueAccessLinkService) withUser(ctx context.Context, l *model.UniqueAccessLinkModel, internalMsg string) (*dto.UniqueAccessLinkWithUser, error) {
	u, err := s.users.FindByID(ctx, l.UserID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.NewInternal(internalMsg, err)
	}
	return &dto.UniqueAccessLinkWithUser{UniqueAccessLinkModel: *l, User: u}, nil
}

func findOrCreateRespondent(ctx context.Context, users userRepo.UserRepository, identity string, isEmail bool) (*userModel.UserModel, error) {
	var (
		u   *userModel.UserModel
		err error
	)
	if isEmail {
		u, err = users.FindByEmail(ctx, identity)
	} else {
		u, err = users.FindByPhone(ctx, identity)
	}
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	v := identity
	u = &userModel.UserModel{
		AccessFlag: constants.AccessDisabled,
		Permission: constants.PermissionUser,
	}
	if isEmail {
		u.Email = &v
	} else {
		u.Phone = &v
	}
	if err := users.Insert(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func newLinkString() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

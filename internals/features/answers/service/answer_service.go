package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"personavix_backend/internals/features/answers/dto"
	"personavix_backend/internals/features/answers/model"
	"personavix_backend/internals/features/answers/repository"
	linkDTO "personavix_backend/internals/features/unique_access_links/dto"
	linkRepo "personavix_backend/internals/features/unique_access_links/repository"
	linkService "personavix_backend/internals/features/unique_access_links/service"
	userRepo "personavix_backend/internals/features/users/user/repository"
	helper "personavix_backend/internals/helpers"
	authHelper "personavix_backend/internals/helpers/auth"
)

const (
	msgAnswerNotFound  = "Answer not found"
	msgLinkNotFound    = "Unique access link not found"
	msgLinkOtherUser   = "Unique access link belongs to another user"
	msgLinkAnswered    = "Unique access link already answered"
	msgErrListAnswers  = "Error getting answers"
	msgErrGetAnswer    = "Error getting answer"
	msgErrCreateAnswer = "Error registering test response"
)

type AnswerService struct {
	db      *gorm.DB
	answers repository.AnswerRepository
	links   linkRepo.UniqueAccessLinkRepository
	users   userRepo.UserRepository
	now     func() time.Time
}

func NewAnswerService(
	db *gorm.DB,
	answers repository.AnswerRepository,
	links linkRepo.UniqueAccessLinkRepository,
	users userRepo.UserRepository,
) *AnswerService {
	return &AnswerService{db: db, answers: answers, links: links, users: users, now: time.Now}
}

func (s *AnswerService) List(ctx context.Context, userID *uint, paging *helper.Paging) ([]dto.AnswerWithUser, int64, error) {
	rows, total, err := s.answers.List(ctx, userID, paging)
	if err != nil {
		return nil, 0, helper.NewInternal(msgErrListAnswers, err)
	}
	ids := make([]uint, 0, len(rows))
	for _, a := range rows {
		ids = append(ids, a.UserID)
	}
	users, err := s.users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, 0, helper.NewInternal(msgErrListAnswers, err)
	}
	return dto.WithUsers(rows, users), total, nil
}

func (s *AnswerService) Get(ctx context.Context, ac authHelper.AuthContext, id uint) (*dto.AnswerWithUser, error) {
	a, err := s.answers.FindByID(ctx, id)
	if err != nil {
		return nil, helper.FromDBError(err, msgAnswerNotFound, msgErrGetAnswer, msgErrGetAnswer)
	}
	if !ac.CanActOn(a.UserID) {
		return nil, authHelper.ErrPermissionDenied
	}

	out := &dto.AnswerWithUser{AnswerModel: *a}
	u, err := s.users.FindByID(ctx, a.UserID)
	switch {
	case err == nil:
		out.User = u
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, helper.NewInternal(msgErrGetAnswer, err)
	}
	return out, nil
}

// Create stores a test response for userID. With id_sessao the matching link
// is resolved in the same transaction: it must exist, belong to userID and
// still be open.
func (s *AnswerService) Create(ctx context.Context, ac authHelper.AuthContext, userID uint, req *dto.CreateAnswerRequest) (*model.AnswerModel, error) {
	if !ac.CanActOn(userID) {
		return nil, authHelper.ErrPermissionDenied
	}

	a := req.ToModel(userID)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		answers := s.answers.WithTx(tx)
		links := s.links.WithTx(tx)

		if _, err := s.users.WithTx(tx).FindByID(ctx, userID); err != nil {
			// user tidak ada diperlakukan seperti pelanggaran FK (400)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.NewConflict(msgErrCreateAnswer)
			}
			return helper.NewInternal(msgErrCreateAnswer, err)
		}

		if req.SessionID != nil {
			l, err := links.FindByID(ctx, *req.SessionID)
			if err != nil {
				return helper.FromDBError(err, msgLinkNotFound, msgErrCreateAnswer, msgErrCreateAnswer)
			}
			if l.UserID != userID {
				return helper.NewConflict(msgLinkOtherUser)
			}
			if l.IsAnswered() {
				return helper.NewConflict(msgLinkAnswered)
			}
		}

		if err := answers.Insert(ctx, a); err != nil {
			return helper.FromDBError(err, msgErrCreateAnswer, msgErrCreateAnswer, msgErrCreateAnswer)
		}

		if req.SessionID != nil {
			upd := &linkDTO.UpdateUniqueAccessLinkRequest{SessionID: *req.SessionID, Answered: 1, AnswerID: &a.ID}
			if err := linkService.MarkAnswered(ctx, links, upd, s.now()); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return helper.NewConflict(msgLinkAnswered)
				}
				return helper.FromDBError(err, msgLinkNotFound, msgErrCreateAnswer, msgErrCreateAnswer)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return a, nil
}

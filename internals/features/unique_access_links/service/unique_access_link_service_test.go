package service

import (
	"context"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"personavix_backend/internals/constants"
	"personavix_backend/internals/features/unique_access_links/dto"
	"personavix_backend/internals/features/unique_access_links/repository"
	userRepo "personavix_backend/internals/features/users/user/repository"
	helper "personavix_backend/internals/helpers"
	authHelper "personavix_backend/internals/helpers/auth"
	"personavix_backend/internals/testutil"
)

func newTestService(t *testing.T) *UniqueAccessLinkService {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return NewUniqueAccessLinkService(
		db,
		repository.NewUniqueAccessLinkRepository(db),
		userRepo.NewUserRepository(db),
		&authHelper.BcryptHasher{Cost: bcrypt.MinCost},
		authHelper.NewTokenService("test-secret", time.Hour),
	)
}

func passcode(v string) *string { return &v }

func TestCreateAutoCreatesRespondentByEmail(t *testing.T) {
	s := newTestService(t)
	out, err := s.Create(context.Background(), &dto.CreateUniqueAccessLinkRequest{
		Link:     "abc123",
		User:     "maria@example.com",
		Password: passcode("123456"),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	u := out.User
	if u == nil || u.Email == nil || *u.Email != "maria@example.com" {
		t.Fatalf("respondent not created: %+v", u)
	}
	if u.Permission != constants.PermissionUser || u.AccessFlag != constants.AccessDisabled {
		t.Fatalf("respondent perm/flag = %d/%d, want 1/0", u.Permission, u.AccessFlag)
	}
	if out.Answered != 0 || out.AnswerID != nil {
		t.Fatalf("new link must be open: %+v", out.UniqueAccessLinkModel)
	}
	if out.PasswordHash == nil || *out.PasswordHash == "123456" {
		t.Fatal("passcode stored in clear")
	}
}

func TestCreateDetectsPhone(t *testing.T) {
	s := newTestService(t)
	out, err := s.Create(context.Background(), &dto.CreateUniqueAccessLinkRequest{User: "+55 11 98888-7777"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if out.User.Phone == nil || *out.User.Phone != "+55 11 98888-7777" || out.User.Email != nil {
		t.Fatalf("phone respondent = %+v", out.User)
	}
	if out.Link == "" {
		t.Fatal("link should be generated when omitted")
	}
}

func TestCreateReusesExistingRespondent(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()
	first, err := s.Create(ctx, &dto.CreateUniqueAccessLinkRequest{Link: "one", User: "joao@example.com"})
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	second, err := s.Create(ctx, &dto.CreateUniqueAccessLinkRequest{Link: "two", User: "joao@example.com"})
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	if first.UserID != second.UserID {
		t.Fatalf("respondent duplicated: %d vs %d", first.UserID, second.UserID)
	}
}

func TestCreateRejectsLongNonEmailIdentity(t *testing.T) {
	s := newTestService(t)
	_, err := s.Create(context.Background(), &dto.CreateUniqueAccessLinkRequest{User: "this-is-not-an-email-and-way-too-long"})
	if _, ok := err.(*helper.ValidationError); !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateDuplicateLink(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()
	if _, err := s.Create(ctx, &dto.CreateUniqueAccessLinkRequest{Link: "same", User: "a@example.com"}); err != nil {
		t.Fatalf("first: %v", err)
	}
	_, err := s.Create(ctx, &dto.CreateUniqueAccessLinkRequest{Link: "same", User: "b@example.com"})
	ae, ok := helper.AsAppError(err)
	if !ok || ae.Kind != helper.KindConflict || ae.Message != "Unique access link already exists" {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestGetByLink(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()
	if _, err := s.Create(ctx, &dto.CreateUniqueAccessLinkRequest{Link: "xyz", User: "a@example.com"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := s.GetByLink(ctx, "xyz")
	if err != nil || got.User == nil || *got.User.Email != "a@example.com" {
		t.Fatalf("get: %v %+v", err, got)
	}
	if _, err := s.GetByLink(ctx, "missing"); !helper.IsKind(err, helper.KindNotFound) {
		t.Fatalf("missing link: expected not found, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()
	link, err := s.Create(ctx, &dto.CreateUniqueAccessLinkRequest{Link: "l1", User: "maria@example.com", Password: passcode("123456")})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	resp, err := s.Login(ctx, link.ID, &dto.UniqueAccessLinkLoginRequest{Password: "123456"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	claims, err := s.tokens.Verify(resp.AccessToken)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.Email != "maria@example.com" || !claims.IsUniqueAccessLink || claims.UserID != link.UserID {
		t.Fatalf("claims = %+v", claims)
	}
	if resp.TokenType != "bearer" || resp.ExpiresIn != 3600 {
		t.Fatalf("response = %+v", resp)
	}

	_, err = s.Login(ctx, link.ID, &dto.UniqueAccessLinkLoginRequest{Password: "wrong-pass"})
	if ae, ok := helper.AsAppError(err); !ok || ae.Status() != 401 || ae.Message != constants.MsgInvalidCredential {
		t.Fatalf("wrong passcode: %v", err)
	}
	if _, err := s.Login(ctx, 999, &dto.UniqueAccessLinkLoginRequest{Password: "123456"}); !helper.IsKind(err, helper.KindNotFound) {
		t.Fatalf("unknown session: %v", err)
	}
}

func TestLoginWithoutPasscodeIsRejected(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()
	link, err := s.Create(ctx, &dto.CreateUniqueAccessLinkRequest{Link: "open", User: "a@example.com"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := s.Login(ctx, link.ID, &dto.UniqueAccessLinkLoginRequest{Password: "anything"}); !helper.IsKind(err, helper.KindUnauthenticated) {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestMarkAnsweredOnlyOnce(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()
	link, err := s.Create(ctx, &dto.CreateUniqueAccessLinkRequest{Link: "once", User: "a@example.com"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	answerID := uint(7)
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	upd := &dto.UpdateUniqueAccessLinkRequest{SessionID: link.ID, Answered: 1, AnswerID: &answerID}
	if err := MarkAnswered(ctx, s.links, upd, at); err != nil {
		t.Fatalf("mark: %v", err)
	}

	got, err := s.links.FindByID(ctx, link.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if !got.IsAnswered() || got.AnswerID == nil || *got.AnswerID != answerID || got.AnsweredAt == nil {
		t.Fatalf("link not flipped: %+v", got)
	}

	if err := MarkAnswered(ctx, s.links, upd, at); err == nil {
		t.Fatal("second flip must fail")
	}

	bad := &dto.UpdateUniqueAccessLinkRequest{SessionID: link.ID, Answered: 1}
	if _, ok := MarkAnswered(ctx, s.links, bad, at).(*helper.ValidationError); !ok {
		t.Fatal("respondido=1 without id_resposta must be rejected")
	}
}

package auth

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/expense-segmentation/backend/internal/application/adapter"
	"github.com/expense-segmentation/backend/internal/domain/entity"
	domainerror "github.com/expense-segmentation/backend/internal/domain/error"
)

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[string]*entity.User)}
	for _, u := range users {
		repo.users[u.Email] = u
	}
	return repo
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.users[user.Email] = user
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	user, ok := r.users[email]
	if !ok {
		return nil, domainerror.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := r.users[email]
	return ok, nil
}

// fakePasswordService hashes by prefixing and rejects short passwords.
type fakePasswordService struct{}

func (s *fakePasswordService) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (s *fakePasswordService) VerifyPassword(hashedPassword, password string) error {
	if hashedPassword != "hashed:"+password {
		return domainerror.ErrInvalidCredentials
	}
	return nil
}

func (s *fakePasswordService) ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return domainerror.ErrWeakPassword
	}
	return nil
}

type fakeTokenService struct{}

func (s *fakeTokenService) GenerateAccessToken(_ context.Context, user *entity.User) (string, error) {
	return "token-for-" + user.ID.String(), nil
}

func (s *fakeTokenService) ValidateAccessToken(_ context.Context, _ string) (*adapter.TokenClaims, error) {
	return nil, domainerror.ErrInvalidToken
}

func assertAuthErrorCode(t *testing.T, err error, want domainerror.AuthErrorCode) {
	t.Helper()
	var authErr *domainerror.AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected AuthError, got %v", err)
	}
	if authErr.Code != want {
		t.Errorf("expected error code %s, got %s", want, authErr.Code)
	}
}

func TestRegisterUser_Success(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewRegisterUserUseCase(repo, &fakePasswordService{})

	output, err := uc.Execute(context.Background(), RegisterUserInput{
		Name:     "Ana Silva",
		Email:    "Ana@Example.com",
		Password: "correct horse battery",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output.Role != entity.RoleEmployee {
		t.Errorf("expected employee role, got %s", output.Role)
	}
	if output.Email != "ana@example.com" {
		t.Errorf("expected normalized email, got %s", output.Email)
	}

	stored, ok := repo.users["ana@example.com"]
	if !ok {
		t.Fatal("user was not persisted")
	}
	if !strings.HasPrefix(stored.PasswordHash, "hashed:") {
		t.Error("password was not hashed before storage")
	}
}

func TestRegisterUser_DuplicateEmail(t *testing.T) {
	existing := entity.NewUser("Ana", "ana@example.com", "hashed:x")
	uc := NewRegisterUserUseCase(newFakeUserRepo(existing), &fakePasswordService{})

	_, err := uc.Execute(context.Background(), RegisterUserInput{
		Name:     "Other Ana",
		Email:    "ana@example.com",
		Password: "long enough password",
	})
	assertAuthErrorCode(t, err, domainerror.ErrCodeEmailExists)
}

func TestRegisterUser_WeakPassword(t *testing.T) {
	uc := NewRegisterUserUseCase(newFakeUserRepo(), &fakePasswordService{})

	_, err := uc.Execute(context.Background(), RegisterUserInput{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "short",
	})
	assertAuthErrorCode(t, err, domainerror.ErrCodeWeakPassword)
}

func TestRegisterUser_MissingFields(t *testing.T) {
	uc := NewRegisterUserUseCase(newFakeUserRepo(), &fakePasswordService{})

	_, err := uc.Execute(context.Background(), RegisterUserInput{
		Name:  "Ana",
		Email: "",
	})
	assertAuthErrorCode(t, err, domainerror.ErrCodeMissingAuthFields)
}

func TestLoginUser_Success(t *testing.T) {
	user := entity.NewUser("Ana", "ana@example.com", "hashed:secret password")
	uc := NewLoginUserUseCase(newFakeUserRepo(user), &fakePasswordService{}, &fakeTokenService{})

	output, err := uc.Execute(context.Background(), LoginUserInput{
		Email:    "ANA@example.com",
		Password: "secret password",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.AccessToken == "" {
		t.Error("expected a non-empty access token")
	}
	if output.UserID != user.ID {
		t.Error("login output does not identify the authenticated user")
	}
}

func TestLoginUser_WrongPassword(t *testing.T) {
	user := entity.NewUser("Ana", "ana@example.com", "hashed:secret password")
	uc := NewLoginUserUseCase(newFakeUserRepo(user), &fakePasswordService{}, &fakeTokenService{})

	_, err := uc.Execute(context.Background(), LoginUserInput{
		Email:    "ana@example.com",
		Password: "wrong",
	})
	assertAuthErrorCode(t, err, domainerror.ErrCodeInvalidCredentials)
}

func TestLoginUser_UnknownEmailSameErrorAsWrongPassword(t *testing.T) {
	uc := NewLoginUserUseCase(newFakeUserRepo(), &fakePasswordService{}, &fakeTokenService{})

	_, err := uc.Execute(context.Background(), LoginUserInput{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	assertAuthErrorCode(t, err, domainerror.ErrCodeInvalidCredentials)
}

func TestLoginUser_InactiveUserRejected(t *testing.T) {
	user := entity.NewUser("Ana", "ana@example.com", "hashed:secret password")
	user.Active = false
	uc := NewLoginUserUseCase(newFakeUserRepo(user), &fakePasswordService{}, &fakeTokenService{})

	_, err := uc.Execute(context.Background(), LoginUserInput{
		Email:    "ana@example.com",
		Password: "secret password",
	})
	assertAuthErrorCode(t, err, domainerror.ErrCodeInvalidCredentials)
}

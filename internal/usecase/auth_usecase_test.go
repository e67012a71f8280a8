package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"orcafacil/internal/domain/entities"
	mock_interfaces "orcafacil/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestAuthUseCase_SignUp(t *testing.T) {
	t.Run("invalid input", func(t *testing.T) {
		uc := NewAuthUseCase(nil, "secret", time.Hour)

		if _, _, err := uc.SignUp(context.Background(), "A", "not-an-email", "longenough"); !errors.Is(err, ErrInvalidSignUp) {
			t.Fatalf("expected ErrInvalidSignUp for bad email, got %v", err)
		}
		if _, _, err := uc.SignUp(context.Background(), "A", "a@b.com", "short"); !errors.Is(err, ErrInvalidSignUp) {
			t.Fatalf("expected ErrInvalidSignUp for short password, got %v", err)
		}
	})

	t.Run("email taken", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, "secret", time.Hour)

		users.EXPECT().GetByEmail(gomock.Any(), "a@b.com").Return(entities.User{ID: "u-1"}, nil)

		_, _, err := uc.SignUp(context.Background(), "A", "a@b.com", "password123")
		if !errors.Is(err, ErrEmailTaken) {
			t.Fatalf("expected ErrEmailTaken, got %v", err)
		}
	})

	t.Run("success hashes password and issues token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, "secret", time.Hour)

		users.EXPECT().GetByEmail(gomock.Any(), "a@b.com").Return(entities.User{}, nil)
		users.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u entities.User) (entities.User, error) {
				if u.ID == "" || u.Email != "a@b.com" {
					t.Fatalf("unexpected user: %+v", u)
				}
				if u.PasswordHash == "" || u.PasswordHash == "password123" {
					t.Fatalf("password must be hashed")
				}
				if !verifyPassword("password123", u.PasswordHash) {
					t.Fatalf("stored hash must verify")
				}
				return u, nil
			},
		)

		user, token, err := uc.SignUp(context.Background(), "A", " A@B.com ", "password123")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if token == "" {
			t.Fatalf("expected a session token")
		}

		users.EXPECT().GetByID(gomock.Any(), user.ID).Return(user, nil)
		got, err := uc.Session(context.Background(), token)
		if err != nil {
			t.Fatalf("token from sign-up must resolve: %v", err)
		}
		if got.ID != user.ID {
			t.Fatalf("unexpected session user: %+v", got)
		}
	})
}

func TestAuthUseCase_SignIn(t *testing.T) {
	t.Run("unknown email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, "secret", time.Hour)

		users.EXPECT().GetByEmail(gomock.Any(), "a@b.com").Return(entities.User{}, nil)

		_, _, err := uc.SignIn(context.Background(), "a@b.com", "password123")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, "secret", time.Hour)

		hash, err := hashPassword("correct-horse")
		if err != nil {
			t.Fatalf("hash: %v", err)
		}
		users.EXPECT().GetByEmail(gomock.Any(), "a@b.com").Return(entities.User{ID: "u-1", PasswordHash: hash}, nil)

		_, _, err = uc.SignIn(context.Background(), "a@b.com", "wrong")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, "secret", time.Hour)

		hash, err := hashPassword("correct-horse")
		if err != nil {
			t.Fatalf("hash: %v", err)
		}
		users.EXPECT().GetByEmail(gomock.Any(), "a@b.com").Return(entities.User{ID: "u-1", PasswordHash: hash}, nil)

		user, token, err := uc.SignIn(context.Background(), "a@b.com", "correct-horse")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.ID != "u-1" || token == "" {
			t.Fatalf("unexpected result: %+v %q", user, token)
		}
	})
}

func TestAuthUseCase_Session(t *testing.T) {
	t.Run("garbage token", func(t *testing.T) {
		uc := NewAuthUseCase(nil, "secret", time.Hour)
		if _, err := uc.Session(context.Background(), "nope"); !errors.Is(err, ErrInvalidSession) {
			t.Fatalf("expected ErrInvalidSession, got %v", err)
		}
	})

	t.Run("tampered signature", func(t *testing.T) {
		ucA := NewAuthUseCase(nil, "secret-a", time.Hour)
		ucB := NewAuthUseCase(nil, "secret-b", time.Hour)

		token := ucA.issueToken("u-1")
		if _, err := ucB.Session(context.Background(), token); !errors.Is(err, ErrInvalidSession) {
			t.Fatalf("expected ErrInvalidSession for foreign signature, got %v", err)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		uc := NewAuthUseCase(nil, "secret", -time.Minute)
		token := uc.issueToken("u-1")
		if _, err := uc.Session(context.Background(), token); !errors.Is(err, ErrInvalidSession) {
			t.Fatalf("expected ErrInvalidSession for expired token, got %v", err)
		}
	})

	t.Run("user gone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, "secret", time.Hour)

		token := uc.issueToken("u-1")
		users.EXPECT().GetByID(gomock.Any(), "u-1").Return(entities.User{}, nil)

		if _, err := uc.Session(context.Background(), token); !errors.Is(err, ErrInvalidSession) {
			t.Fatalf("expected ErrInvalidSession when user is gone, got %v", err)
		}
	})
}

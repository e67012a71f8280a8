package usecase

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strconv"
	"strings"
	"time"

	"orcafacil/internal/domain/entities"
	"orcafacil/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidSignUp      = errors.New("invalid sign-up data")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidSession     = errors.New("invalid or expired session")
)

// IAuthUseCase is the single authentication capability set: sign-up, sign-in
// and session resolution. Tokens are HMAC-SHA256 signed values of the form
// "userID.expiresUnix.signature", carried as a bearer token.
type IAuthUseCase interface {
	SignUp(ctx context.Context, name, email, password string) (entities.User, string, error)
	SignIn(ctx context.Context, email, password string) (entities.User, string, error)
	Session(ctx context.Context, token string) (entities.User, error)
}

type AuthUseCase struct {
	users    interfaces.IUserRepository
	secret   []byte
	tokenTTL time.Duration
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(users interfaces.IUserRepository, secret string, tokenTTL time.Duration) *AuthUseCase {
	return &AuthUseCase{users: users, secret: []byte(secret), tokenTTL: tokenTTL}
}

func (u *AuthUseCase) SignUp(ctx context.Context, name, email, password string) (entities.User, string, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") || len(password) < 8 {
		return entities.User{}, "", ErrInvalidSignUp
	}

	if existing, err := u.users.GetByEmail(ctx, email); err != nil {
		return entities.User{}, "", err
	} else if existing.ID != "" {
		return entities.User{}, "", ErrEmailTaken
	}

	hash, err := hashPassword(password)
	if err != nil {
		return entities.User{}, "", err
	}

	user := entities.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	created, err := u.users.Create(ctx, user)
	if err != nil {
		return entities.User{}, "", err
	}

	return created, u.issueToken(created.ID), nil
}

func (u *AuthUseCase) SignIn(ctx context.Context, email, password string) (entities.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return entities.User{}, "", ErrInvalidCredentials
	}

	user, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return entities.User{}, "", err
	}
	if user.ID == "" || !verifyPassword(password, user.PasswordHash) {
		return entities.User{}, "", ErrInvalidCredentials
	}

	return user, u.issueToken(user.ID), nil
}

func (u *AuthUseCase) Session(ctx context.Context, token string) (entities.User, error) {
	userID, ok := u.parseToken(token)
	if !ok {
		return entities.User{}, ErrInvalidSession
	}

	user, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return entities.User{}, err
	}
	if user.ID == "" {
		return entities.User{}, ErrInvalidSession
	}
	return user, nil
}

func (u *AuthUseCase) issueToken(userID string) string {
	expires := strconv.FormatInt(time.Now().Add(u.tokenTTL).Unix(), 10)
	payload := userID + "." + expires
	return payload + "." + u.sign(payload)
}

func (u *AuthUseCase) parseToken(token string) (string, bool) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return "", false
	}
	payload := parts[0] + "." + parts[1]
	if !hmac.Equal([]byte(parts[2]), []byte(u.sign(payload))) {
		return "", false
	}
	expires, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil || time.Now().Unix() > expires {
		return "", false
	}
	return parts[0], true
}

func (u *AuthUseCase) sign(payload string) string {
	mac := hmac.New(sha256.New, u.secret)
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

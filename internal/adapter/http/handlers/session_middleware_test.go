package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"orcafacil/internal/adapter/http/handlers/mocks"
	"orcafacil/internal/domain/entities"
	"orcafacil/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestSessionMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	protected := func(auth usecase.IAuthUseCase) *gin.Engine {
		r := gin.New()
		r.GET("/guarded", SessionMiddleware(auth), func(c *gin.Context) {
			user, _ := CurrentUser(c)
			c.JSON(http.StatusOK, gin.H{"user": user.ID})
		})
		return r
	}

	t.Run("missing header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		auth := mocks.NewMockIAuthUseCase(ctrl)
		r := protected(auth)

		req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("malformed header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		auth := mocks.NewMockIAuthUseCase(ctrl)
		r := protected(auth)

		req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		auth := mocks.NewMockIAuthUseCase(ctrl)
		r := protected(auth)

		auth.EXPECT().Session(gomock.Any(), "stale").Return(entities.User{}, usecase.ErrInvalidSession)

		req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
		req.Header.Set("Authorization", "Bearer stale")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("valid token reaches handler", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		auth := mocks.NewMockIAuthUseCase(ctrl)
		r := protected(auth)

		auth.EXPECT().Session(gomock.Any(), "tok-1").Return(entities.User{ID: "u-1"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
		req.Header.Set("Authorization", "Bearer tok-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != `{"user":"u-1"}` {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestBearerToken(t *testing.T) {
	if got := bearerToken(""); got != "" {
		t.Fatalf("expected empty token, got %q", got)
	}
	if got := bearerToken("Bearer"); got != "" {
		t.Fatalf("expected empty token, got %q", got)
	}
	if got := bearerToken("Bearer  abc "); got != "abc" {
		t.Fatalf("expected trimmed token, got %q", got)
	}
}

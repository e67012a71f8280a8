package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"orcafacil/internal/adapter/http/handlers/mocks"
	"orcafacil/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestDashboardHandler_Summary(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDashboardUseCase(ctrl)
		h := NewDashboardHandler(uc)

		r := gin.New()
		r.GET("/v1/dashboard/summary", h.Summary)

		uc.EXPECT().Summary(gomock.Any()).Return(usecase.DashboardSummary{
			TotalCount:     4,
			TotalValue:     125050,
			ThisMonthCount: 2,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/summary", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["totalCount"] != 4.0 || body["thisMonthCount"] != 2.0 {
			t.Fatalf("unexpected counts: %s", w.Body.String())
		}
		if body["totalValue"] != 1250.5 {
			t.Fatalf("expected totalValue 1250.5, got %v", body["totalValue"])
		}
	})

	t.Run("repository failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDashboardUseCase(ctrl)
		h := NewDashboardHandler(uc)

		r := gin.New()
		r.GET("/v1/dashboard/summary", h.Summary)

		uc.EXPECT().Summary(gomock.Any()).Return(usecase.DashboardSummary{}, errors.New("scan failed"))

		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/summary", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

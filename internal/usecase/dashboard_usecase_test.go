package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"orcafacil/internal/domain/entities"
	"orcafacil/internal/money"
	mock_interfaces "orcafacil/internal/usecase/interfaces/mocks"
	"orcafacil/internal/utils"

	"go.uber.org/mock/gomock"
)

func TestDashboardUseCase_Summary(t *testing.T) {
	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewDashboardUseCase(repo)

		repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("db"))

		_, err := uc.Summary(context.Background())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("empty store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewDashboardUseCase(repo)

		repo.EXPECT().List(gomock.Any()).Return(nil, nil)

		s, err := uc.Summary(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.TotalCount != 0 || s.TotalValue != 0 || s.ThisMonthCount != 0 {
			t.Fatalf("expected zero summary, got %+v", s)
		}
	})

	t.Run("derives count, value and month in UTC", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewDashboardUseCase(repo)
		uc.clock = &utils.MockClock{FixedNow: time.Date(2026, time.August, 29, 10, 0, 0, 0, time.UTC)}

		repo.EXPECT().List(gomock.Any()).Return([]entities.Budget{
			{ID: "a", Total: 2000, CreatedAt: "2026-08-01T12:00:00Z"},
			{ID: "b", Total: 500, CreatedAt: "2026-07-31T23:59:00Z"},
			// local-offset timestamp that lands in August once normalized to UTC
			{ID: "c", Total: 300, CreatedAt: "2026-07-31T22:30:00-03:00"},
			{ID: "d", Total: 100, CreatedAt: "not-a-date"},
		}, nil)

		s, err := uc.Summary(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.TotalCount != 4 {
			t.Fatalf("expected 4 budgets, got %d", s.TotalCount)
		}
		if s.TotalValue != money.Cents(2900) {
			t.Fatalf("expected total 2900, got %d", s.TotalValue)
		}
		if s.ThisMonthCount != 2 {
			t.Fatalf("expected 2 budgets this month, got %d", s.ThisMonthCount)
		}
	})
}

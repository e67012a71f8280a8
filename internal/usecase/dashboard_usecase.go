package usecase

import (
	"context"
	"time"

	"orcafacil/internal/money"
	"orcafacil/internal/usecase/interfaces"
	"orcafacil/internal/utils"

	log "github.com/sirupsen/logrus"
)

// DashboardSummary holds the derived statistics shown on the dashboard.
type DashboardSummary struct {
	TotalCount     int
	TotalValue     money.Cents
	ThisMonthCount int
}

type IDashboardUseCase interface {
	Summary(ctx context.Context) (DashboardSummary, error)
}

// DashboardUseCase derives summary stats over all stored budgets. Stats are
// recomputed on every call; "this month" is evaluated in UTC so the figure
// does not depend on the viewer's timezone.
type DashboardUseCase struct {
	repo  interfaces.IBudgetRepository
	clock utils.Clock
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(repo interfaces.IBudgetRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo, clock: utils.SystemClock{}}
}

func (u *DashboardUseCase) Summary(ctx context.Context) (DashboardSummary, error) {
	budgets, err := u.repo.List(ctx)
	if err != nil {
		return DashboardSummary{}, err
	}

	now := u.clock.Now().UTC()
	summary := DashboardSummary{TotalCount: len(budgets)}
	for _, b := range budgets {
		summary.TotalValue += b.Total

		createdAt, err := time.Parse(time.RFC3339, b.CreatedAt)
		if err != nil {
			log.Warnf("budget %s has unparseable createdAt %q, excluded from monthly stats", b.ID, b.CreatedAt)
			continue
		}
		createdAt = createdAt.UTC()
		if createdAt.Year() == now.Year() && createdAt.Month() == now.Month() {
			summary.ThisMonthCount++
		}
	}
	return summary, nil
}

package services

import (
	portsrepo "github.com/hpvvs/salesops_backend/internal/core/ports/repositories"
	portssvc "github.com/hpvvs/salesops_backend/internal/core/ports/services"
	"github.com/hpvvs/salesops_backend/internal/platform/clock"
	"github.com/hpvvs/salesops_backend/internal/platform/config"
	"github.com/hpvvs/salesops_backend/internal/platform/metrics"
	"github.com/hpvvs/salesops_backend/internal/utils/timeutil"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, m *metrics.LedgerMetrics) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Payments = NewPaymentsService(
		repos.LedgerRepo,
		WithClock(clock.SystemClock{}),
		WithTimeUtil(timeutil.FromLocation(cfg.Location)),
		WithFeeTolerance(cfg.PaymentsFeeTolerance),
		WithSubmittedBy(cfg.PaymentsSubmittedBy),
		WithMetrics(m),
	)

	return container
}

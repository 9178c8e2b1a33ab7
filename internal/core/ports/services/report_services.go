package services

import (
	"context"
	"time"

	"github.com/finserv-tools/bank_management_app/internal/core/domain"
)

// ReportSvcFacade defines statement reporting operations.
type ReportSvcFacade interface {
	// GenerateStatement builds the account statement for a client over the
	// inclusive [startDate, endDate] window.
	GenerateStatement(ctx context.Context, clientID string, startDate, endDate time.Time) (*domain.Statement, error)
}

package service

import (
	"fmt"
	"strings"

	"github.com/MarkatV2/ProyectoAvanzada-sub001/internal/domain"
	"github.com/MarkatV2/ProyectoAvanzada-sub001/pkg/e"

	"github.com/google/uuid"
)

// ValidateTransition decides whether actorID may move report to newStatus.
// It is a pure function: no I/O, no mutation, the same inputs always produce
// the same decision.
//
// Role rules are checked before the state edge, so a non-admin asking for
// REJECTED on an already-resolved report gets the authorization error, not
// the transition one. DELETED is never a valid target here; soft delete has
// its own path.
func ValidateTransition(report *domain.Report, newStatus domain.ReportStatus, rejectionMessage string, actorID uuid.UUID, isAdmin bool) error {
	switch newStatus {
	case domain.ReportVerified, domain.ReportRejected:
		if !isAdmin {
			return fmt.Errorf("only administrators may verify or reject reports: %w", e.ErrUnauthorized)
		}
		if newStatus == domain.ReportRejected && strings.TrimSpace(rejectionMessage) == "" {
			return fmt.Errorf("a justification is required to reject a report: %w", e.ErrValidation)
		}
		if report.Status != domain.ReportPending {
			return invalidTransition(report.Status, newStatus)
		}
	case domain.ReportResolved:
		if actorID != report.OwnerID && !isAdmin {
			return fmt.Errorf("only the report owner or an administrator may resolve it: %w", e.ErrUnauthorized)
		}
		if report.Status != domain.ReportVerified {
			return invalidTransition(report.Status, newStatus)
		}
	default:
		return fmt.Errorf("unsupported target status %q: %w", newStatus, e.ErrValidation)
	}
	return nil
}

// ValidateSoftDelete gates the dedicated delete path: owner or admin, and
// DELETED is terminal.
func ValidateSoftDelete(report *domain.Report, actorID uuid.UUID, isAdmin bool) error {
	if actorID != report.OwnerID && !isAdmin {
		return fmt.Errorf("only the report owner or an administrator may delete it: %w", e.ErrUnauthorized)
	}
	if report.Status == domain.ReportDeleted {
		return fmt.Errorf("report is already deleted: %w", e.ErrNotFound)
	}
	return nil
}

func invalidTransition(from, to domain.ReportStatus) error {
	return fmt.Errorf("transition %s -> %s is not allowed: %w", from, to, e.ErrValidation)
}

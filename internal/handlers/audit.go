package handlers

import (
	"context"
	"net/http"

	"clinicrecords/internal/logger"
	"clinicrecords/internal/models"
	"clinicrecords/internal/templates"
)

// AuditLister defines the interface that the audit service must implement.
type AuditLister interface {
	List(ctx context.Context) ([]models.AuditRecord, error)
}

// AuditPage carries the audit records, newest first, into the template.
type AuditPage struct {
	Records []models.AuditRecord
}

// NewAuditListHandler renders the full audit log. Admin-only; the role
// check happens in the middleware chain before this handler runs.
func NewAuditListHandler(svc AuditLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list audit records", "err", err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		templates.Render(w, http.StatusOK, "audit.html", AuditPage{Records: records})
	}
}

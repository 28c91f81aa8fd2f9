package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"clinicrecords/internal/logger"
	"clinicrecords/internal/models"
)

type AuditWriteRepository struct {
	db *sqlx.DB
}

func NewAuditWriteRepository(db *sqlx.DB) *AuditWriteRepository {
	return &AuditWriteRepository{db: db}
}

// Save appends one audit record. The table is append-only; there is no
// update or delete path.
func (r *AuditWriteRepository) Save(ctx context.Context, rec models.AuditRecord) error {
	const query = `
		INSERT INTO audit_log (user_id, action, table_name, subject_id, detail, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(ctx, query,
		rec.UserID, rec.Action, rec.TableName, rec.SubjectID, rec.Detail, rec.CreatedAt)

	logger.Log.Infow("audit insert",
		"query", strings.Join(strings.Fields(query), " "),
		"action", rec.Action,
		"table", rec.TableName,
		"subject_id", rec.SubjectID,
		"error", err,
	)

	return err
}

type AuditReadRepository struct {
	db *sqlx.DB
}

func NewAuditReadRepository(db *sqlx.DB) *AuditReadRepository {
	return &AuditReadRepository{db: db}
}

// List returns all audit records, newest first.
func (r *AuditReadRepository) List(ctx context.Context) ([]models.AuditRecord, error) {
	const query = `
		SELECT record_id, user_id, action, table_name, subject_id, detail, created_at
		FROM audit_log
		ORDER BY record_id DESC
	`

	var records []models.AuditRecord
	err := r.db.SelectContext(ctx, &records, query)

	logger.Log.Infow("audit select",
		"query", strings.Join(strings.Fields(query), " "),
		"rows", len(records),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return records, nil
}

package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"clinicrecords/internal/logger"
	"clinicrecords/internal/models"
)

// AuditWriter appends audit records to storage.
type AuditWriter interface {
	Save(ctx context.Context, rec models.AuditRecord) error
}

// AuditReader lists stored audit records, newest first.
type AuditReader interface {
	List(ctx context.Context) ([]models.AuditRecord, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// AuditService is the audit recorder. Writes are best-effort: a failed
// append is logged and swallowed, never surfaced to the request that
// caused it. Records are optionally mirrored to Kafka for downstream
// consumers.
type AuditService struct {
	writer      AuditWriter
	reader      AuditReader
	kafkaWriter KafkaWriter
}

// NewAuditService creates a new AuditService. kafkaWriter may be nil, in
// which case event publishing is disabled.
func NewAuditService(writer AuditWriter, reader AuditReader, kafkaWriter KafkaWriter) *AuditService {
	return &AuditService{
		writer:      writer,
		reader:      reader,
		kafkaWriter: kafkaWriter,
	}
}

// Record appends one audit record. Called after the primary mutation has
// completed; its failure never fails the request.
func (s *AuditService) Record(ctx context.Context, actor *uuid.UUID, action models.Action, tableName string, subjectID int64, detail string) {
	rec := models.AuditRecord{
		UserID:    actor,
		Action:    action,
		TableName: tableName,
		SubjectID: subjectID,
		Detail:    detail,
		CreatedAt: time.Now(),
	}

	if err := s.writer.Save(ctx, rec); err != nil {
		logger.Log.Errorw("audit write failed",
			"action", action, "table", tableName, "subject_id", subjectID, "error", err)
	}

	s.publish(ctx, rec)
}

// List returns all audit records, newest first.
func (s *AuditService) List(ctx context.Context) ([]models.AuditRecord, error) {
	return s.reader.List(ctx)
}

// publish mirrors an audit record to Kafka, best-effort.
func (s *AuditService) publish(ctx context.Context, rec models.AuditRecord) {
	if s.kafkaWriter == nil {
		return
	}

	data, err := json.Marshal(rec)
	if err != nil {
		logger.Log.Errorw("failed to marshal audit record for Kafka", "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(rec.TableName),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish audit record to Kafka",
			"action", rec.Action, "table", rec.TableName, "error", err)
	}
}

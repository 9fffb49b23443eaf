package gamewatch

import (
	"context"
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

// Audit event types that do not come from a session.EventKind.
const (
	AuditLoginFailed    = "login_failed"
	AuditRegistered     = "registered"
	AuditRegisterFailed = "register_failed"
)

// AuditEvent is one entry of the session audit trail. It never carries a token or a
// response body.
type AuditEvent struct {
	Timestamp time.Time
	EventType string
	Email     string
	Version   uint64
	Path      string
	Status    int
	RequestID string
	Success   bool
	Error     string
}

// AuditSink receives the trail. Emit is called from a single goroutine.
type AuditSink interface {
	Emit(ctx context.Context, event AuditEvent)
}

// AuditSinkFunc adapts a function to AuditSink.
type AuditSinkFunc func(ctx context.Context, event AuditEvent)

func (f AuditSinkFunc) Emit(ctx context.Context, event AuditEvent) { f(ctx, event) }

// LogSink writes each event as one logrus entry: Info for successes, Warn otherwise.
type LogSink struct {
	log logrus.FieldLogger
}

func NewLogSink(log logrus.FieldLogger) *LogSink {
	return &LogSink{log: log}
}

func (s *LogSink) Emit(_ context.Context, event AuditEvent) {
	fields := logrus.Fields{
		"event_type": event.EventType,
		"success":    event.Success,
	}
	if event.Email != "" {
		fields["email"] = event.Email
	}
	if event.Version != 0 {
		fields["version"] = event.Version
	}
	if event.Path != "" {
		fields["path"] = event.Path
		fields["status"] = event.Status
	}
	if event.RequestID != "" {
		fields["request_id"] = event.RequestID
	}
	if event.Error != "" {
		fields["error"] = event.Error
	}

	entry := s.log.WithFields(fields).WithTime(event.Timestamp)
	if event.Success {
		entry.Info("audit")
		return
	}
	entry.Warn("audit")
}

// newAuditLogger is the logger behind the audit file: one JSON object per line.
func newAuditLogger(w io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(logrus.InfoLevel)
	log.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	return log
}

package logging

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/kwadjo-mensah/shopledger-backend/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	pgBatchSize     = 50
	pgFlushInterval = 5 * time.Second
)

// PGHandler is an slog.Handler that persists ERROR+ records to the
// system_logs table. Writes are buffered and flushed in batches off the
// request path; a slow database never blocks logging callers.
type PGHandler struct {
	db *gorm.DB

	mu      sync.Mutex
	pending []models.SystemLog

	done chan struct{}
}

func NewPGHandler(db *gorm.DB) *PGHandler {
	h := &PGHandler{
		db:      db,
		pending: make([]models.SystemLog, 0, pgBatchSize),
		done:    make(chan struct{}),
	}
	go h.run()
	return h
}

func (h *PGHandler) run() {
	ticker := time.NewTicker(pgFlushInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			h.flush()
		case <-h.done:
			h.flush()
			return
		}
	}
}

func (h *PGHandler) flush() {
	h.mu.Lock()
	batch := h.pending
	h.pending = make([]models.SystemLog, 0, pgBatchSize)
	h.mu.Unlock()

	if len(batch) == 0 {
		return
	}
	if err := h.db.CreateInBatches(batch, pgBatchSize).Error; err != nil {
		slog.Error("system log flush failed", "error", err, "count", len(batch))
	}
}

// Stop drains the buffer and ends the flush goroutine.
func (h *PGHandler) Stop() {
	close(h.done)
}

func (h *PGHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= slog.LevelError
}

func (h *PGHandler) Handle(_ context.Context, record slog.Record) error {
	entry := models.SystemLog{
		ID:        uuid.New(),
		Timestamp: record.Time,
		Level:     record.Level.String(),
		Message:   record.Message,
	}

	extra := map[string]any{}
	record.Attrs(func(a slog.Attr) bool {
		switch a.Key {
		case "business_id":
			if id, err := strconv.ParseUint(a.Value.String(), 10, 64); err == nil {
				bid := uint(id)
				entry.BusinessID = &bid
			}
		case "trace_id":
			entry.TraceID = a.Value.String()
		case "user_id":
			s := a.Value.String()
			entry.UserID = &s
		case "action":
			entry.Action = a.Value.String()
		case "error":
			entry.Error = a.Value.String()
		case "latency_ms":
			switch v := a.Value.Any().(type) {
			case int64:
				entry.LatencyMs = int(v)
			case float64:
				entry.LatencyMs = int(v)
			}
		default:
			extra[a.Key] = a.Value.Any()
		}
		return true
	})

	if len(extra) > 0 {
		if b, err := json.Marshal(extra); err == nil {
			entry.Extra = datatypes.JSON(b)
		}
	}

	h.mu.Lock()
	h.pending = append(h.pending, entry)
	full := len(h.pending) >= pgBatchSize
	h.mu.Unlock()

	if full {
		go h.flush()
	}
	return nil
}

func (h *PGHandler) WithAttrs(attrs []slog.Attr) slog.Handler { return h }
func (h *PGHandler) WithGroup(name string) slog.Handler       { return h }

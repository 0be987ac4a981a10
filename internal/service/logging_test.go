//go:build !integration

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/syntriq/cart-service/internal/domain/model"
	"github.com/syntriq/cart-service/internal/mocks"
	"github.com/syntriq/cart-service/internal/repository"
)

func TestLoggingService_CreateLog(t *testing.T) {
	repo := mocks.NewLogsRepository()
	svc := NewLoggingService(repo)

	entry := &model.LogEntry{
		Level:      "info",
		Message:    "Item added to cart",
		ActionType: "add_item",
	}
	entry.WithField("cart_id", "cart-1").WithField("quantity", 2)

	require.NoError(t, svc.CreateLog(context.Background(), entry))

	stored := repo.Entries()
	require.Len(t, stored, 1)
	assert.False(t, stored[0].ID.IsZero(), "missing ID is assigned")
	assert.False(t, stored[0].Timestamp.IsZero(), "missing timestamp is assigned")
	assert.Equal(t, "add_item", stored[0].ActionType)
	assert.Equal(t, "cart-1", stored[0].Fields["cart_id"])
}

func TestLoggingService_CreateLog_Error(t *testing.T) {
	repo := mocks.NewLogsRepository()
	repo.CreateErr = errors.New("database error")
	svc := NewLoggingService(repo)

	err := svc.CreateLog(context.Background(), &model.LogEntry{Level: "info"})
	assert.Error(t, err)
}

func TestLoggingService_CreateLogs(t *testing.T) {
	repo := mocks.NewLogsRepository()
	svc := NewLoggingService(repo)

	entries := []*model.LogEntry{
		{Level: "info", Message: "Discount applied", ActionType: "apply_discount"},
		{Level: "info", Message: "Order placed", ActionType: "checkout"},
	}
	require.NoError(t, svc.CreateLogs(context.Background(), entries))
	assert.Len(t, repo.Entries(), 2)

	require.NoError(t, svc.CreateLogs(context.Background(), nil), "empty batch is a no-op")
	assert.Len(t, repo.Entries(), 2)
}

func TestLoggingService_QueryLogs(t *testing.T) {
	repo := mocks.NewLogsRepository()
	svc := NewLoggingService(repo)

	require.NoError(t, svc.CreateLog(context.Background(), &model.LogEntry{
		Level:     "info",
		Message:   "Cart cleared",
		RequestID: "req-123",
	}))

	entries, err := svc.QueryLogs(context.Background(), model.LogQueryOptions{RequestID: "req-123"})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Cart cleared", entries[0].Message)
	assert.Equal(t, "req-123", entries[0].RequestID)
}

func TestLoggingService_modelToDocument(t *testing.T) {
	svc := &LoggingServiceImpl{}

	t.Run("assigns ID and timestamp when zero", func(t *testing.T) {
		doc := svc.modelToDocument(&model.LogEntry{Level: "info", Message: "test"})
		assert.False(t, doc.ID.IsZero())
		assert.False(t, doc.Timestamp.IsZero())
	})

	t.Run("preserves existing ID and timestamp", func(t *testing.T) {
		id := primitive.NewObjectID()
		ts := time.Now().Add(-time.Hour)
		doc := svc.modelToDocument(&model.LogEntry{ID: id, Timestamp: ts, Level: "info"})
		assert.Equal(t, id, doc.ID)
		assert.Equal(t, ts, doc.Timestamp)
	})

	t.Run("converts all fields", func(t *testing.T) {
		entry := &model.LogEntry{
			Level:      "error",
			Message:    "Checkout failed",
			RequestID:  "req-123",
			Method:     "POST",
			Path:       "/api/checkout",
			StatusCode: 500,
			Duration:   100,
			IP:         "127.0.0.1",
			UserAgent:  "test-agent",
			Error:      "store unavailable",
			UserID:     "user-123",
			UserEmail:  "user@example.com",
			ActionType: "checkout",
			Fields:     map[string]interface{}{"cart_id": "cart-1"},
		}
		doc := svc.modelToDocument(entry)
		assert.Equal(t, entry.Level, doc.Level)
		assert.Equal(t, entry.Message, doc.Message)
		assert.Equal(t, entry.RequestID, doc.RequestID)
		assert.Equal(t, entry.Method, doc.Method)
		assert.Equal(t, entry.Path, doc.Path)
		assert.Equal(t, entry.StatusCode, doc.StatusCode)
		assert.Equal(t, entry.Duration, doc.Duration)
		assert.Equal(t, entry.IP, doc.IP)
		assert.Equal(t, entry.UserAgent, doc.UserAgent)
		assert.Equal(t, entry.Error, doc.Error)
		assert.Equal(t, entry.UserID, doc.UserID)
		assert.Equal(t, entry.UserEmail, doc.UserEmail)
		assert.Equal(t, entry.ActionType, doc.ActionType)
		assert.Equal(t, entry.Fields, doc.Fields)
	})
}

func TestLoggingService_documentToModel(t *testing.T) {
	svc := &LoggingServiceImpl{}

	doc := &repository.LogEntryDocument{
		ID:         primitive.NewObjectID(),
		Timestamp:  time.Now(),
		Level:      "info",
		Message:    "Item removed",
		RequestID:  "req-456",
		Method:     "DELETE",
		Path:       "/api/cart/items",
		StatusCode: 200,
		Duration:   12,
		ActionType: "remove_item",
		Fields:     map[string]interface{}{"product_id": "3d-printers"},
	}

	entry := svc.documentToModel(doc)

	assert.Equal(t, doc.ID, entry.ID)
	assert.Equal(t, doc.Timestamp, entry.Timestamp)
	assert.Equal(t, doc.Level, entry.Level)
	assert.Equal(t, doc.Message, entry.Message)
	assert.Equal(t, doc.RequestID, entry.RequestID)
	assert.Equal(t, doc.Method, entry.Method)
	assert.Equal(t, doc.Path, entry.Path)
	assert.Equal(t, doc.StatusCode, entry.StatusCode)
	assert.Equal(t, doc.Duration, entry.Duration)
	assert.Equal(t, doc.ActionType, entry.ActionType)
	assert.Equal(t, doc.Fields, entry.Fields)
}

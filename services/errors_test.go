package services

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestBusinessError_Error(t *testing.T) {
	err := NewBusinessError(KindItemNotFound, http.StatusNotFound, "%s with id %s not found", "Product", "p-1")
	assert.Equal(t, "Product with id p-1 not found", err.Error())

	cause := errors.New("connection reset")
	wrapped := &BusinessError{Kind: KindUnexpected, Message: "An unexpected error occurred", Err: cause}
	assert.Equal(t, "An unexpected error occurred: connection reset", wrapped.Error())
	assert.ErrorIs(t, wrapped, cause)
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindOrderNotFound, KindOf(ErrOrderNotFound))
	assert.Equal(t, KindMissingField, KindOf(MissingField("senderName")))
	assert.Equal(t, KindMissingField, KindOf(fmt.Errorf("create: %w", MissingField("senderName"))))
	assert.Equal(t, KindUnexpected, KindOf(errors.New("boom")))
}

func TestHelpers(t *testing.T) {
	assert.Equal(t, "senderName is required", MissingField("senderName").Message)
	assert.Equal(t, http.StatusBadRequest, MissingField("senderName").StatusCode)

	notFound := NotFound("Supplier")
	assert.Equal(t, "Supplier not found", notFound.Message)
	assert.Equal(t, KindNotFound, notFound.Kind)
	assert.Equal(t, http.StatusNotFound, notFound.StatusCode)

	assert.Equal(t, http.StatusServiceUnavailable, ErrStorageUnavailable.StatusCode)
}

func TestClassifyStoreError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantKind   ErrorKind
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "business error passes through",
			err:        ErrClientNotFound,
			wantKind:   KindClientNotFound,
			wantStatus: http.StatusNotFound,
			wantMsg:    "Client not found",
		},
		{
			name:       "postgres foreign key violation",
			err:        &pgconn.PgError{Code: "23503", Message: "insert or update violates foreign key"},
			wantKind:   KindReferencedRecordMissing,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Referenced record does not exist",
		},
		{
			name:       "postgres unique violation",
			err:        fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"}),
			wantKind:   KindDuplicateRecord,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Record already exists",
		},
		{
			name:       "translated foreign key violation",
			err:        gorm.ErrForeignKeyViolated,
			wantKind:   KindReferencedRecordMissing,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Referenced record does not exist",
		},
		{
			name:       "translated duplicate key",
			err:        gorm.ErrDuplicatedKey,
			wantKind:   KindDuplicateRecord,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Record already exists",
		},
		{
			name:       "other postgres error",
			err:        &pgconn.PgError{Code: "42P01"},
			wantKind:   KindUnexpected,
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "An unexpected error occurred",
		},
		{
			name:       "message text is never inspected",
			err:        errors.New("duplicate key value violates unique constraint"),
			wantKind:   KindUnexpected,
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "An unexpected error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			be := ClassifyStoreError(tt.err)
			require.NotNil(t, be)
			assert.Equal(t, tt.wantKind, be.Kind)
			assert.Equal(t, tt.wantStatus, be.StatusCode)
			assert.Equal(t, tt.wantMsg, be.Message)
		})
	}

	assert.Nil(t, ClassifyStoreError(nil))
}

func TestClassifyStoreError_KeepsCause(t *testing.T) {
	cause := errors.New("disk I/O error")
	be := ClassifyStoreError(cause)
	assert.ErrorIs(t, be, cause)
}

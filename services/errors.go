package services

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrorKind classifies every failure the API reports to callers
type ErrorKind string

const (
	KindClientNotFound          ErrorKind = "CLIENT_NOT_FOUND"
	KindItemNotFound            ErrorKind = "ITEM_NOT_FOUND"
	KindInvalidItemType         ErrorKind = "INVALID_ITEM_TYPE"
	KindEmptyOrder              ErrorKind = "EMPTY_ORDER"
	KindOrderNotFound           ErrorKind = "ORDER_NOT_FOUND"
	KindInvalidStatus           ErrorKind = "INVALID_STATUS"
	KindMissingField            ErrorKind = "MISSING_FIELD"
	KindInvalidRequest          ErrorKind = "INVALID_REQUEST"
	KindNotFound                ErrorKind = "NOT_FOUND"
	KindReferencedRecordMissing ErrorKind = "REFERENCED_RECORD_MISSING"
	KindDuplicateRecord         ErrorKind = "DUPLICATE_RECORD"
	KindStorageUnavailable      ErrorKind = "STORAGE_UNAVAILABLE"
	KindUnexpected              ErrorKind = "UNEXPECTED"
)

// PostgreSQL integrity constraint violation codes
const (
	pgErrForeignKeyViolation = "23503"
	pgErrUniqueViolation     = "23505"
)

// BusinessError is a caller-visible failure carrying a message and the HTTP
// status it maps to. Err keeps the underlying cause for logging and is never
// shown to clients.
type BusinessError struct {
	Kind       ErrorKind
	Message    string
	StatusCode int
	Err        error
}

func (e *BusinessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

// NewBusinessError builds a BusinessError with a formatted message
func NewBusinessError(kind ErrorKind, statusCode int, format string, args ...interface{}) *BusinessError {
	return &BusinessError{
		Kind:       kind,
		Message:    fmt.Sprintf(format, args...),
		StatusCode: statusCode,
	}
}

func errBadRequest(kind ErrorKind, format string, args ...interface{}) *BusinessError {
	return NewBusinessError(kind, http.StatusBadRequest, format, args...)
}

func errNotFound(kind ErrorKind, format string, args ...interface{}) *BusinessError {
	return NewBusinessError(kind, http.StatusNotFound, format, args...)
}

// ErrInvalidStatus is returned for a status outside the order enumeration
var ErrInvalidStatus = errBadRequest(KindInvalidStatus, "Invalid status value")

// ErrOrderNotFound is returned when an order id does not resolve
var ErrOrderNotFound = errNotFound(KindOrderNotFound, "Order not found")

// ErrClientNotFound is returned when a client id does not resolve
var ErrClientNotFound = errNotFound(KindClientNotFound, "Client not found")

// ErrEmptyOrder is returned when an order has no items
var ErrEmptyOrder = errBadRequest(KindEmptyOrder, "Order items are required")

// ErrStorageUnavailable is returned when image storage is not configured
var ErrStorageUnavailable = NewBusinessError(KindStorageUnavailable, http.StatusServiceUnavailable, "Image storage is not configured")

// MissingField reports a required request field that was absent
func MissingField(field string) *BusinessError {
	return errBadRequest(KindMissingField, "%s is required", field)
}

// InvalidRequest reports a malformed request value
func InvalidRequest(format string, args ...interface{}) *BusinessError {
	return errBadRequest(KindInvalidRequest, format, args...)
}

// NotFound reports a missing catalog or CRM entity, e.g. NotFound("Supplier")
func NotFound(entity string) *BusinessError {
	return errNotFound(KindNotFound, "%s not found", entity)
}

// KindOf returns the kind of err, KindUnexpected for unclassified errors
func KindOf(err error) ErrorKind {
	var be *BusinessError
	if errors.As(err, &be) {
		return be.Kind
	}
	return KindUnexpected
}

// ClassifyStoreError turns any error into a BusinessError. Store failures are
// classified by their structured code, never by message text; everything
// unrecognized becomes KindUnexpected with the cause preserved.
func ClassifyStoreError(err error) *BusinessError {
	if err == nil {
		return nil
	}

	var be *BusinessError
	if errors.As(err, &be) {
		return be
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgErrForeignKeyViolation:
			return referencedRecordMissing(err)
		case pgErrUniqueViolation:
			return duplicateRecord(err)
		}
	}

	switch {
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return referencedRecordMissing(err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return duplicateRecord(err)
	}

	return &BusinessError{
		Kind:       KindUnexpected,
		Message:    "An unexpected error occurred",
		StatusCode: http.StatusInternalServerError,
		Err:        err,
	}
}

func referencedRecordMissing(err error) *BusinessError {
	return &BusinessError{
		Kind:       KindReferencedRecordMissing,
		Message:    "Referenced record does not exist",
		StatusCode: http.StatusBadRequest,
		Err:        err,
	}
}

func duplicateRecord(err error) *BusinessError {
	return &BusinessError{
		Kind:       KindDuplicateRecord,
		Message:    "Record already exists",
		StatusCode: http.StatusBadRequest,
		Err:        err,
	}
}

package domain

import (
	"errors"
	"fmt"
	"time"
)

// Application error codes
const (
	EINVALID      = "invalid"         // Invalid input or validation failure
	EUNAUTHORIZED = "unauthorized"    // Authentication required
	EFORBIDDEN    = "forbidden"       // Permission denied
	ENOTFOUND     = "not_found"       // Resource not found
	ECONFLICT     = "conflict"        // Resource conflict (e.g., already processed)
	ERATELIMIT    = "rate_limit"      // Rate limit exceeded
	EINTERNAL     = "internal"        // Internal server error
	EQUOTA        = "quota_exceeded"  // Daily promotion allowance used up
	ECOOLDOWN     = "cooldown_active" // Weekly promotion cooldown not elapsed
)

// Error represents an application error with structured information.
type Error struct {
	Code    string // Machine-readable error code
	Op      string // Operation that failed (e.g., "user.create")
	Message string // Human-readable message
	Err     error  // Underlying error
}

func (e *Error) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Errorf creates a new Error with the given code, operation, and formatted message.
func Errorf(code, op, format string, args ...interface{}) *Error {
	return &Error{
		Code:    code,
		Op:      op,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode returns the code of the root error, or EINTERNAL if none.
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}
	var qe *QuotaExceededError
	if errors.As(err, &qe) {
		return EQUOTA
	}
	var ce *CooldownError
	if errors.As(err, &ce) {
		return ECOOLDOWN
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return EINVALID
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage returns the human-readable message of the error.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var qe *QuotaExceededError
	if errors.As(err, &qe) {
		return qe.Error()
	}
	var ce *CooldownError
	if errors.As(err, &ce) {
		return ce.Error()
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return "Validation failed"
	}
	var e *Error
	if errors.As(err, &e) {
		// For internal errors, return generic message
		if e.Code == EINTERNAL {
			return "An internal error occurred. Please try again later."
		}
		return e.Message
	}
	return "An internal error occurred. Please try again later."
}

// ErrorOp returns the operation of the root error, if any.
func ErrorOp(err error) string {
	if err == nil {
		return ""
	}
	var qe *QuotaExceededError
	if errors.As(err, &qe) {
		return qe.Op
	}
	var ce *CooldownError
	if errors.As(err, &ce) {
		return ce.Op
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Op
	}
	return ""
}

// Convenience constructors for common error types

// NotFound creates a not found error.
func NotFound(op, resource, id string) *Error {
	return &Error{
		Code:    ENOTFOUND,
		Op:      op,
		Message: fmt.Sprintf("%s with ID %q not found", resource, id),
	}
}

// Invalid creates a validation error.
func Invalid(op, message string) *Error {
	return &Error{
		Code:    EINVALID,
		Op:      op,
		Message: message,
	}
}

// Unauthorized creates an authentication error.
func Unauthorized(op, message string) *Error {
	return &Error{
		Code:    EUNAUTHORIZED,
		Op:      op,
		Message: message,
	}
}

// Forbidden creates a permission error.
func Forbidden(op, message string) *Error {
	return &Error{
		Code:    EFORBIDDEN,
		Op:      op,
		Message: message,
	}
}

// Conflict creates a conflict error.
func Conflict(op, message string) *Error {
	return &Error{
		Code:    ECONFLICT,
		Op:      op,
		Message: message,
	}
}

// Internal creates an internal error, wrapping the underlying error.
func Internal(err error, op, message string) *Error {
	return &Error{
		Code:    EINTERNAL,
		Op:      op,
		Message: message,
		Err:     err,
	}
}

// RateLimit creates a rate limit error.
func RateLimit(op string) *Error {
	return &Error{
		Code:    ERATELIMIT,
		Op:      op,
		Message: "Too many requests. Please try again later.",
	}
}

// QuotaExceeded creates a quota error for the paid promotion tier.
func QuotaExceeded(op string, used, limit int, resetsAt time.Time) *QuotaExceededError {
	return &QuotaExceededError{
		Op:       op,
		Used:     used,
		Limit:    limit,
		ResetsAt: resetsAt,
	}
}

// QuotaExceededError is returned when an owner on a paid plan has used every
// push allowed for the current regional day. No state was changed.
type QuotaExceededError struct {
	Op       string
	Used     int
	Limit    int
	ResetsAt time.Time // Start of the next regional day
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("daily push limit reached (%d/%d)", e.Used, e.Limit)
}

// CooldownActive creates a cooldown error for the free promotion tier.
func CooldownActive(op string, nextEligible time.Time) *CooldownError {
	return &CooldownError{
		Op:           op,
		NextEligible: nextEligible,
	}
}

// CooldownError is returned when a free-tier job was already pushed during the
// current regional week. No state was changed.
type CooldownError struct {
	Op           string
	NextEligible time.Time // Monday 00:00 of the following week
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("free accounts can push once per week; next push available %s",
		e.NextEligible.In(RegionZone).Format("2006-01-02"))
}

// ErrorDetails returns structured fields for errors that carry them
// (quota and cooldown results). Returns nil for everything else.
func ErrorDetails(err error) map[string]any {
	var qe *QuotaExceededError
	if errors.As(err, &qe) {
		return map[string]any{
			"used":      qe.Used,
			"limit":     qe.Limit,
			"resets_at": qe.ResetsAt,
		}
	}
	var ce *CooldownError
	if errors.As(err, &ce) {
		return map[string]any{
			"next_eligible_at": ce.NextEligible,
		}
	}
	return nil
}

// ValidationError represents field-level validation errors.
type ValidationError struct {
	Op     string
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: validation failed", e.Op)
}

// NewValidationError creates a new validation error with the first field error.
func NewValidationError(op, field, message string) *ValidationError {
	return &ValidationError{
		Op: op,
		Fields: map[string]string{
			field: message,
		},
	}
}

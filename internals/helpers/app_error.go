package helper

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ErrorKind string

const (
	KindUnauthenticated ErrorKind = "unauthenticated"
	KindUnauthorized    ErrorKind = "unauthorized"
	KindForbidden       ErrorKind = "forbidden"
	KindNotFound        ErrorKind = "not_found"
	KindConflict        ErrorKind = "conflict"
	KindInvalid         ErrorKind = "invalid"
	KindInternal        ErrorKind = "internal"
)

// AppError is raised where a failure is detected and translated to an HTTP
// response only at the boundary.
type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

func (e *AppError) Status() int {
	switch e.Kind {
	case KindUnauthenticated, KindUnauthorized:
		return fiber.StatusUnauthorized
	case KindForbidden:
		return fiber.StatusForbidden
	case KindNotFound:
		return fiber.StatusNotFound
	case KindConflict:
		return fiber.StatusBadRequest
	case KindInvalid:
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}

func NewUnauthenticated(msg string) error { return &AppError{Kind: KindUnauthenticated, Message: msg} }
func NewUnauthorized(msg string) error    { return &AppError{Kind: KindUnauthorized, Message: msg} }
func NewForbidden(msg string) error       { return &AppError{Kind: KindForbidden, Message: msg} }
func NewNotFound(msg string) error        { return &AppError{Kind: KindNotFound, Message: msg} }
func NewConflict(msg string) error        { return &AppError{Kind: KindConflict, Message: msg} }
func NewInvalid(msg string) error         { return &AppError{Kind: KindInvalid, Message: msg} }

func NewInternal(msg string, err error) error {
	return &AppError{Kind: KindInternal, Message: msg, Err: err}
}

func AsAppError(err error) (*AppError, bool) {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

// IsKind reports whether err is an AppError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	ae, ok := AsAppError(err)
	return ok && ae.Kind == kind
}

// FromDBError maps a gorm error onto the taxonomy. Record-not-found becomes
// notFoundMsg, constraint violations conflictMsg, everything else internalMsg.
func FromDBError(err error, notFoundMsg, conflictMsg, internalMsg string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return &AppError{Kind: KindNotFound, Message: notFoundMsg, Err: err}
	case errors.Is(err, gorm.ErrDuplicatedKey), errors.Is(err, gorm.ErrForeignKeyViolated):
		return &AppError{Kind: KindConflict, Message: conflictMsg, Err: err}
	default:
		if _, ok := AsAppError(err); ok {
			return err
		}
		return &AppError{Kind: KindInternal, Message: internalMsg, Err: err}
	}
}

// FromAppError menulis error apa pun sebagai JSON envelope.
// Internal errors hanya mengirim pesan generiknya, detail tetap di log.
func FromAppError(c *fiber.Ctx, err error) error {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return JsonValidationError(c, ve.Fields)
	}
	if ae, ok := AsAppError(err); ok {
		return JsonError(c, ae.Status(), ae.Message)
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return JsonError(c, fe.Code, fe.Message)
	}
	return JsonError(c, fiber.StatusInternalServerError, fiber.ErrInternalServerError.Message)
}

// LogError writes one line per failure with the request id. 4xx other than
// not-found stay at debug level.
func LogError(c *fiber.Ctx, log *slog.Logger, msg string, err error, attrs ...any) {
	attrs = append(attrs,
		"error", err,
		"reqid", c.Locals("reqid"),
		"method", c.Method(),
		"path", c.Path(),
	)
	var fe *fiber.Error
	var ve *ValidationError
	if (errors.As(err, &fe) && fe.Code < 500) || errors.As(err, &ve) {
		log.Debug(msg, attrs...)
		return
	}
	ae, ok := AsAppError(err)
	switch {
	case !ok || ae.Kind == KindInternal:
		log.Error(msg, attrs...)
	case ae.Kind == KindNotFound:
		log.Warn(msg, attrs...)
	default:
		log.Debug(msg, attrs...)
	}
}

// ErrorHandler is the fiber.Config ErrorHandler: anything a handler or
// middleware returns ends up in the standard envelope.
func ErrorHandler(log *slog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		LogError(c, log, "request failed", err)
		return FromAppError(c, err)
	}
}

// Fail logs err with the request context, then renders it.
func Fail(c *fiber.Ctx, log *slog.Logger, msg string, err error, attrs ...any) error {
	LogError(c, log, msg, err, attrs...)
	return FromAppError(c, err)
}

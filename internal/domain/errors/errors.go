package errors

import (
	"errors"
	"net/http"
	"strings"
)

// Domain errors
var (
	ErrNotFound      = errors.New("resource not found")
	ErrAlreadyExists = errors.New("resource already exists")
	ErrInvalidInput  = errors.New("invalid input")
	ErrBadRequest    = errors.New("bad request")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")

	// Environment errors
	ErrWalletNotInstalled  = errors.New("wallet extension not installed")
	ErrWalletNotConnected  = errors.New("wallet not connected")
	ErrContractNotDeployed = errors.New("smart contract not deployed")

	// Authorization errors
	ErrSignatureDeclined = errors.New("signature request declined")

	// Precondition errors (on-chain account state)
	ErrNotInitialized     = errors.New("account not initialized")
	ErrAlreadyInitialized = errors.New("account already initialized")

	// Domain errors surfaced by the contract
	ErrItemNotFound        = errors.New("item not found")
	ErrItemAlreadyOwned    = errors.New("item already owned")
	ErrNoPendingInvitation = errors.New("no pending invitation found")
	ErrNoCoParentPair      = errors.New("no co-parent pair found")

	// Transient/network errors
	ErrTransactionTimeout = errors.New("transaction timed out")
	ErrLedgerUnavailable  = errors.New("ledger request failed")

	// Data-shape errors
	ErrUnrecognizedShape = errors.New("unrecognized ledger value shape")
)

// Move abort markers emitted by the capy contract in vm_status strings.
const (
	AbortNotInitialized     = "E_NOT_INITIALIZED"
	AbortAlreadyInitialized = "E_ALREADY_INITIALIZED"
	AbortItemNotFound       = "E_ITEM_NOT_FOUND"
	AbortAlreadyOwned       = "E_ALREADY_OWNED"
)

// AppError represents application error with HTTP status
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new app error
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common error constructors
func NotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, message, ErrNotFound)
}

func BadRequest(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, ErrInvalidInput)
}

func Unauthorized(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, message, ErrUnauthorized)
}

func Forbidden(message string) *AppError {
	return NewAppError(http.StatusForbidden, message, ErrForbidden)
}

func Conflict(message string) *AppError {
	return NewAppError(http.StatusConflict, message, ErrAlreadyExists)
}

func ServiceUnavailable(message string, err error) *AppError {
	return NewAppError(http.StatusServiceUnavailable, message, err)
}

func InternalError(err error) *AppError {
	return NewAppError(http.StatusInternalServerError, "internal server error", err)
}

// NewError creates a new error with a custom message wrapping an existing error
func NewError(message string, err error) error {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: message,
		Err:     err,
	}
}

// ClassifyAbort maps a ledger vm_status (or an error string containing one)
// to the matching precondition/domain sentinel. Unknown statuses map to nil.
func ClassifyAbort(status string) error {
	switch {
	case strings.Contains(status, AbortNotInitialized):
		return ErrNotInitialized
	case strings.Contains(status, AbortAlreadyInitialized):
		return ErrAlreadyInitialized
	case strings.Contains(status, AbortItemNotFound):
		return ErrItemNotFound
	case strings.Contains(status, AbortAlreadyOwned):
		return ErrItemAlreadyOwned
	default:
		return nil
	}
}

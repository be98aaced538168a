package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "github.com/saiisback/capy/internal/domain/errors"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error sends an error response, mapping domain errors to HTTP statuses.
func Error(c *gin.Context, err error) {
	var appErr *domainerrors.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Code, gin.H{
			"code":    appErr.Code,
			"message": appErr.Message,
		})
		return
	}

	status := statusFor(err)
	c.JSON(status, gin.H{
		"code":    status,
		"message": err.Error(),
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domainerrors.ErrInvalidInput),
		errors.Is(err, domainerrors.ErrBadRequest),
		errors.Is(err, domainerrors.ErrUnrecognizedShape):
		return http.StatusBadRequest
	case errors.Is(err, domainerrors.ErrUnauthorized),
		errors.Is(err, domainerrors.ErrWalletNotConnected):
		return http.StatusUnauthorized
	case errors.Is(err, domainerrors.ErrSignatureDeclined),
		errors.Is(err, domainerrors.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domainerrors.ErrNotFound),
		errors.Is(err, domainerrors.ErrItemNotFound),
		errors.Is(err, domainerrors.ErrNoPendingInvitation),
		errors.Is(err, domainerrors.ErrNoCoParentPair):
		return http.StatusNotFound
	case errors.Is(err, domainerrors.ErrAlreadyExists),
		errors.Is(err, domainerrors.ErrItemAlreadyOwned),
		errors.Is(err, domainerrors.ErrAlreadyInitialized),
		errors.Is(err, domainerrors.ErrNotInitialized):
		return http.StatusConflict
	case errors.Is(err, domainerrors.ErrWalletNotInstalled),
		errors.Is(err, domainerrors.ErrContractNotDeployed):
		return http.StatusServiceUnavailable
	case errors.Is(err, domainerrors.ErrLedgerUnavailable):
		return http.StatusBadGateway
	case errors.Is(err, domainerrors.ErrTransactionTimeout):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

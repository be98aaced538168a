package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/saiisback/capy/internal/domain/entities"
	domainerrors "github.com/saiisback/capy/internal/domain/errors"
	"github.com/saiisback/capy/internal/interfaces/http/response"
	"github.com/saiisback/capy/pkg/jwt"
	"github.com/saiisback/capy/pkg/logger"
)

const (
	SessionIDKey = "session_id"
	AccountKey   = "account"
)

// sessionResolver validates tokens and resolves the account behind them,
// implemented by usecases.WalletUsecase.
type sessionResolver interface {
	ValidateToken(token string) (*jwt.Claims, error)
	Session(ctx context.Context, sessionID string) (*entities.Account, error)
}

// SessionMiddleware requires a valid session token and loads the connected
// account into the request context.
func SessionMiddleware(wallet sessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			response.Error(c, domainerrors.Unauthorized("Missing session token"))
			c.Abort()
			return
		}

		claims, err := wallet.ValidateToken(token)
		if err != nil {
			response.Error(c, domainerrors.Unauthorized("Invalid session token"))
			c.Abort()
			return
		}

		account, err := wallet.Session(c.Request.Context(), claims.SessionID.String())
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}

		c.Set(SessionIDKey, claims.SessionID.String())
		c.Set(AccountKey, account)

		ctx := context.WithValue(c.Request.Context(), logger.SessionIDKey, claims.SessionID.String())
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// OptionalSessionMiddleware loads the account when a valid token is present
// but lets anonymous requests through.
func OptionalSessionMiddleware(wallet sessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.Next()
			return
		}
		if claims, err := wallet.ValidateToken(token); err == nil {
			if account, err := wallet.Session(c.Request.Context(), claims.SessionID.String()); err == nil {
				c.Set(SessionIDKey, claims.SessionID.String())
				c.Set(AccountKey, account)
			}
		}
		c.Next()
	}
}

// GetAccount returns the connected account set by SessionMiddleware.
func GetAccount(c *gin.Context) (*entities.Account, bool) {
	value, ok := c.Get(AccountKey)
	if !ok {
		return nil, false
	}
	account, ok := value.(*entities.Account)
	return account, ok
}

// GetSessionID returns the session id set by SessionMiddleware.
func GetSessionID(c *gin.Context) (string, bool) {
	value, ok := c.Get(SessionIDKey)
	if !ok {
		return "", false
	}
	id, ok := value.(string)
	return id, ok
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

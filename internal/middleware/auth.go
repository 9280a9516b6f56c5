package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/salon-backend/internal/httperr"
	"github.com/BruksfildServices01/salon-backend/internal/models"
	"github.com/BruksfildServices01/salon-backend/internal/session"
)

const (
	ContextAccountID = "accountID"
	ContextStaff     = "isStaff"
	ContextSuperuser = "isSuperuser"
	ContextClaims    = "claims"
)

// AccountFinder loads the account a token was issued for.
type AccountFinder interface {
	FindAccount(ctx context.Context, id uint) (*models.Account, error)
}

// AuthMiddleware resolves the bearer token into the account id and flags
// used by the handlers. The account is loaded on every request: a deleted
// or deactivated account is rejected even while its token is unexpired,
// and the flags come from the row, not from the claims.
func AuthMiddleware(tokens *session.Manager, accounts AccountFinder, log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "missing_authorization_header", "Authentication credentials were not provided.")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Unauthorized(c, "invalid_authorization_header", "Authorization header must be 'Bearer <token>'.")
			c.Abort()
			return
		}

		claims, err := tokens.Verify(c.Request.Context(), strings.TrimSpace(parts[1]))
		switch {
		case err == nil:
		case errors.Is(err, session.ErrRevoked):
			httperr.Unauthorized(c, "token_revoked", "Token has been revoked.")
			c.Abort()
			return
		case errors.Is(err, session.ErrInvalidToken):
			httperr.Unauthorized(c, "invalid_token", "Invalid or expired token.")
			c.Abort()
			return
		default:
			log.WithError(err).Error("session lookup failed")
			httperr.Internal(c, "internal_error", "Internal error.")
			c.Abort()
			return
		}

		accountID, err := claims.AccountID()
		if err != nil {
			httperr.Unauthorized(c, "invalid_token", "Invalid or expired token.")
			c.Abort()
			return
		}

		acct, err := accounts.FindAccount(c.Request.Context(), accountID)
		switch {
		case err == nil && acct.IsActive:
		case err == nil, errors.Is(err, httperr.ErrNotFound):
			httperr.Unauthorized(c, "inactive_account", "User inactive or deleted.")
			c.Abort()
			return
		default:
			log.WithError(err).WithField("account_id", accountID).Error("account lookup failed")
			httperr.Internal(c, "internal_error", "Internal error.")
			c.Abort()
			return
		}

		c.Set(ContextAccountID, acct.ID)
		c.Set(ContextStaff, acct.IsStaff)
		c.Set(ContextSuperuser, acct.IsSuperuser)
		c.Set(ContextClaims, claims)

		c.Next()
	}
}

// RequireSuperuser must run after AuthMiddleware.
func RequireSuperuser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool(ContextSuperuser) {
			httperr.Forbidden(c, "forbidden", "You do not have permission to perform this action.")
			c.Abort()
			return
		}
		c.Next()
	}
}

// AccountID returns the authenticated account id, or nil outside
// AuthMiddleware.
func AccountID(c *gin.Context) *uint {
	v, ok := c.Get(ContextAccountID)
	if !ok {
		return nil
	}
	id, ok := v.(uint)
	if !ok {
		return nil
	}
	return &id
}

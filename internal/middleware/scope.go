package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"task-capture/internal/model"
)

const (
	UserIDHeader   = "X-User-ID"
	UsernameHeader = "X-Username"
)

type scopeKey struct{}

// Scope reads the caller identity from request headers. Requests without
// a user header act for the anonymous user.
func (m Middleware) Scope() gin.HandlerFunc {
	return func(c *gin.Context) {
		sc := model.ScopeOrAnonymous(model.Scope{
			UserID:   strings.TrimSpace(c.GetHeader(UserIDHeader)),
			Username: strings.TrimSpace(c.GetHeader(UsernameHeader)),
		})
		c.Request = c.Request.WithContext(SetScope(c.Request.Context(), sc))
		c.Next()
	}
}

func SetScope(ctx context.Context, sc model.Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, sc)
}

// GetScope returns the scope stored by Scope, or the anonymous scope.
func GetScope(ctx context.Context) model.Scope {
	sc, _ := ctx.Value(scopeKey{}).(model.Scope)
	return model.ScopeOrAnonymous(sc)
}

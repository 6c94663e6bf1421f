package middleware

import (
	"net/http"

	"github.com/bintangpramudya/kasirpay-backend/api/responses"
	"github.com/bintangpramudya/kasirpay-backend/pkg/enums"
	pkgerrors "github.com/bintangpramudya/kasirpay-backend/pkg/errors"
	"github.com/bintangpramudya/kasirpay-backend/pkg/logger"
)

// RequireRole denies the request unless the authenticated role is one of the
// allowed roles.
func RequireRole(logg *logger.Logger, roles ...enums.UserRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actual := RoleFromContext(r.Context())
			for _, role := range roles {
				if actual == string(role) {
					next.ServeHTTP(w, r)
					return
				}
			}
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeForbidden, "role required"))
		})
	}
}

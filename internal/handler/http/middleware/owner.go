package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopvui/backoffice-go/internal/handler/http/response"
	"github.com/shopvui/backoffice-go/internal/pkg/jwt"
)

// OwnerOnly restricts a route to tokens carrying the owner role. Payroll
// mutations and schedule edits are owner operations.
func OwnerOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Unauthorized(w, "Missing or invalid token")
			return
		}

		role, ok := claims["role"].(string)
		if !ok || role != jwt.RoleOwner {
			response.Forbidden(w, "Owner privilege required")
			return
		}

		next.ServeHTTP(w, r)
	})
}

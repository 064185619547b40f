package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/meridian-erp/erp-backend-go/internal/handler/http/response"
)

// AdminOnly guards the payroll-run endpoints: generating a period and
// flipping the paid flag.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Unauthorized(w, "Invalid token")
			return
		}

		role, ok := claims["role"].(string)
		if !ok || role != "admin" {
			response.Forbidden(w, "Admin privilege required")
			return
		}

		next.ServeHTTP(w, r)
	})
}

package middleware

import (
	"net/http"

	"github.com/forgetrack/forgetrack-backend-go/internal/domain/auth"
	"github.com/forgetrack/forgetrack-backend-go/internal/domain/user"
	"github.com/forgetrack/forgetrack-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// RequireRole gates a route group to the given roles. Admins are not
// implicitly allowed; list user.RoleAdmin explicitly where admins may
// pass.
func RequireRole(roles ...user.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			roleClaim, ok := claims["role"].(string)
			if !ok {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			for _, role := range roles {
				if user.Role(roleClaim) == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			response.HandleError(w, user.ErrRoleNotAllowed)
		})
	}
}

func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		roleClaim, ok := claims["role"].(string)
		if !ok || user.Role(roleClaim) != user.RoleAdmin {
			response.HandleError(w, user.ErrAdminPrivilegeRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

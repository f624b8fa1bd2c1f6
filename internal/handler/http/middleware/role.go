package middleware

import (
	"net/http"

	"github.com/fitcore/gym-backend-go/internal/domain/staff"
	"github.com/fitcore/gym-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// RoleMember is the role claim carried by gym-member tokens. Members are not
// staff records; their accounts live with the member-facing application, which
// shares the signing secret.
const RoleMember = "MEMBER"

func roleFromContext(r *http.Request) (string, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", false
	}
	role, ok := claims["role"].(string)
	return role, ok
}

// RequireMember restricts a route to gym members.
func RequireMember(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := roleFromContext(r)
		if !ok || role != RoleMember {
			response.Forbidden(w, "Member access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireStaff restricts a route to any staff role.
func RequireStaff(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := roleFromContext(r)
		if !ok {
			response.Forbidden(w, "Staff access required")
			return
		}
		switch staff.Role(role) {
		case staff.RoleTrainer, staff.RoleManager, staff.RoleReceptionist:
			next.ServeHTTP(w, r)
		default:
			response.Forbidden(w, "Staff access required")
		}
	})
}

// RequireManager restricts a route to branch managers.
func RequireManager(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := roleFromContext(r)
		if !ok || staff.Role(role) != staff.RoleManager {
			response.Forbidden(w, "Manager access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireFrontDesk restricts a route to the roles that operate the check-in
// desk: receptionists and managers.
func RequireFrontDesk(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := roleFromContext(r)
		if !ok {
			response.Forbidden(w, "Front-desk access required")
			return
		}
		switch staff.Role(role) {
		case staff.RoleReceptionist, staff.RoleManager:
			next.ServeHTTP(w, r)
		default:
			response.Forbidden(w, "Front-desk access required")
		}
	})
}

package middleware

import (
	"net/http"
	"strings"

	"freelance-market/internal/data/entity"
	"freelance-market/internal/data/repository"
	"freelance-market/pkg/utils"

	"go.uber.org/zap"
)

// AuthSession validates the opaque bearer token against the session store
// and puts the authenticated user id on the request context.
func AuthSession(sessionRepo repository.SessionRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			token := parts[1]

			session, err := sessionRepo.FindValidSession(r.Context(), token)
			if err != nil {
				logger.Error("Failed to validate session", zap.Error(err))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if session == nil {
				logger.Warn("Invalid or expired session")
				utils.ResponseUnauthorized(w, "Invalid or expired session")
				return
			}

			ctx := utils.SetUserContext(r.Context(), session.UserID)
			ctx = utils.SetTokenContext(ctx, token)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Business only lets business-profile users through.
func Business(profileRepo repository.ProfileRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return requireProfileType(profileRepo, entity.ProfileTypeBusiness, "Business account required", logger)
}

// Customer only lets customer-profile users through.
func Customer(profileRepo repository.ProfileRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return requireProfileType(profileRepo, entity.ProfileTypeCustomer, "Customer account required", logger)
}

func requireProfileType(
	profileRepo repository.ProfileRepository,
	profileType entity.ProfileType,
	denyMessage string,
	logger *zap.Logger,
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// 1. Get user ID from context (set by AuthSession)
			userID, ok := utils.GetUserIDFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			// 2. Load profile
			profile, err := profileRepo.FindByUserID(r.Context(), userID)
			if err != nil {
				logger.Error("Role check: failed to get profile",
					zap.Error(err), zap.String("user_id", userID.String()))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			// 3. Check profile type
			if profile == nil || profile.Type != profileType {
				logger.Warn("Role check: access denied",
					zap.String("user_id", userID.String()),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, denyMessage)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// Staff checks the is_staff flag, used for destructive admin endpoints.
func Staff(userRepo repository.UserRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := utils.GetUserIDFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			user, err := userRepo.FindByID(r.Context(), userID)
			if err != nil {
				logger.Error("Staff check: failed to get user",
					zap.Error(err), zap.String("user_id", userID.String()))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if user == nil || !user.IsStaff {
				logger.Warn("Staff check: non-staff access attempt",
					zap.String("user_id", userID.String()),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Staff access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

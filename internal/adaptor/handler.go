package adaptor

import (
	"errors"
	"net/http"
	"strings"

	"freelance-market/internal/usecase"
	"freelance-market/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	Profile *ProfileHandler
	Offer   *OfferHandler
	Order   *OrderHandler
	Review  *ReviewHandler
	Info    *InfoHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, log),
		Profile: NewProfileHandler(service.Profile, log),
		Offer:   NewOfferHandler(service.Offer, log),
		Order:   NewOrderHandler(service.Order, log),
		Review:  NewReviewHandler(service.Review, log),
		Info:    NewInfoHandler(service.Info, log),
	}
}

// handleServiceError maps a service error onto an HTTP response. Field
// validation errors carry their field map into the errors payload;
// everything else is classified by message.
func handleServiceError(w http.ResponseWriter, err error) {
	var validationErr *utils.ValidationError
	if errors.As(err, &validationErr) {
		utils.ResponseBadRequest(w, "Validation failed", validationErr.Fields)
		return
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "not found"):
		utils.ResponseNotFound(w, msg)
	case strings.Contains(msg, "forbidden"):
		utils.ResponseForbidden(w, msg)
	case strings.Contains(msg, "invalid credentials"):
		utils.ResponseUnauthorized(w, msg)
	case strings.Contains(msg, "invalid") || strings.Contains(msg, "already"):
		utils.ResponseBadRequest(w, msg, nil)
	default:
		utils.ResponseInternalError(w, "Internal server error")
	}
}

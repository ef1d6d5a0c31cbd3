package adaptor

import (
	"encoding/json"
	"net/http"

	"freelance-market/internal/dto/request"
	"freelance-market/internal/usecase"
	"freelance-market/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type OfferHandler struct {
	service usecase.OfferService
	log     *zap.Logger
}

func NewOfferHandler(service usecase.OfferService, log *zap.Logger) *OfferHandler {
	return &OfferHandler{
		service: service,
		log:     log.With(zap.String("handler", "offer")),
	}
}

func (h *OfferHandler) ListPackages(w http.ResponseWriter, r *http.Request) {
	// Every failing query parameter is reported, not just the first
	params, errs := request.ParseOfferListParams(r.URL.Query())
	if errs != nil {
		h.log.Warn("Invalid listing parameters", zap.Any("errors", errs))
		utils.ResponseBadRequest(w, "Invalid query parameters", errs)
		return
	}

	result, err := h.service.ListPackages(r.Context(), params)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Packages retrieved", result)
}

func (h *OfferHandler) GetPackage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.service.GetPackage(r.Context(), id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Package retrieved", result)
}

func (h *OfferHandler) GetOfferDetail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.service.GetOfferDetail(r.Context(), id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Offer retrieved", result)
}

func (h *OfferHandler) CreatePackage(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Missing user context")
		return
	}

	var req request.CreatePackageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Warn("Invalid package create body", zap.Error(err))
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.service.CreatePackage(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseCreated(w, "Package created", result)
}

func (h *OfferHandler) UpdatePackage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Missing user context")
		return
	}

	var req request.UpdatePackageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Warn("Invalid package update body", zap.Error(err))
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.service.UpdatePackage(r.Context(), id, userID, &req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Package updated", result)
}

func (h *OfferHandler) DeletePackage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.DeletePackage(r.Context(), id); err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Package deleted", nil)
}

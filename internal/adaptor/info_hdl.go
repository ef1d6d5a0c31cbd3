package adaptor

import (
	"net/http"

	"freelance-market/internal/usecase"
	"freelance-market/pkg/utils"

	"go.uber.org/zap"
)

type InfoHandler struct {
	service usecase.InfoService
	log     *zap.Logger
}

func NewInfoHandler(service usecase.InfoService, log *zap.Logger) *InfoHandler {
	return &InfoHandler{
		service: service,
		log:     log.With(zap.String("handler", "info")),
	}
}

func (h *InfoHandler) GetBaseInfo(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetBaseInfo(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Base info retrieved", result)
}

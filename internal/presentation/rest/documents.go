package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pymecredit/creditrisk/internal/application/usecase"
)

// DocumentHandler serves the document registry.
type DocumentHandler struct {
	list   *usecase.ListDocumentsUseCase
	logger *slog.Logger
}

func NewDocumentHandler(list *usecase.ListDocumentsUseCase, logger *slog.Logger) *DocumentHandler {
	return &DocumentHandler{list: list, logger: logger}
}

func (h *DocumentHandler) RegisterRoutes(r chi.Router) {
	r.Get("/companies/{company}/documents", h.listByCompany)
}

func (h *DocumentHandler) listByCompany(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	company := chi.URLParam(r, "company")

	listing, err := h.list.Execute(ctx, company)
	if err != nil {
		h.logger.WarnContext(ctx, "list documents failed", "company", company, "error", err)
		writeError(w, err, nil)
		return
	}
	writeJSON(w, http.StatusOK, listing)
}

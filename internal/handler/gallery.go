package handler

import (
	"net/http"

	"github.com/alex38x15-dot/nebula-draw-magic/internal/auth"
	"github.com/alex38x15-dot/nebula-draw-magic/internal/record"
	"github.com/samber/do"
)

const galleryLimit = 50

// GalleryHandler serves read-only listings of generated images: the caller's
// own history and the public gallery.
type GalleryHandler struct {
	verifier auth.Verifier
	records  record.Store
}

func NewGalleryHandler(i *do.Injector) (*GalleryHandler, error) {
	return &GalleryHandler{
		verifier: do.MustInvoke[auth.Verifier](i),
		records:  do.MustInvoke[record.Store](i),
	}, nil
}

func (h *GalleryHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	subject, err := authenticate(r, h.verifier)
	if err != nil {
		writeError(w, r, err)
		return
	}

	records, err := h.records.ListByOwner(r.Context(), subject, galleryLimit)
	if err != nil {
		writeError(w, r, failFrom(KindPersistence, err))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"images": records})
}

func (h *GalleryHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	records, err := h.records.ListPublic(r.Context(), galleryLimit)
	if err != nil {
		writeError(w, r, failFrom(KindPersistence, err))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"images": records})
}

package handler

import (
	"net/http"

	"github.com/alex38x15-dot/nebula-draw-magic/internal/feed"
	"github.com/alex38x15-dot/nebula-draw-magic/internal/page"
	"github.com/alex38x15-dot/nebula-draw-magic/internal/record"
	"github.com/samber/do"
)

// SiteHandler serves the human-facing surfaces: the landing page and the RSS
// feed of public images.
type SiteHandler struct {
	feed      *feed.Generator
	templator *page.Templator
	records   record.Store
}

func NewSiteHandler(i *do.Injector) (*SiteHandler, error) {
	return &SiteHandler{
		feed:      do.MustInvoke[*feed.Generator](i),
		templator: do.MustInvoke[*page.Templator](i),
		records:   do.MustInvoke[record.Store](i),
	}, nil
}

func (h *SiteHandler) Index(w http.ResponseWriter, r *http.Request) {
	records, err := h.records.ListPublic(r.Context(), galleryLimit)
	if err != nil {
		writeError(w, r, failFrom(KindPersistence, err))
		return
	}

	html, err := h.templator.Render(r.Context(), page.Params{Images: records})
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(html)
}

func (h *SiteHandler) Feed(w http.ResponseWriter, r *http.Request) {
	rss, err := h.feed.Generate(r.Context())
	if err != nil {
		writeError(w, r, failFrom(KindPersistence, err))
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	_, _ = w.Write(rss)
}

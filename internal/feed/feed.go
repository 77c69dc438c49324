package feed

import (
	"context"
	"time"

	"github.com/alex38x15-dot/nebula-draw-magic/internal/config"
	"github.com/alex38x15-dot/nebula-draw-magic/internal/log"
	"github.com/alex38x15-dot/nebula-draw-magic/internal/record"
	"github.com/gorilla/feeds"
	"github.com/samber/do"
)

const itemLimit = 50

// Generator renders the public gallery as an RSS feed. Only public records
// ever appear in it.
type Generator struct {
	records record.Store
	siteURL string
}

func NewGenerator(i *do.Injector) (*Generator, error) {
	return &Generator{
		records: do.MustInvoke[record.Store](i),
		siteURL: do.MustInvoke[config.Config](i).SiteURL,
	}, nil
}

func (g *Generator) Generate(ctx context.Context) ([]byte, error) {
	log := log.FromContextOrDiscard(ctx).WithGroup("feed")
	log.Info("generating rss feed")

	records, err := g.records.ListPublic(ctx, itemLimit)
	if err != nil {
		return nil, err
	}

	feed := feeds.Feed{
		Title:       "Nebula Draw",
		Description: "Latest public AI-generated images",
		Link:        &feeds.Link{Href: g.siteURL},
		Updated:     time.Now(),
	}
	for _, r := range records {
		feed.Add(&feeds.Item{
			Id:      r.ID,
			Title:   r.Prompt,
			Link:    &feeds.Link{Href: r.ImageURL},
			Created: r.CreatedAt,
		})
	}

	rss, err := feed.ToRss()
	return []byte(rss), err
}

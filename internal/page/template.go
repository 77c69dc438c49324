package page

import (
	"bytes"
	"context"
	_ "embed"
	"html/template"
	"sync"

	"github.com/alex38x15-dot/nebula-draw-magic/internal/log"
	"github.com/alex38x15-dot/nebula-draw-magic/internal/record"
)

//go:embed assets/index.html
var indexTmpl string

type Params struct {
	Images []record.Record
}

// Templator renders the landing page with the latest public images.
type Templator struct {
	tmpl *template.Template
	once sync.Once
}

func (t *Templator) Render(ctx context.Context, params Params) ([]byte, error) {
	t.once.Do(func() {
		t.tmpl = template.Must(template.New("index").Parse(indexTmpl))
	})

	log := log.FromContextOrDiscard(ctx).WithGroup("page")
	log.Info("rendering landing page", "images", len(params.Images))

	var data bytes.Buffer
	if err := t.tmpl.Execute(&data, params); err != nil {
		return nil, err
	}
	return data.Bytes(), nil
}

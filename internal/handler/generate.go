package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/alex38x15-dot/nebula-draw-magic/internal/auth"
	"github.com/alex38x15-dot/nebula-draw-magic/internal/image"
	"github.com/alex38x15-dot/nebula-draw-magic/internal/log"
	"github.com/alex38x15-dot/nebula-draw-magic/internal/prompt"
	"github.com/alex38x15-dot/nebula-draw-magic/internal/record"
	"github.com/alex38x15-dot/nebula-draw-magic/internal/store"
	"github.com/samber/do"
)

type GenerateInput struct {
	Prompt   string `json:"prompt"`
	IsPublic bool   `json:"isPublic"`
}

type GenerateOutput struct {
	ImageURL string `json:"imageUrl"`
	IsPublic bool   `json:"isPublic"`
	Prompt   string `json:"prompt"`
	ID       string `json:"id"`
}

// GenerateHandler runs the image-generation pipeline: authenticate, validate,
// call the model, decode, upload, persist. Stages run strictly in that order
// and the first failure aborts the rest.
type GenerateHandler struct {
	apiKey    string
	verifier  auth.Verifier
	generator image.Generator
	uploader  store.Uploader
	remover   store.Remover
	records   record.Store
}

func NewGenerateHandler(i *do.Injector) (*GenerateHandler, error) {
	return &GenerateHandler{
		apiKey:    do.MustInvokeNamed[string](i, "google_ai_key"),
		verifier:  do.MustInvoke[auth.Verifier](i),
		generator: do.MustInvoke[image.Generator](i),
		uploader:  do.MustInvoke[store.Uploader](i),
		remover:   do.MustInvoke[store.Remover](i),
		records:   do.MustInvoke[record.Store](i),
	}, nil
}

func (h *GenerateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	out, err := h.handle(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *GenerateHandler) handle(r *http.Request) (GenerateOutput, error) {
	ctx := r.Context()

	// The key check runs before anything else so a misconfigured deployment is
	// visible on any request, valid or not.
	if h.apiKey == "" {
		return GenerateOutput{}, fail(KindConfiguration, "GOOGLE_AI_API_KEY is not configured")
	}

	subject, err := authenticate(r, h.verifier)
	if err != nil {
		return GenerateOutput{}, err
	}

	var input GenerateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		return GenerateOutput{}, failFrom(KindValidation, err)
	}

	input.Prompt = prompt.Normalize(input.Prompt)
	if input.Prompt == "" {
		return GenerateOutput{}, fail(KindValidation, "Prompt is required")
	}

	log := log.FromContextOrDiscard(ctx).WithGroup("generate").With(
		"user", subject,
		"prompt", input.Prompt,
		"isPublic", input.IsPublic,
	)
	log.Info("handling generation request")

	payload, err := h.generator.Generate(ctx, input.Prompt)
	if err != nil {
		return GenerateOutput{}, failFrom(KindProvider, err)
	}

	data, err := image.Decode(payload)
	if err != nil {
		return GenerateOutput{}, failFrom(KindProvider, err)
	}

	uploaded, err := h.uploader.Upload(ctx, store.UploadParams{
		Owner:  subject,
		Data:   data,
		Public: input.IsPublic,
	})
	if err != nil {
		return GenerateOutput{}, failFrom(KindStorage, err)
	}

	rec, err := h.records.Insert(ctx, record.InsertParams{
		UserID:   subject,
		Prompt:   input.Prompt,
		ImageURL: uploaded.URL,
		FilePath: uploaded.Key,
		IsPublic: input.IsPublic,
	})
	if err != nil {
		// The object is already in the bucket; without a row pointing at it,
		// it would be orphaned. Best effort, the insert error still wins.
		if rmErr := h.remover.Remove(ctx, uploaded.Bucket, uploaded.Key); rmErr != nil {
			log.Error("cleanup of uploaded object failed", "bucket", uploaded.Bucket, "key", uploaded.Key, "err", rmErr)
		}
		return GenerateOutput{}, failFrom(KindPersistence, err)
	}

	log.Info("generation complete", "id", rec.ID, "url", uploaded.URL)
	return GenerateOutput{
		ImageURL: uploaded.URL,
		IsPublic: rec.IsPublic,
		Prompt:   rec.Prompt,
		ID:       rec.ID,
	}, nil
}

// authenticate pulls the bearer credential off the request and resolves the
// caller identity. A missing credential and a rejected one are distinct
// outcomes, both 401.
func authenticate(r *http.Request, verifier auth.Verifier) (string, error) {
	header := r.Header.Get("Authorization")
	token := strings.TrimPrefix(header, "Bearer ")
	if header == "" || token == header {
		return "", fail(KindAuthentication, "Authorization required")
	}
	subject, err := verifier.Verify(r.Context(), token)
	if err != nil {
		return "", &Error{Kind: KindAuthentication, Message: "Invalid authentication", Err: err}
	}
	return subject, nil
}

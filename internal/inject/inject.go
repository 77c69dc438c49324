package inject

import (
	"context"
	"fmt"
	"net/http"

	"github.com/alex38x15-dot/nebula-draw-magic/internal/auth"
	"github.com/alex38x15-dot/nebula-draw-magic/internal/config"
	"github.com/alex38x15-dot/nebula-draw-magic/internal/feed"
	"github.com/alex38x15-dot/nebula-draw-magic/internal/handler"
	"github.com/alex38x15-dot/nebula-draw-magic/internal/image"
	"github.com/alex38x15-dot/nebula-draw-magic/internal/log"
	"github.com/alex38x15-dot/nebula-draw-magic/internal/page"
	"github.com/alex38x15-dot/nebula-draw-magic/internal/param"
	"github.com/alex38x15-dot/nebula-draw-magic/internal/record"
	"github.com/alex38x15-dot/nebula-draw-magic/internal/store"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/samber/do"
)

// Setup builds the service graph once at startup. Every client in here is
// long-lived and shared across requests.
func Setup(ctx context.Context, cfg config.Config) *do.Injector {
	log := log.FromContextOrDiscard(ctx)

	injector := do.NewWithOpts(&do.InjectorOpts{
		Logf: func(format string, args ...any) {
			log.Info(fmt.Sprintf(format, args...))
		},
	})

	do.ProvideValue[config.Config](injector, cfg)
	do.ProvideValue[*http.Client](injector, http.DefaultClient)

	do.Provide[aws.Config](injector, func(i *do.Injector) (aws.Config, error) {
		return awsconfig.LoadDefaultConfig(ctx)
	})
	do.Provide[*ssm.Client](injector, func(i *do.Injector) (*ssm.Client, error) {
		return ssm.NewFromConfig(do.MustInvoke[aws.Config](i)), nil
	})
	do.Provide[*s3.Client](injector, func(i *do.Injector) (*s3.Client, error) {
		return s3.NewFromConfig(do.MustInvoke[aws.Config](i)), nil
	})
	do.Provide[*pgxpool.Pool](injector, func(i *do.Injector) (*pgxpool.Pool, error) {
		return pgxpool.New(ctx, cfg.DatabaseURL)
	})

	do.Provide[param.Fetcher](injector, param.NewParameterStoreFetcher)

	do.ProvideNamed[string](injector, "google_ai_key", func(i *do.Injector) (string, error) {
		if cfg.GoogleAIKey != "" {
			return cfg.GoogleAIKey, nil
		}
		if cfg.GoogleAIKeyParam != "" {
			return do.MustInvoke[param.Fetcher](i).Fetch(ctx, cfg.GoogleAIKeyParam)
		}
		// An empty key is not a wiring error; the generate handler reports it
		// as a 500 on the first request.
		return "", nil
	})
	do.ProvideNamed[string](injector, "jwt_secret", func(i *do.Injector) (string, error) {
		if cfg.JWTSecret != "" {
			return cfg.JWTSecret, nil
		}
		return do.MustInvoke[param.Fetcher](i).Fetch(ctx, cfg.JWTSecretParam)
	})

	do.Provide[auth.Verifier](injector, auth.NewJWTVerifier)
	do.Provide[image.Generator](injector, func(i *do.Injector) (image.Generator, error) {
		return &image.GeminiGenerator{
			Client: do.MustInvoke[*http.Client](i),
			Key:    do.MustInvokeNamed[string](i, "google_ai_key"),
			Model:  cfg.GeminiModel,
		}, nil
	})
	do.Provide[*store.S3Store](injector, func(i *do.Injector) (*store.S3Store, error) {
		return &store.S3Store{
			Client:        do.MustInvoke[*s3.Client](i),
			PublicBucket:  cfg.PublicBucket,
			PrivateBucket: cfg.PrivateBucket,
			BaseURL:       cfg.StorageBaseURL,
		}, nil
	})
	do.Provide[store.Uploader](injector, func(i *do.Injector) (store.Uploader, error) {
		return do.MustInvoke[*store.S3Store](i), nil
	})
	do.Provide[store.Remover](injector, func(i *do.Injector) (store.Remover, error) {
		return do.MustInvoke[*store.S3Store](i), nil
	})
	do.Provide[record.Store](injector, record.NewPostgresStore)
	do.Provide[*feed.Generator](injector, feed.NewGenerator)
	do.ProvideValue[*page.Templator](injector, &page.Templator{})

	do.Provide[*handler.GenerateHandler](injector, handler.NewGenerateHandler)
	do.Provide[*handler.GalleryHandler](injector, handler.NewGalleryHandler)
	do.Provide[*handler.SiteHandler](injector, handler.NewSiteHandler)
	do.Provide[*handler.Router](injector, handler.NewRouter)

	return injector
}

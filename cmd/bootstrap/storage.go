package bootstrap

import (
	"lensfolio/internal/infra/storage"
	"lensfolio/internal/pkg/config"
	"lensfolio/internal/usecase"

	"go.uber.org/fx"
)

var StorageModule = fx.Module("storage",
	fx.Provide(
		fx.Annotate(
			NewUploadStore,
			fx.As(new(usecase.PhotoStore)),
		),
	),
)

func NewUploadStore(cfg config.Config) (*storage.UploadStore, error) {
	return storage.NewUploadStore(cfg.Uploads.Dir)
}

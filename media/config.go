package media

import (
	"context"
	"fmt"

	"github.com/rpupo63/portfolio-site/config"
	"github.com/rpupo63/portfolio-site/errs"
)

// NewStoreFromConfig picks the backend named by MEDIA_BACKEND: "local" serves
// MEDIA_DIR, "s3" uses MEDIA_BUCKET under MEDIA_PREFIX.
func NewStoreFromConfig(ctx context.Context, c map[string]string) (Store, error) {
	switch backend := config.GetString(c, "MEDIA_BACKEND", "local"); backend {
	case "local":
		return NewLocalStore(config.GetString(c, "MEDIA_DIR", "static/images")), nil
	case "s3":
		return NewS3Store(ctx, config.GetString(c, "MEDIA_BUCKET", ""), config.GetString(c, "MEDIA_PREFIX", ""))
	default:
		return nil, errs.NewConfigInvalidError("MEDIA_BACKEND", fmt.Errorf("unsupported backend %q", backend))
	}
}

package api

import (
	"io"
	"mime"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rpupo63/portfolio-site/errs"
	"github.com/rpupo63/portfolio-site/media"
	"github.com/rs/zerolog/log"
)

type mediaHandler struct {
	renderer Renderer
	store    media.Store
}

func newMediaHandler(store media.Store) mediaHandler {
	logger := log.With().Str("handlerName", "mediaHandler").Logger()
	return mediaHandler{renderer: NewRenderer(logger), store: store}
}

// serve streams /media/<name> from the configured store. Backups made by the
// image replace tool are not public.
func (h mediaHandler) serve() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := path.Clean("/" + chi.URLParam(r, "*"))[1:]
		if name == "" || h.store == nil || strings.HasPrefix(name+"/", media.BackupPrefix) {
			h.renderer.RenderError(w, r, errs.NewNotFound("media"))
			return
		}

		rc, err := h.store.Open(r.Context(), name)
		if err != nil {
			if errs.IsFileMissingError(err) {
				err = errs.NewNotFound("media")
			}
			h.renderer.RenderError(w, r, err)
			return
		}
		defer rc.Close()

		if rs, ok := rc.(io.ReadSeeker); ok {
			http.ServeContent(w, r, name, time.Time{}, rs)
			return
		}

		if ct := mime.TypeByExtension(path.Ext(name)); ct != "" {
			w.Header().Set("Content-Type", ct)
		}
		w.Header().Set("Cache-Control", "public, max-age=3600")
		if _, err := io.Copy(w, rc); err != nil {
			log.Warn().Err(err).Str("name", name).Msg("media stream interrupted")
		}
	}
}

package api

import (
	"time"

	"github.com/rpupo63/portfolio-site/database"
	"github.com/rpupo63/portfolio-site/media"
)

type handlerDeps struct {
	startupTime     time.Time
	notifier        ContactNotifier
	mediaStore      media.Store
	flashes         flashStore
	csrfEnabled     bool
	backendPassword string
	adminSecret     []byte
}

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, deps handlerDeps) *routeHandlers {
	return &routeHandlers{
		pageHandler:    newPageHandler(database, deps.startupTime),
		contactHandler: newContactHandler(database.ContactRepo(), deps.notifier, deps.flashes, deps.csrfEnabled),
		adminHandler:   newAdminHandler(database),
		authHandler:    newAuthHandler(deps.backendPassword, deps.adminSecret),
		mediaHandler:   newMediaHandler(deps.mediaStore),
	}
}

package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rpupo63/portfolio-site/database"
	"github.com/rpupo63/portfolio-site/errs"
	"github.com/rpupo63/portfolio-site/models"
	"github.com/rpupo63/portfolio-site/views"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// featuredLimit is how many featured projects the home page shows.
const featuredLimit = 3

type pageHandler struct {
	renderer       Renderer
	responder      Responder
	logger         zerolog.Logger
	db             database.Database
	projectRepo    *database.ProjectRepo
	skillRepo      *database.SkillRepo
	experienceRepo *database.ExperienceRepo
	educationRepo  *database.EducationRepo
	startupTime    time.Time
}

func newPageHandler(db database.Database, startupTime time.Time) pageHandler {
	logger := log.With().Str("handlerName", "pageHandler").Logger()

	return pageHandler{
		renderer:       NewRenderer(logger),
		responder:      NewResponder(logger),
		logger:         logger,
		db:             db,
		projectRepo:    db.ProjectRepo(),
		skillRepo:      db.SkillRepo(),
		experienceRepo: db.ExperienceRepo(),
		educationRepo:  db.EducationRepo(),
		startupTime:    startupTime,
	}
}

// home shows up to three featured projects, newest first, every skill and the current position.
func (h pageHandler) home() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		featured, err := h.projectRepo.FindFeatured(ctx, featuredLimit, database.OrderByCreatedDesc)
		if err != nil {
			h.renderer.RenderError(w, r, wrapDatabaseError("find featured", "projects", err))
			return
		}

		skills, err := h.skillRepo.FindAll(ctx, database.OrderByCategoryName)
		if err != nil {
			h.renderer.RenderError(w, r, wrapDatabaseError("find", "skills", err))
			return
		}

		latest, err := h.experienceRepo.FindMostRecent(ctx, database.OrderByStartDateDesc)
		if err != nil {
			h.renderer.RenderError(w, r, wrapDatabaseError("find latest", "experience", err))
			return
		}

		h.renderer.Render(w, r, http.StatusOK, views.Home(
			views.Page{Title: "Home", Active: "home"},
			views.HomeData{Featured: featured, Skills: models.GroupSkills(skills), Latest: latest},
		))
	}
}

func (h pageHandler) about() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		experiences, err := h.experienceRepo.FindAll(ctx, database.OrderByStartDateDesc)
		if err != nil {
			h.renderer.RenderError(w, r, wrapDatabaseError("find", "experience", err))
			return
		}

		education, err := h.educationRepo.FindAll(ctx, database.OrderByStartDateDesc)
		if err != nil {
			h.renderer.RenderError(w, r, wrapDatabaseError("find", "education", err))
			return
		}

		skills, err := h.skillRepo.FindAll(ctx, database.OrderByCategoryName)
		if err != nil {
			h.renderer.RenderError(w, r, wrapDatabaseError("find", "skills", err))
			return
		}

		h.renderer.Render(w, r, http.StatusOK, views.About(
			views.Page{Title: "About", Active: "about"},
			views.AboutData{Experiences: experiences, Education: education, Skills: models.GroupSkills(skills)},
		))
	}
}

func (h pageHandler) projects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projectRepo.FindAll(r.Context(), database.OrderByCreatedDesc)
		if err != nil {
			h.renderer.RenderError(w, r, wrapDatabaseError("find", "projects", err))
			return
		}

		h.renderer.Render(w, r, http.StatusOK, views.Projects(views.Page{Title: "Projects", Active: "projects"}, projects))
	}
}

// projectDetail renders one project. Ids that do not parse cannot match a row,
// so they get the same 404 as a missing project.
func (h pageHandler) projectDetail() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := strconv.ParseUint(chi.URLParam(r, "projectID"), 10, 0)
		if err != nil || projectID == 0 {
			h.renderer.RenderError(w, r, errs.NewNotFound("project"))
			return
		}

		project, err := h.projectRepo.FindByID(r.Context(), uint(projectID))
		if err != nil {
			h.renderer.RenderError(w, r, wrapDatabaseError("find", "project", err))
			return
		}

		h.renderer.Render(w, r, http.StatusOK, views.ProjectDetail(views.Page{Title: project.Title, Active: "projects"}, project))
	}
}

// healthz reports process uptime and database reachability.
func (h pageHandler) healthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status, dbStatus := http.StatusOK, "ok"
		if err := h.db.Ping(); err != nil {
			h.logger.Error().Err(err).Msg("health check failed")
			status, dbStatus = http.StatusServiceUnavailable, "unreachable"
		}

		h.responder.WriteJSONStatus(w, status, map[string]any{
			"status":         http.StatusText(status),
			"database":       dbStatus,
			"uptime_seconds": int(time.Since(h.startupTime).Seconds()),
		})
	}
}

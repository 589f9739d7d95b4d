package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rpupo63/portfolio-site/database"
	"github.com/rpupo63/portfolio-site/errs"
	"github.com/rpupo63/portfolio-site/forms"
	"github.com/rpupo63/portfolio-site/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const maxAdminBody = 1 << 20

// adminHandler serves the JSON API behind /admin/api.
type adminHandler struct {
	responder      Responder
	logger         zerolog.Logger
	projectRepo    *database.ProjectRepo
	skillRepo      *database.SkillRepo
	experienceRepo *database.ExperienceRepo
	educationRepo  *database.EducationRepo
	contactRepo    *database.ContactRepo
}

func newAdminHandler(db database.Database) adminHandler {
	logger := log.With().Str("handlerName", "adminHandler").Logger()

	return adminHandler{
		responder:      NewResponder(logger),
		logger:         logger,
		projectRepo:    db.ProjectRepo(),
		skillRepo:      db.SkillRepo(),
		experienceRepo: db.ExperienceRepo(),
		educationRepo:  db.EducationRepo(),
		contactRepo:    db.ContactRepo(),
	}
}

func parseID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 0)
	if err != nil || id == 0 {
		return 0, errs.NewInvalidIDError("id")
	}
	return uint(id), nil
}

func decodeJSON(w http.ResponseWriter, r *http.Request, payload string, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxAdminBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return errs.NewMalformedPayloadError(payload, err)
	}
	return nil
}

// queryDate reads a YYYY-MM-DD query parameter. endOfDay moves the bound to
// the last instant of that day so "to" filters include it.
func queryDate(r *http.Request, key string, endOfDay bool) (*time.Time, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return nil, errs.NewInvalidFieldError(key, "expected YYYY-MM-DD")
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}

func queryDateRange(r *http.Request, prefix string) (database.DateRange, error) {
	from, err := queryDate(r, prefix+"_from", false)
	if err != nil {
		return database.DateRange{}, err
	}
	to, err := queryDate(r, prefix+"_to", true)
	if err != nil {
		return database.DateRange{}, err
	}
	return database.DateRange{From: from, To: to}, nil
}

func queryBool(r *http.Request, key string) (*bool, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, errs.NewInvalidFieldError(key, "expected true or false")
	}
	return &b, nil
}

// getEntity, createEntity, updateEntity and deleteEntity share the CRUD flow
// across record kinds.

func getEntity[T any](h adminHandler, entity string, find func(context.Context, uint) (*T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		item, err := find(r.Context(), id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", entity, err))
			return
		}
		h.responder.WriteJSON(w, item)
	}
}

func createEntity[T any](h adminHandler, entity string, setID func(*T, uint), add func(context.Context, *T) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var item T
		if err := decodeJSON(w, r, entity, &item); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		setID(&item, 0)

		if fields := forms.Validate(&item); len(fields) > 0 {
			h.responder.WriteValidationErrors(w, fields)
			return
		}

		if err := add(r.Context(), &item); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("insert", entity, err))
			return
		}

		h.logger.Info().Str("entity", entity).Str("admin", ctxGetAdminSubject(r.Context())).Msg("Record created")
		h.responder.WriteJSONStatus(w, http.StatusCreated, &item)
	}
}

func updateEntity[T any](
	h adminHandler,
	entity string,
	setID func(*T, uint),
	update func(context.Context, *T) error,
	find func(context.Context, uint) (*T, error),
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var item T
		if err := decodeJSON(w, r, entity, &item); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		setID(&item, id)

		if fields := forms.Validate(&item); len(fields) > 0 {
			h.responder.WriteValidationErrors(w, fields)
			return
		}

		if err := update(r.Context(), &item); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", entity, err))
			return
		}

		// Re-read so columns the update leaves alone come back populated
		saved, err := find(r.Context(), id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", entity, err))
			return
		}
		h.responder.WriteJSON(w, saved)
	}
}

func deleteEntity(h adminHandler, entity string, del func(context.Context, uint) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := del(r.Context(), id); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", entity, err))
			return
		}

		h.logger.Info().Str("entity", entity).Uint("id", id).Str("admin", ctxGetAdminSubject(r.Context())).Msg("Record deleted")
		w.WriteHeader(http.StatusNoContent)
	}
}

// Projects

func (h adminHandler) listProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		featured, err := queryBool(r, "featured")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		created, err := queryDateRange(r, "created")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		projects, err := h.projectRepo.Search(r.Context(), database.ProjectFilter{
			Search:   r.URL.Query().Get("q"),
			Featured: featured,
			Created:  created,
		}, database.OrderByCreatedDesc)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "projects", err))
			return
		}
		h.responder.WriteJSON(w, newListResponse(projects))
	}
}

func setProjectID(p *models.Project, id uint) { p.ID = id }

func (h adminHandler) getProject() http.HandlerFunc {
	return getEntity(h, "project", h.projectRepo.FindByID)
}

func (h adminHandler) createProject() http.HandlerFunc {
	return createEntity(h, "project", setProjectID, h.projectRepo.Add)
}

func (h adminHandler) updateProject() http.HandlerFunc {
	return updateEntity(h, "project", setProjectID, h.projectRepo.Update, h.projectRepo.FindByID)
}

func (h adminHandler) deleteProject() http.HandlerFunc {
	return deleteEntity(h, "project", h.projectRepo.Delete)
}

// setFeatured is the list_editable toggle of the project list.
// PATCH /admin/api/projects/{id}/featured {"featured": true}
func (h adminHandler) setFeatured() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req FeaturedRequest
		if err := decodeJSON(w, r, "featured", &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if req.Featured == nil {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("featured"))
			return
		}

		if err := h.projectRepo.SetFeatured(r.Context(), id, *req.Featured); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "project", err))
			return
		}

		project, err := h.projectRepo.FindByID(r.Context(), id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}
		h.responder.WriteJSON(w, project)
	}
}

// Skills

func (h adminHandler) listSkills() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		skills, err := h.skillRepo.Search(r.Context(), database.SkillFilter{
			Search:   q.Get("q"),
			Category: q.Get("category"),
		}, database.OrderByCategoryName)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "skills", err))
			return
		}
		h.responder.WriteJSON(w, newListResponse(skills))
	}
}

func setSkillID(s *models.Skill, id uint) { s.ID = id }

func (h adminHandler) getSkill() http.HandlerFunc {
	return getEntity(h, "skill", h.skillRepo.FindByID)
}

func (h adminHandler) createSkill() http.HandlerFunc {
	return createEntity(h, "skill", setSkillID, h.skillRepo.Add)
}

func (h adminHandler) updateSkill() http.HandlerFunc {
	return updateEntity(h, "skill", setSkillID, h.skillRepo.Update, h.skillRepo.FindByID)
}

func (h adminHandler) deleteSkill() http.HandlerFunc {
	return deleteEntity(h, "skill", h.skillRepo.Delete)
}

// Experience

func (h adminHandler) listExperiences() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start, err := queryDateRange(r, "start")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		q := r.URL.Query()
		experiences, err := h.experienceRepo.Search(r.Context(), database.ExperienceFilter{
			Search:  q.Get("q"),
			Company: q.Get("company"),
			Start:   start,
		}, database.OrderByStartDateDesc)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "experience", err))
			return
		}
		h.responder.WriteJSON(w, newListResponse(experiences))
	}
}

func setExperienceID(e *models.Experience, id uint) { e.ID = id }

func (h adminHandler) getExperience() http.HandlerFunc {
	return getEntity(h, "experience", h.experienceRepo.FindByID)
}

func (h adminHandler) createExperience() http.HandlerFunc {
	return createEntity(h, "experience", setExperienceID, h.experienceRepo.Add)
}

func (h adminHandler) updateExperience() http.HandlerFunc {
	return updateEntity(h, "experience", setExperienceID, h.experienceRepo.Update, h.experienceRepo.FindByID)
}

func (h adminHandler) deleteExperience() http.HandlerFunc {
	return deleteEntity(h, "experience", h.experienceRepo.Delete)
}

// Education

func (h adminHandler) listEducation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start, err := queryDateRange(r, "start")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		q := r.URL.Query()
		education, err := h.educationRepo.Search(r.Context(), database.EducationFilter{
			Search:      q.Get("q"),
			Institution: q.Get("institution"),
			Start:       start,
		}, database.OrderByStartDateDesc)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "education", err))
			return
		}
		h.responder.WriteJSON(w, newListResponse(education))
	}
}

func setEducationID(e *models.Education, id uint) { e.ID = id }

func (h adminHandler) getEducation() http.HandlerFunc {
	return getEntity(h, "education", h.educationRepo.FindByID)
}

func (h adminHandler) createEducation() http.HandlerFunc {
	return createEntity(h, "education", setEducationID, h.educationRepo.Add)
}

func (h adminHandler) updateEducation() http.HandlerFunc {
	return updateEntity(h, "education", setEducationID, h.educationRepo.Update, h.educationRepo.FindByID)
}

func (h adminHandler) deleteEducation() http.HandlerFunc {
	return deleteEntity(h, "education", h.educationRepo.Delete)
}

// Contacts are read-only here.

func (h adminHandler) listContacts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		created, err := queryDateRange(r, "created")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		contacts, err := h.contactRepo.Search(r.Context(), database.ContactFilter{
			Search:  r.URL.Query().Get("q"),
			Created: created,
		}, database.OrderByCreatedDesc)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "contacts", err))
			return
		}
		h.responder.WriteJSON(w, newListResponse(contacts))
	}
}

func (h adminHandler) getContact() http.HandlerFunc {
	return getEntity(h, "contact", h.contactRepo.FindByID)
}

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rpupo63/portfolio-site/errs"
)

// setupPageRoutes registers the public pages, assets and probes.
func setupPageRoutes(r chi.Router, handlers *routeHandlers, staticDir string) {
	r.Get("/", handlers.pageHandler.home())
	r.Get("/about/", handlers.pageHandler.about())
	r.Get("/about", redirectTo("/about/"))
	r.Get("/projects/", handlers.pageHandler.projects())
	r.Get("/projects", redirectTo("/projects/"))
	r.Get("/projects/{projectID}/", handlers.pageHandler.projectDetail())
	r.Get("/projects/{projectID}", func(w http.ResponseWriter, req *http.Request) {
		redirectTo("/projects/"+chi.URLParam(req, "projectID")+"/")(w, req)
	})

	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))
	r.Get("/media/*", handlers.mediaHandler.serve())

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/healthz", handlers.pageHandler.healthz())
}

// setupContactRoutes registers the contact form. Only submissions count against the limiter.
func setupContactRoutes(r chi.Router, handlers *routeHandlers, middlewares []func(http.Handler) http.Handler, limiter *clientLimiter) {
	r.Get("/contact", redirectTo("/contact/"))
	r.Group(func(r chi.Router) {
		r.Use(middlewares...)

		r.Get("/contact/", handlers.contactHandler.showForm())
		r.With(rateLimitByIP(limiter, handlers.contactHandler.rateLimited())).
			Post("/contact/", handlers.contactHandler.submit())
	})
}

// setupAdminRoutes registers login and the authenticated admin API
func setupAdminRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware, acceptedOrigins []string, loginLimiter *clientLimiter) {
	r.Route("/admin", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   acceptedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: false,
			MaxAge:           300,
		}))

		r.With(rateLimitByIP(loginLimiter, func(w http.ResponseWriter, req *http.Request) {
			handlers.authHandler.responder.WriteError(w, errs.NewTooManyRequestsError("admin login"))
		})).Post("/login", handlers.authHandler.login())

		// Authenticated routes
		r.Route("/api", func(r chi.Router) {
			r.Use(authMiddleware.authenticate)

			r.Get("/projects", handlers.adminHandler.listProjects())
			r.Post("/projects", handlers.adminHandler.createProject())
			r.Get("/projects/{id}", handlers.adminHandler.getProject())
			r.Put("/projects/{id}", handlers.adminHandler.updateProject())
			r.Delete("/projects/{id}", handlers.adminHandler.deleteProject())
			r.Patch("/projects/{id}/featured", handlers.adminHandler.setFeatured())

			r.Get("/skills", handlers.adminHandler.listSkills())
			r.Post("/skills", handlers.adminHandler.createSkill())
			r.Get("/skills/{id}", handlers.adminHandler.getSkill())
			r.Put("/skills/{id}", handlers.adminHandler.updateSkill())
			r.Delete("/skills/{id}", handlers.adminHandler.deleteSkill())

			r.Get("/experiences", handlers.adminHandler.listExperiences())
			r.Post("/experiences", handlers.adminHandler.createExperience())
			r.Get("/experiences/{id}", handlers.adminHandler.getExperience())
			r.Put("/experiences/{id}", handlers.adminHandler.updateExperience())
			r.Delete("/experiences/{id}", handlers.adminHandler.deleteExperience())

			r.Get("/education", handlers.adminHandler.listEducation())
			r.Post("/education", handlers.adminHandler.createEducation())
			r.Get("/education/{id}", handlers.adminHandler.getEducation())
			r.Put("/education/{id}", handlers.adminHandler.updateEducation())
			r.Delete("/education/{id}", handlers.adminHandler.deleteEducation())

			r.Get("/contacts", handlers.adminHandler.listContacts())
			r.Get("/contacts/{id}", handlers.adminHandler.getContact())
		})
	})
}

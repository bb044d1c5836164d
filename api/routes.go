package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires the public surface and the authenticated dashboard
// surface under /api.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	r.Route("/api", func(r chi.Router) {
		// Public endpoints: registration, login, landing-page reads,
		// contact relay.
		r.Post("/users", handlers.userHandler.register())
		r.Post("/users/login", handlers.userHandler.login())
		r.Get("/projects/featured", handlers.projectHandler.getFeaturedProjects())
		r.Get("/skills", handlers.skillHandler.getAllSkills())
		r.Get("/skills/category/{category}", handlers.skillHandler.getSkillsByCategory())
		r.Post("/contact", handlers.contactHandler.sendMessage())

		// Everything below requires a bearer token.
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.authenticate)

			r.Get("/users/me", handlers.userHandler.me())
			r.Post("/users/change-password", handlers.userHandler.changePassword())

			r.Get("/projects", handlers.projectHandler.getMyProjects())
			r.Post("/projects", handlers.projectHandler.createProject())
			r.Put("/projects/{projectID}", handlers.projectHandler.updateProject())
			r.Delete("/projects/{projectID}", handlers.projectHandler.deleteProject())

			r.Post("/skills", handlers.skillHandler.createSkill())
			r.Put("/skills/{skillID}", handlers.skillHandler.updateSkill())
			r.Delete("/skills/{skillID}", handlers.skillHandler.deleteSkill())

			r.Get("/goals", handlers.goalHandler.getMyGoals())
			r.Post("/goals", handlers.goalHandler.createGoal())
			r.Put("/goals/{goalID}", handlers.goalHandler.updateGoal())
			r.Delete("/goals/{goalID}", handlers.goalHandler.deleteGoal())
		})
	})
}

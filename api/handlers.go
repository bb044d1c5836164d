package api

import (
	"github.com/dmatos/portfolio-backend/auth"
	"github.com/dmatos/portfolio-backend/database"
)

// routeHandlers groups every resource controller behind the router.
type routeHandlers struct {
	userHandler    userHandler
	projectHandler projectHandler
	skillHandler   skillHandler
	goalHandler    goalHandler
	contactHandler contactHandler
}

func initializeHandlers(db database.Database, tokens *auth.TokenService, mail mailer, production bool) *routeHandlers {
	return &routeHandlers{
		userHandler:    newUserHandler(db.UserRepo(), tokens, production),
		projectHandler: newProjectHandler(db.ProjectRepo(), production),
		skillHandler:   newSkillHandler(db.SkillRepo(), production),
		goalHandler:    newGoalHandler(db.GoalRepo(), production),
		contactHandler: newContactHandler(mail, production),
	}
}

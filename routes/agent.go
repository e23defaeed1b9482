package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rtharindu/echannaling-admin/middleware"
	"github.com/rtharindu/echannaling-admin/models"
)

func SetupAgentRoutes(api fiber.Router, d Deps) {
	agents := secured(api, "/agents", d)
	h := d.Agents

	agents.Post("/", adminOnly, middleware.ValidateBody[models.CreateAgentInput](), h.CreateAgent)
	agents.Get("/", adminOrSuper, middleware.ValidateQuery[models.AgentQuery](), h.GetAllAgents)
	agents.Get("/stats", adminOrSuper, h.GetAgentStats)
	agents.Get("/:id", adminOrSuper, validID, h.GetAgent)
	agents.Put("/:id", adminOnly, validID, middleware.ValidateBody[models.UpdateAgentInput](), h.UpdateAgent)
	agents.Delete("/:id", adminOnly, validID, h.DeleteAgent)
}

package controllers

import (
	"context"
	"errors"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/rtharindu/echannaling-admin/events"
	"github.com/rtharindu/echannaling-admin/middleware"
	"github.com/rtharindu/echannaling-admin/models"
	"github.com/rtharindu/echannaling-admin/services"
	"github.com/rtharindu/echannaling-admin/utils"
)

type AgentStore interface {
	List(ctx context.Context, q models.AgentQuery) ([]models.Agent, int64, error)
	GetByID(ctx context.Context, id string) (*models.Agent, error)
	Create(ctx context.Context, in models.CreateAgentInput) (*models.Agent, error)
	Update(ctx context.Context, id string, in models.UpdateAgentInput) (*models.Agent, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (services.AgentStats, error)
}

type WelcomeMailer interface {
	SendWelcomeEmail(to, name string) error
}

type AgentController struct {
	agents AgentStore
	mailer WelcomeMailer
	audit  auditor
	log    zerolog.Logger

	mail sync.WaitGroup
}

// NewAgentController wires the handlers. mailer may be nil when SMTP is not
// configured.
func NewAgentController(agents AgentStore, mailer WelcomeMailer, pub events.Publisher, log zerolog.Logger) *AgentController {
	log = log.With().Str("controller", "agent").Logger()
	return &AgentController{
		agents: agents,
		mailer: mailer,
		audit:  auditor{pub: pub, log: log},
		log:    log,
	}
}

// GetAllAgents godoc
// @Summary List agents
// @Tags agents
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Param search query string false "Matches name, email or company"
// @Param isActive query bool false "Active flag"
// @Param sortBy query string false "name | email | createdAt"
// @Param sortOrder query string false "asc | desc"
// @Router /api/agents [get]
func (h *AgentController) GetAllAgents(c *fiber.Ctx) error {
	q := middleware.Query[models.AgentQuery](c)

	agents, total, err := h.agents.List(c.UserContext(), q)
	if err != nil {
		h.log.Error().Err(err).Msg("get all agents failed")
		return utils.BadRequest(c, "Failed to retrieve agents")
	}
	h.log.Info().Int("count", len(agents)).Msg("returning agents")

	page, limit := utils.ResolvePage(q.Page, q.Limit)
	return utils.Paginated(c, agents, utils.NewPagination(page, limit, total), "Agents retrieved successfully")
}

// GetAgent godoc
// @Summary Get an agent by ID
// @Tags agents
// @Router /api/agents/{id} [get]
func (h *AgentController) GetAgent(c *fiber.Ctx) error {
	id := middleware.Params[models.IDParams](c).ID

	agent, err := h.agents.GetByID(c.UserContext(), id)
	if errors.Is(err, services.ErrNotFound) {
		return utils.NotFound(c, "Agent not found")
	}
	if err != nil {
		h.log.Error().Err(err).Str("agent_id", id).Msg("get agent failed")
		return utils.BadRequest(c, "Failed to retrieve agent")
	}
	return utils.Success(c, agent, "Agent retrieved successfully")
}

// CreateAgent godoc
// @Summary Create an agent
// @Tags agents
// @Router /api/agents [post]
func (h *AgentController) CreateAgent(c *fiber.Ctx) error {
	in := middleware.Body[models.CreateAgentInput](c)

	agent, err := h.agents.Create(c.UserContext(), in)
	if err != nil {
		h.log.Error().Err(err).Msg("create agent failed")
		if errors.Is(err, services.ErrDuplicate) {
			return utils.BadRequest(c, "Email already exists")
		}
		return utils.BadRequest(c, "Failed to create agent")
	}

	h.log.Info().Str("agent_id", agent.ID).Msg("created agent")
	h.audit.record(c, "CREATE", "agent", agent.ID)
	h.sendWelcome(agent.ID, agent.Email, agent.Name)
	return utils.Created(c, agent, "Agent created successfully")
}

// sendWelcome mails the new agent in the background. Failures are logged
// and never reach the client.
func (h *AgentController) sendWelcome(id, email, name string) {
	if h.mailer == nil {
		return
	}
	h.mail.Add(1)
	go func() {
		defer h.mail.Done()
		if err := h.mailer.SendWelcomeEmail(email, name); err != nil {
			h.log.Warn().Err(err).Str("agent_id", id).Msg("failed to send welcome email")
		}
	}()
}

// WaitForMail blocks until queued welcome emails have been attempted or ctx
// is done.
func (h *AgentController) WaitForMail(ctx context.Context) {
	done := make(chan struct{})
	go func() {
		h.mail.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		h.log.Warn().Msg("gave up waiting for welcome emails")
	}
}

func (h *AgentController) UpdateAgent(c *fiber.Ctx) error {
	id := middleware.Params[models.IDParams](c).ID
	in := middleware.Body[models.UpdateAgentInput](c)

	agent, err := h.agents.Update(c.UserContext(), id, in)
	switch {
	case errors.Is(err, services.ErrNotFound):
		return utils.NotFound(c, "Agent not found")
	case errors.Is(err, services.ErrDuplicate):
		return utils.BadRequest(c, "Email already exists")
	case err != nil:
		h.log.Error().Err(err).Str("agent_id", id).Msg("update agent failed")
		return utils.BadRequest(c, "Failed to update agent")
	}

	h.log.Info().Str("agent_id", id).Msg("updated agent")
	h.audit.record(c, "UPDATE", "agent", id)
	return utils.Success(c, agent, "Agent updated successfully")
}

func (h *AgentController) DeleteAgent(c *fiber.Ctx) error {
	id := middleware.Params[models.IDParams](c).ID
	ctx := c.UserContext()

	if _, err := h.agents.GetByID(ctx, id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.NotFound(c, "Agent not found")
		}
		h.log.Error().Err(err).Str("agent_id", id).Msg("delete agent lookup failed")
		return utils.BadRequest(c, "Failed to delete agent")
	}
	if err := h.agents.Delete(ctx, id); err != nil {
		h.log.Error().Err(err).Str("agent_id", id).Msg("delete agent failed")
		return utils.BadRequest(c, "Failed to delete agent")
	}

	h.log.Info().Str("agent_id", id).Msg("deleted agent")
	h.audit.record(c, "DELETE", "agent", id)
	return utils.Success(c, nil, "Agent deleted successfully")
}

func (h *AgentController) GetAgentStats(c *fiber.Ctx) error {
	stats, err := h.agents.Stats(c.UserContext())
	if err != nil {
		h.log.Error().Err(err).Msg("get agent stats failed")
		return utils.BadRequest(c, "Failed to retrieve agent stats")
	}
	return utils.Success(c, stats, "Agent stats retrieved successfully")
}

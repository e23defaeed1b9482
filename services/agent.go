package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/rtharindu/echannaling-admin/models"
	"github.com/rtharindu/echannaling-admin/utils"
)

var agentSortColumns = map[string]string{
	"name":      "name",
	"email":     "email",
	"createdAt": "created_at",
}

// AgentStats is the activity breakdown of agents.
type AgentStats struct {
	Total    int64 `json:"total"`
	Active   int64 `json:"active"`
	Inactive int64 `json:"inactive"`
}

// AgentService propagates every persistence error to the caller.
type AgentService struct {
	db  *gorm.DB
	log zerolog.Logger
}

func NewAgentService(db *gorm.DB, log zerolog.Logger) *AgentService {
	return &AgentService{db: db, log: log.With().Str("service", "agent").Logger()}
}

func withUserSummary(tx *gorm.DB) *gorm.DB {
	return tx.Preload("User", func(tx *gorm.DB) *gorm.DB {
		return tx.Select("id", "email", "name", "role")
	})
}

func (s *AgentService) filtered(ctx context.Context, q models.AgentQuery) *gorm.DB {
	tx := s.db.WithContext(ctx).Model(&models.Agent{}).
		Scopes(matchAny(q.Search, "name", "email", "company_name"))
	if q.IsActive != nil {
		tx = tx.Where("is_active = ?", *q.IsActive)
	}
	return tx
}

// List returns one page of agents together with the total number of
// agents matching the filters.
func (s *AgentService) List(ctx context.Context, q models.AgentQuery) ([]models.Agent, int64, error) {
	page, limit := utils.ResolvePage(q.Page, q.Limit)

	column, ok := agentSortColumns[q.SortBy]
	if !ok {
		column = "created_at"
	}
	direction := "desc"
	if q.SortOrder == "asc" {
		direction = "asc"
	}

	agents := []models.Agent{}
	var total int64

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.filtered(gctx, q).
			Scopes(withUserSummary).
			Order(column + " " + direction).
			Offset(utils.Offset(page, limit)).
			Limit(limit).
			Find(&agents).Error
	})
	g.Go(func() error {
		return s.filtered(gctx, q).Count(&total).Error
	})
	if err := g.Wait(); err != nil {
		s.log.Error().Err(err).Msg("error listing agents")
		return nil, 0, fmt.Errorf("list agents: %w", err)
	}
	return agents, total, nil
}

func (s *AgentService) GetByID(ctx context.Context, id string) (*models.Agent, error) {
	var agent models.Agent
	err := s.db.WithContext(ctx).Scopes(withUserSummary).First(&agent, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get agent %s: %w", id, err)
	}
	return &agent, nil
}

func (s *AgentService) Create(ctx context.Context, in models.CreateAgentInput) (*models.Agent, error) {
	agent := models.Agent{
		Name:        in.Name,
		Email:       in.Email,
		CompanyName: in.CompanyName,
		Phone:       in.Phone,
		Address:     in.Address,
		UserID:      in.UserID,
		IsActive:    true,
	}
	if err := s.db.WithContext(ctx).Create(&agent).Error; err != nil {
		if IsDuplicate(err) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("create agent: %w", err)
	}
	s.log.Info().Str("agent_id", agent.ID).Msg("agent created")
	return s.GetByID(ctx, agent.ID)
}

// Update changes only the supplied fields and returns the stored agent.
func (s *AgentService) Update(ctx context.Context, id string, in models.UpdateAgentInput) (*models.Agent, error) {
	changes := in.Changes()
	if len(changes) > 0 {
		res := s.db.WithContext(ctx).Model(&models.Agent{}).Where("id = ?", id).Updates(changes)
		if res.Error != nil {
			if IsDuplicate(res.Error) {
				return nil, ErrDuplicate
			}
			return nil, fmt.Errorf("update agent %s: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return nil, ErrNotFound
		}
	}
	return s.GetByID(ctx, id)
}

func (s *AgentService) Delete(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Delete(&models.Agent{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("delete agent %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *AgentService) Stats(ctx context.Context) (AgentStats, error) {
	var st AgentStats
	err := countConcurrently(ctx, s.db, &models.Agent{},
		countOf(&st.Total),
		countOf(&st.Active, "is_active = ?", true),
		countOf(&st.Inactive, "is_active = ?", false),
	)
	if err != nil {
		return AgentStats{}, fmt.Errorf("agent stats: %w", err)
	}
	return st, nil
}

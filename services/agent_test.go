package services_test

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/rtharindu/echannaling-admin/db/dbtest"
	"github.com/rtharindu/echannaling-admin/models"
	"github.com/rtharindu/echannaling-admin/services"
)

func newAgentService(t *testing.T) (*services.AgentService, *gorm.DB) {
	t.Helper()
	gdb := dbtest.New(t)
	return services.NewAgentService(gdb, zerolog.Nop()), gdb
}

func TestAgentService_ListSearchPagination(t *testing.T) {
	svc, _ := newAgentService(t)
	ctx := context.Background()

	for i := 0; i < 12; i++ {
		_, err := svc.Create(ctx, models.CreateAgentInput{
			Name:  fmt.Sprintf("John %02d", i),
			Email: fmt.Sprintf("john%02d@example.com", i),
		})
		require.NoError(t, err)
	}
	for i := 0; i < 3; i++ {
		_, err := svc.Create(ctx, models.CreateAgentInput{
			Name:  fmt.Sprintf("Mary %d", i),
			Email: fmt.Sprintf("mary%d@example.com", i),
		})
		require.NoError(t, err)
	}

	agents, total, err := svc.List(ctx, models.AgentQuery{Search: "john", Page: intPtr(2), Limit: intPtr(5)})
	require.NoError(t, err)
	assert.Len(t, agents, 5)
	assert.EqualValues(t, 12, total)

	agents, total, err = svc.List(ctx, models.AgentQuery{Search: "john", Page: intPtr(3), Limit: intPtr(5)})
	require.NoError(t, err)
	assert.Len(t, agents, 2)
	assert.EqualValues(t, 12, total)
}

func TestAgentService_ListSearchIsLiteral(t *testing.T) {
	svc, _ := newAgentService(t)
	ctx := context.Background()

	for _, a := range []models.CreateAgentInput{
		{Name: "John", Email: "john@example.com"},
		{Name: "Mary", Email: "mary@example.com"},
		{Name: "Ann_Lee", Email: "annlee@example.com"},
		{Name: "Annabel", Email: "annabel@example.com"},
	} {
		_, err := svc.Create(ctx, a)
		require.NoError(t, err)
	}

	tests := []struct {
		search string
		want   []string
	}{
		{"%", nil},
		{"_", []string{"Ann_Lee"}},
		{"ann_", []string{"Ann_Lee"}},
		{`\`, nil},
		{"ANN", []string{"Ann_Lee", "Annabel"}},
	}
	for _, tt := range tests {
		t.Run(tt.search, func(t *testing.T) {
			agents, total, err := svc.List(ctx, models.AgentQuery{Search: tt.search, SortBy: "name", SortOrder: "asc"})
			require.NoError(t, err)
			assert.EqualValues(t, len(tt.want), total)

			var names []string
			for _, a := range agents {
				names = append(names, a.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestAgentService_ListHugePageIsEmpty(t *testing.T) {
	svc, _ := newAgentService(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.Create(ctx, models.CreateAgentInput{
			Name:  fmt.Sprintf("Agent %d", i),
			Email: fmt.Sprintf("agent%d@example.com", i),
		})
		require.NoError(t, err)
	}

	agents, total, err := svc.List(ctx, models.AgentQuery{Page: intPtr(math.MaxInt), Limit: intPtr(10)})
	require.NoError(t, err)
	assert.Empty(t, agents)
	assert.EqualValues(t, 3, total)
}

func TestAgentService_ListSortAndFilter(t *testing.T) {
	svc, _ := newAgentService(t)
	ctx := context.Background()

	for _, name := range []string{"Charlie", "alice", "Bob"} {
		_, err := svc.Create(ctx, models.CreateAgentInput{Name: name, Email: name + "@example.com"})
		require.NoError(t, err)
	}
	bob, _, err := svc.List(ctx, models.AgentQuery{Search: "bob"})
	require.NoError(t, err)
	require.Len(t, bob, 1)
	_, err = svc.Update(ctx, bob[0].ID, models.UpdateAgentInput{IsActive: boolPtr(false)})
	require.NoError(t, err)

	agents, total, err := svc.List(ctx, models.AgentQuery{SortBy: "email", SortOrder: "asc"})
	require.NoError(t, err)
	require.Len(t, agents, 3)
	assert.EqualValues(t, 3, total)
	assert.Equal(t, "Bob@example.com", agents[0].Email)

	active, total, err := svc.List(ctx, models.AgentQuery{IsActive: boolPtr(true)})
	require.NoError(t, err)
	assert.Len(t, active, 2)
	assert.EqualValues(t, 2, total)
}

func TestAgentService_CreateDuplicateEmail(t *testing.T) {
	svc, _ := newAgentService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, models.CreateAgentInput{Name: "First", Email: "same@example.com"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, models.CreateAgentInput{Name: "Second", Email: "same@example.com"})
	assert.ErrorIs(t, err, services.ErrDuplicate)

	st, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, st.Total)
}

func TestAgentService_PreloadsUserSummary(t *testing.T) {
	svc, gdb := newAgentService(t)
	ctx := context.Background()

	user := models.User{Email: "owner@example.com", Password: "hash", Role: models.RoleAgent, IsActive: true}
	require.NoError(t, gdb.Create(&user).Error)

	agent, err := svc.Create(ctx, models.CreateAgentInput{Name: "Linked", Email: "linked@example.com", UserID: &user.ID})
	require.NoError(t, err)

	require.NotNil(t, agent.User)
	assert.Equal(t, user.ID, agent.User.ID)
	assert.Equal(t, "owner@example.com", agent.User.Email)
	assert.Equal(t, models.RoleAgent, agent.User.Role)
}

func TestAgentService_UpdateIsPartial(t *testing.T) {
	svc, _ := newAgentService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, models.CreateAgentInput{
		Name:        "Nimal",
		Email:       "nimal@example.com",
		CompanyName: strPtr("Travel Co"),
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, models.UpdateAgentInput{Phone: strPtr("0771234567")})
	require.NoError(t, err)
	assert.Equal(t, "Nimal", updated.Name)
	assert.Equal(t, "nimal@example.com", updated.Email)
	require.NotNil(t, updated.CompanyName)
	assert.Equal(t, "Travel Co", *updated.CompanyName)
	require.NotNil(t, updated.Phone)
	assert.Equal(t, "0771234567", *updated.Phone)
	assert.True(t, updated.IsActive)
}

func TestAgentService_NotFound(t *testing.T) {
	svc, _ := newAgentService(t)
	ctx := context.Background()

	_, err := svc.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, services.ErrNotFound)

	_, err = svc.Update(ctx, "missing", models.UpdateAgentInput{Name: strPtr("x")})
	assert.ErrorIs(t, err, services.ErrNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, "missing"), services.ErrNotFound)
}

func TestAgentService_DeleteAndStats(t *testing.T) {
	svc, _ := newAgentService(t)
	ctx := context.Background()

	a, err := svc.Create(ctx, models.CreateAgentInput{Name: "A", Email: "a@example.com"})
	require.NoError(t, err)
	b, err := svc.Create(ctx, models.CreateAgentInput{Name: "B", Email: "b@example.com"})
	require.NoError(t, err)
	_, err = svc.Update(ctx, b.ID, models.UpdateAgentInput{IsActive: boolPtr(false)})
	require.NoError(t, err)

	st, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, services.AgentStats{Total: 2, Active: 1, Inactive: 1}, st)

	require.NoError(t, svc.Delete(ctx, a.ID))
	st, err = svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, services.AgentStats{Total: 1, Active: 0, Inactive: 1}, st)
}

func TestAgentService_PropagatesErrors(t *testing.T) {
	svc, gdb := newAgentService(t)
	dbtest.Break(t, gdb)

	_, _, err := svc.List(context.Background(), models.AgentQuery{})
	assert.Error(t, err)
	_, err = svc.Stats(context.Background())
	assert.Error(t, err)
}

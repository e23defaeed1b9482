package services_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rtharindu/echannaling-admin/db/dbtest"
	"github.com/rtharindu/echannaling-admin/models"
	"github.com/rtharindu/echannaling-admin/services"
)

func hospitalInput(name, email, city string) models.CreateHospitalInput {
	return models.CreateHospitalInput{
		Name:          name,
		Email:         email,
		Address:       "1 Main St",
		City:          city,
		District:      city,
		ContactNumber: "0112345678",
	}
}

func TestHospitalService_Create(t *testing.T) {
	svc := services.NewHospitalService(dbtest.New(t), zerolog.Nop())

	h, err := svc.Create(context.Background(), hospitalInput("Asiri", "asiri@example.com", "Colombo"))
	require.NoError(t, err)

	assert.NotEmpty(t, h.ID)
	assert.True(t, h.IsActive)
	assert.Equal(t, models.StatusPending, h.Status)
	assert.Equal(t, models.StringList{}, h.Facilities)
}

func TestHospitalService_SearchAndCity(t *testing.T) {
	svc := services.NewHospitalService(dbtest.New(t), zerolog.Nop())
	ctx := context.Background()

	for _, in := range []models.CreateHospitalInput{
		hospitalInput("Asiri Central", "asiri@example.com", "Colombo"),
		hospitalInput("Nawaloka", "nawaloka@example.com", "Colombo"),
		hospitalInput("Suwasevana", "suwa@example.com", "Kandy"),
	} {
		_, err := svc.Create(ctx, in)
		require.NoError(t, err)
	}

	assert.Len(t, svc.GetAll(ctx, ""), 3)
	assert.Len(t, svc.GetAll(ctx, "colombo"), 2)
	assert.Len(t, svc.GetAll(ctx, "CENTRAL"), 1)

	inColombo := svc.GetByCity(ctx, "Colombo")
	require.Len(t, inColombo, 2)
	assert.Equal(t, "Asiri Central", inColombo[0].Name)
	assert.Empty(t, svc.GetByCity(ctx, "Galle"))
}

func TestHospitalService_UpdateAndDelete(t *testing.T) {
	svc := services.NewHospitalService(dbtest.New(t), zerolog.Nop())
	ctx := context.Background()

	h, err := svc.Create(ctx, hospitalInput("Lanka", "lanka@example.com", "Colombo"))
	require.NoError(t, err)

	updated := svc.Update(ctx, h.ID, models.UpdateHospitalInput{
		Facilities: []string{"ICU", "Pharmacy"},
	})
	require.NotNil(t, updated)
	assert.Equal(t, models.StringList{"ICU", "Pharmacy"}, updated.Facilities)
	assert.Equal(t, "Lanka", updated.Name)
	assert.Equal(t, "Colombo", updated.City)

	assert.True(t, svc.Delete(ctx, h.ID))
	assert.Nil(t, svc.GetByID(ctx, h.ID))
	assert.Nil(t, svc.Update(ctx, h.ID, models.UpdateHospitalInput{Name: strPtr("x")}))
}

func TestHospitalService_StatsAndFallback(t *testing.T) {
	var buf bytes.Buffer
	gdb := dbtest.New(t)
	svc := services.NewHospitalService(gdb, zerolog.New(&buf))
	ctx := context.Background()

	_, err := svc.Create(ctx, hospitalInput("One", "one@example.com", "Galle"))
	require.NoError(t, err)
	assert.Equal(t, services.Stats{Total: 1, Active: 1, Pending: 1}, svc.GetStats(ctx))

	dbtest.Break(t, gdb)

	assert.Empty(t, svc.GetAll(ctx, ""))
	assert.Empty(t, svc.GetByCity(ctx, "Galle"))
	assert.Equal(t, services.Stats{}, svc.GetStats(ctx))
	assert.Contains(t, buf.String(), "error fetching hospitals")
}

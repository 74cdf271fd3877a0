package repository

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radar-hub/techradar-backend/internal/radar/domain"
)

func TestQuadrantCreateThenGet(t *testing.T) {
	repo := NewQuadrantRepository()

	created := repo.Create(domain.CreateQuadrantInput{
		Name:        "Tools",
		Description: "Software tools",
	})

	assert.Equal(t, int64(1), created.ID)
	assert.Nil(t, created.Color)

	got, err := repo.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, *got)

	_, err = repo.Get(2)
	assert.ErrorIs(t, err, domain.ErrQuadrantNotFound)
}

func TestQuadrantUpdateMergesShallowly(t *testing.T) {
	repo := NewQuadrantRepository()
	created := repo.Create(domain.CreateQuadrantInput{
		Name:        "Platforms",
		Description: "Runtimes and infra",
		Color:       ptr("#123456"),
	})

	var in domain.UpdateQuadrantInput
	require.NoError(t, json.Unmarshal([]byte(`{"description":"Infrastructure","color":null}`), &in))

	updated, err := repo.Update(created.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "Platforms", updated.Name)
	assert.Equal(t, "Infrastructure", updated.Description)
	assert.Nil(t, updated.Color)

	_, err = repo.Update(99, in)
	assert.ErrorIs(t, err, domain.ErrQuadrantNotFound)
}

func TestRingCreationOrderIsMaturityOrder(t *testing.T) {
	repo := NewRingRepository()
	for _, name := range []string{"Adopt", "Trial", "Assess", "Hold"} {
		repo.Create(domain.CreateRingInput{Name: name})
	}

	list := repo.List()
	require.Len(t, list, 4)
	assert.Equal(t, "Adopt", list[0].Name)
	assert.Equal(t, "Hold", list[3].Name)
	assert.Equal(t, int64(1), list[0].ID)
	assert.Equal(t, int64(4), list[3].ID)
}

func TestRingUpdateAndNotFound(t *testing.T) {
	repo := NewRingRepository()
	created := repo.Create(domain.CreateRingInput{Name: "Adopt", Color: ptr("#5ba300")})

	var in domain.UpdateRingInput
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Adopt!"}`), &in))

	updated, err := repo.Update(created.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "Adopt!", updated.Name)
	require.NotNil(t, updated.Color)
	assert.Equal(t, "#5ba300", *updated.Color)

	_, err = repo.Get(42)
	assert.ErrorIs(t, err, domain.ErrRingNotFound)
}

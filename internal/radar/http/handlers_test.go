package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radar-hub/techradar-backend/internal/radar/domain"
	"github.com/radar-hub/techradar-backend/internal/radar/repository"
	"github.com/radar-hub/techradar-backend/internal/radar/service"
)

func setupTestRouter(t *testing.T, seed bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := service.NewRadarService(service.Deps{
		Technologies: repository.NewTechnologyRepository(),
		Quadrants:    repository.NewQuadrantRepository(),
		Rings:        repository.NewRingRepository(),
		Projects:     repository.NewProjectRepository(),
		Links:        repository.NewTechnologyProjectRepository(),
	})
	if seed {
		svc.Seed(t.Context())
	}

	r := gin.New()
	api := r.Group("/api/v1")
	New(svc).Register(api)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestCreateAndGetTechnology(t *testing.T) {
	r := setupTestRouter(t, false)

	rr := doJSON(t, r, http.MethodPost, "/api/v1/technologies", gin.H{
		"name":     "Kubernetes",
		"quadrant": 2,
		"ring":     0,
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	var created struct {
		OK         bool              `json:"ok"`
		Technology domain.Technology `json:"technology"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	assert.True(t, created.OK)
	assert.Equal(t, int64(1), created.Technology.ID)
	assert.Equal(t, []string{}, created.Technology.Tags)

	rr = doJSON(t, r, http.MethodGet, "/api/v1/technologies/1", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestCreateTechnologyRejectsBlankName(t *testing.T) {
	r := setupTestRouter(t, false)

	rr := doJSON(t, r, http.MethodPost, "/api/v1/technologies", gin.H{"name": "   "})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGetTechnologyNotFoundAndBadID(t *testing.T) {
	r := setupTestRouter(t, false)

	rr := doJSON(t, r, http.MethodGet, "/api/v1/technologies/99", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = doJSON(t, r, http.MethodGet, "/api/v1/technologies/not-a-number", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestListTechnologiesWithSearchParam(t *testing.T) {
	r := setupTestRouter(t, true)

	rr := doJSON(t, r, http.MethodGet, "/api/v1/technologies?q=docker", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Technologies []domain.Technology `json:"technologies"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp.Technologies, 2)
	assert.Equal(t, "Docker", resp.Technologies[0].Name)
	assert.Equal(t, "Docker Compose", resp.Technologies[1].Name)
}

func TestPatchTechnology(t *testing.T) {
	r := setupTestRouter(t, true)

	rr := doJSON(t, r, http.MethodPatch, "/api/v1/technologies/1", gin.H{"name": "Docker CE"})
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Technology domain.Technology `json:"technology"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Docker CE", resp.Technology.Name)
	assert.NotEmpty(t, resp.Technology.Description, "absent fields must survive the patch")

	rr = doJSON(t, r, http.MethodPatch, "/api/v1/technologies/9999", gin.H{"name": "X"})
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestQuadrantAndRingEndpoints(t *testing.T) {
	r := setupTestRouter(t, true)

	rr := doJSON(t, r, http.MethodGet, "/api/v1/quadrants", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var quadrants struct {
		Quadrants []domain.Quadrant `json:"quadrants"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &quadrants))
	assert.Len(t, quadrants.Quadrants, 4)

	rr = doJSON(t, r, http.MethodPatch, "/api/v1/rings/1", gin.H{"color": nil})
	require.Equal(t, http.StatusOK, rr.Code)

	var ring struct {
		Ring domain.Ring `json:"ring"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &ring))
	assert.Nil(t, ring.Ring.Color)
}

func TestCreateLinkRequiresBothIDs(t *testing.T) {
	r := setupTestRouter(t, false)

	rr := doJSON(t, r, http.MethodPost, "/api/v1/technology-project-links", gin.H{"technology_id": 1})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = doJSON(t, r, http.MethodPost, "/api/v1/technology-project-links", gin.H{
		"technology_id": 1,
		"project_id":    2,
		"notes":         "works without either entity existing",
	})
	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestRadarViewEndpoint(t *testing.T) {
	r := setupTestRouter(t, true)

	rr := doJSON(t, r, http.MethodGet, "/api/v1/radar", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Radar domain.RadarView `json:"radar"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Len(t, resp.Radar.Quadrants, 4)
	assert.Len(t, resp.Radar.Cells, 16)
}

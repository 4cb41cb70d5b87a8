package views

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"happy/internal/models/db_models"
)

func TestImageURL(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		path    string
		want    string
	}{
		{"plain", "http://localhost:3333/uploads", "fileA.jpg", "http://localhost:3333/uploads/fileA.jpg"},
		{"trailing slash on base", "http://localhost:3333/uploads/", "fileA.jpg", "http://localhost:3333/uploads/fileA.jpg"},
		{"escapes spaces", "https://api.example.org/uploads", "my photo.jpg", "https://api.example.org/uploads/my%20photo.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ImageURL(tt.baseURL, tt.path))
		})
	}
}

func TestRenderOrphanage(t *testing.T) {
	orphanage := db_models.Orphanage{
		BaseModel:      db_models.BaseModel{ID: 7},
		Name:           "Lar Feliz",
		Latitude:       decimal.RequireFromString("-20.62"),
		Longitude:      decimal.RequireFromString("-49.65"),
		About:          "desc",
		Instructions:   "bring ID",
		OpeningHours:   "9-17",
		OpenOnWeekends: true,
		Images: []db_models.Image{
			{ID: 1, Path: "a.jpg", OrphanageID: 7},
			{ID: 2, Path: "b.jpg", OrphanageID: 7},
		},
	}

	view := RenderOrphanage(orphanage, "http://localhost:3333/uploads")

	assert.Equal(t, int64(7), view.ID)
	assert.Equal(t, "Lar Feliz", view.Name)
	assert.InDelta(t, -20.62, view.Latitude, 1e-9)
	assert.InDelta(t, -49.65, view.Longitude, 1e-9)
	assert.Equal(t, "9-17", view.OpeningHours)
	assert.True(t, view.OpenOnWeekends)
	require.Len(t, view.Images, 2)
	assert.Equal(t, int64(1), view.Images[0].ID)
	assert.Equal(t, "http://localhost:3333/uploads/a.jpg", view.Images[0].URL)
	assert.Equal(t, "http://localhost:3333/uploads/b.jpg", view.Images[1].URL)
}

func TestRenderOrphanage_NoImagesSerializesEmptyArray(t *testing.T) {
	view := RenderOrphanage(db_models.Orphanage{Name: "x"}, "http://localhost/uploads")

	raw, err := json.Marshal(view)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"images":[]`)
	assert.NotContains(t, string(raw), "path")
}

func TestRenderOrphanages(t *testing.T) {
	t.Run("empty input renders empty array", func(t *testing.T) {
		views := RenderOrphanages(nil, "http://localhost/uploads")
		require.NotNil(t, views)
		assert.Empty(t, views)

		raw, err := json.Marshal(views)
		require.NoError(t, err)
		assert.Equal(t, "[]", string(raw))
	})

	t.Run("keeps order", func(t *testing.T) {
		views := RenderOrphanages([]db_models.Orphanage{
			{BaseModel: db_models.BaseModel{ID: 1}, Name: "first"},
			{BaseModel: db_models.BaseModel{ID: 2}, Name: "second"},
		}, "http://localhost/uploads")

		require.Len(t, views, 2)
		assert.Equal(t, "first", views[0].Name)
		assert.Equal(t, "second", views[1].Name)
	})
}

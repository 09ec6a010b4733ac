package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/meridianmade/agency-site-backend/models"
)

type fakePortfolioItemStore struct {
	items map[uuid.UUID]*models.PortfolioItem
}

func newFakePortfolioItemStore() *fakePortfolioItemStore {
	return &fakePortfolioItemStore{items: map[uuid.UUID]*models.PortfolioItem{}}
}

func (f *fakePortfolioItemStore) FindAll(category string, activeOnly bool) ([]*models.PortfolioItem, error) {
	var out []*models.PortfolioItem
	for _, item := range f.items {
		if category != "" && item.Category != category {
			continue
		}
		if activeOnly && !item.Active {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

func (f *fakePortfolioItemStore) FindByID(id uuid.UUID) (*models.PortfolioItem, error) {
	return f.items[id], nil
}

func (f *fakePortfolioItemStore) Add(item *models.PortfolioItem) error {
	f.items[item.ID] = item
	return nil
}

func (f *fakePortfolioItemStore) Update(id uuid.UUID, fields map[string]any) error {
	item := f.items[id]
	for column, value := range fields {
		switch column {
		case "title":
			item.Title = value.(string)
		case "category":
			item.Category = value.(string)
		case "client":
			item.Client = value.(string)
		case "description":
			item.Description = value.(string)
		case "image_url":
			item.ImageURL = value.(string)
		case "year":
			item.Year = value.(string)
		case "services":
			item.Services = value.(datatypes.JSONSlice[string])
		case "sort_order":
			item.Order = value.(int)
		case "active":
			item.Active = value.(bool)
		}
	}
	return nil
}

func (f *fakePortfolioItemStore) Delete(id uuid.UUID) error {
	delete(f.items, id)
	return nil
}

func newTestPortfolioItemHandler() (portfolioItemHandler, *fakePortfolioItemStore) {
	repo := newFakePortfolioItemStore()
	return newPortfolioItemHandler(repo, newBlobCleaner(&fakeBlobStore{})), repo
}

const validPortfolioItemBody = `{
	"title": "Rebrand",
	"category": "branding",
	"client": "Acme",
	"description": "Full identity refresh",
	"image_url": "https://cdn.test/uploads/1-cover.png",
	"year": "2025",
	"services": ["logo", "web"]
}`

func TestCreatePortfolioItem(t *testing.T) {
	handler, repo := newTestPortfolioItemHandler()

	rec := httptest.NewRecorder()
	handler.createPortfolioItem()(rec, httptest.NewRequest(http.MethodPost, "/portfolio-items",
		strings.NewReader(validPortfolioItemBody)))

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, repo.items, 1)

	var resp struct {
		Item models.PortfolioItem `json:"item"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Rebrand", resp.Item.Title)
	assert.Equal(t, datatypes.NewJSONSlice([]string{"logo", "web"}), resp.Item.Services)
	assert.Equal(t, 1, resp.Item.Order)
	assert.True(t, resp.Item.Active)
}

func TestCreatePortfolioItemDefaultsServicesToEmpty(t *testing.T) {
	handler, _ := newTestPortfolioItemHandler()

	body := `{"title":"T","category":"c","client":"A","description":"d","image_url":"https://cdn.test/1.png","year":"2025"}`
	rec := httptest.NewRecorder()
	handler.createPortfolioItem()(rec, httptest.NewRequest(http.MethodPost, "/portfolio-items", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"services":[]`)
}

func TestCreatePortfolioItemRequiredFields(t *testing.T) {
	handler, _ := newTestPortfolioItemHandler()

	// Dropping any one of the six required fields is a 400.
	var full map[string]any
	require.NoError(t, json.Unmarshal([]byte(validPortfolioItemBody), &full))

	for _, field := range []string{"title", "category", "client", "description", "image_url", "year"} {
		partial := map[string]any{}
		for k, v := range full {
			if k != field {
				partial[k] = v
			}
		}
		body, err := json.Marshal(partial)
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		handler.createPortfolioItem()(rec, httptest.NewRequest(http.MethodPost, "/portfolio-items", strings.NewReader(string(body))))
		assert.Equal(t, http.StatusBadRequest, rec.Code, "missing %s", field)
	}
}

func TestUpdatePortfolioItemReplacesServices(t *testing.T) {
	handler, repo := newTestPortfolioItemHandler()

	id := uuid.New()
	repo.Add(&models.PortfolioItem{
		ID:       id,
		Title:    "Rebrand",
		Category: "branding",
		Services: datatypes.NewJSONSlice([]string{"logo"}),
		Order:    1,
		Active:   true,
	})

	rec := httptest.NewRecorder()
	handler.updatePortfolioItem()(rec, httptest.NewRequest(http.MethodPut, "/portfolio-items",
		strings.NewReader(`{"id":"`+id.String()+`","services":["logo","web","print"]}`)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, datatypes.NewJSONSlice([]string{"logo", "web", "print"}), repo.items[id].Services)
	assert.Equal(t, "Rebrand", repo.items[id].Title)
}

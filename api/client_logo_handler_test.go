package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridianmade/agency-site-backend/models"
)

type fakeClientLogoStore struct {
	logos map[uuid.UUID]*models.ClientLogo
}

func newFakeClientLogoStore() *fakeClientLogoStore {
	return &fakeClientLogoStore{logos: map[uuid.UUID]*models.ClientLogo{}}
}

func (f *fakeClientLogoStore) FindAll(activeOnly bool) ([]*models.ClientLogo, error) {
	var out []*models.ClientLogo
	for _, logo := range f.logos {
		if activeOnly && !logo.Active {
			continue
		}
		out = append(out, logo)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func (f *fakeClientLogoStore) FindByID(id uuid.UUID) (*models.ClientLogo, error) {
	return f.logos[id], nil
}

func (f *fakeClientLogoStore) Add(logo *models.ClientLogo) error {
	f.logos[logo.ID] = logo
	return nil
}

func (f *fakeClientLogoStore) Update(id uuid.UUID, fields map[string]any) error {
	logo := f.logos[id]
	for column, value := range fields {
		switch column {
		case "client_name":
			logo.ClientName = value.(string)
		case "logo_url":
			logo.LogoURL = value.(string)
		case "website_url":
			site := value.(string)
			logo.WebsiteURL = &site
		case "sort_order":
			logo.Order = value.(int)
		case "active":
			logo.Active = value.(bool)
		}
	}
	return nil
}

func (f *fakeClientLogoStore) Delete(id uuid.UUID) error {
	delete(f.logos, id)
	return nil
}

// The full marquee lifecycle: upload-backed create, reorder, deactivate, then
// delete with blob cleanup.
func TestClientLogoLifecycle(t *testing.T) {
	repo := newFakeClientLogoStore()
	blobs := &fakeBlobStore{}
	handler := newClientLogoHandler(repo, newBlobCleaner(blobs))

	logoURL := fakeBlobBaseURL + "/uploads/123-acme.png"

	create := httptest.NewRecorder()
	handler.createClientLogo()(create, httptest.NewRequest(http.MethodPost, "/client-logos",
		strings.NewReader(`{"client_name":"Acme","logo_url":"`+logoURL+`","order":2}`)))
	require.Equal(t, http.StatusCreated, create.Code)

	var created struct {
		Item models.ClientLogo `json:"item"`
	}
	require.NoError(t, json.Unmarshal(create.Body.Bytes(), &created))
	assert.Equal(t, 2, created.Item.Order)
	assert.True(t, created.Item.Active)

	update := httptest.NewRecorder()
	handler.updateClientLogo()(update, httptest.NewRequest(http.MethodPut, "/client-logos",
		strings.NewReader(`{"id":"`+created.Item.ID.String()+`","order":1,"active":false}`)))
	require.Equal(t, http.StatusOK, update.Code)

	var updated struct {
		Item models.ClientLogo `json:"item"`
	}
	require.NoError(t, json.Unmarshal(update.Body.Bytes(), &updated))
	assert.Equal(t, 1, updated.Item.Order)
	assert.False(t, updated.Item.Active)
	assert.Equal(t, "Acme", updated.Item.ClientName)

	// Inactive logos disappear from the public listing.
	public := httptest.NewRecorder()
	handler.getClientLogos()(public, httptest.NewRequest(http.MethodGet, "/client-logos?active=true", nil))
	require.Equal(t, http.StatusOK, public.Code)
	assert.Contains(t, public.Body.String(), `"items":[]`)

	remove := httptest.NewRecorder()
	handler.deleteClientLogo()(remove, httptest.NewRequest(http.MethodDelete, "/client-logos?id="+created.Item.ID.String(), nil))
	require.Equal(t, http.StatusOK, remove.Code)
	assert.Empty(t, repo.logos)
	assert.Equal(t, []string{"uploads/123-acme.png"}, blobs.deleted)
}

func TestCreateClientLogoRequiredFields(t *testing.T) {
	handler := newClientLogoHandler(newFakeClientLogoStore(), newBlobCleaner(&fakeBlobStore{}))

	for _, body := range []string{
		`{"logo_url":"https://cdn.test/a.png"}`,
		`{"client_name":"Acme"}`,
	} {
		rec := httptest.NewRecorder()
		handler.createClientLogo()(rec, httptest.NewRequest(http.MethodPost, "/client-logos", strings.NewReader(body)))
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %s", body)
	}
}

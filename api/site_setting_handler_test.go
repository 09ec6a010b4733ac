package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridianmade/agency-site-backend/models"
)

type fakeSiteSettingStore struct {
	settings map[string]*models.SiteSetting
}

func newFakeSiteSettingStore() *fakeSiteSettingStore {
	return &fakeSiteSettingStore{settings: map[string]*models.SiteSetting{}}
}

func (f *fakeSiteSettingStore) FindAll() ([]*models.SiteSetting, error) {
	var out []*models.SiteSetting
	for _, s := range f.settings {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeSiteSettingStore) FindByKey(key string) (*models.SiteSetting, error) {
	return f.settings[key], nil
}

// Upsert keeps the existing row's ID on a key conflict, like the conditional
// insert does.
func (f *fakeSiteSettingStore) Upsert(setting *models.SiteSetting) error {
	if existing, ok := f.settings[setting.Key]; ok {
		existing.Value = setting.Value
		existing.Type = setting.Type
		return nil
	}
	f.settings[setting.Key] = setting
	return nil
}

func (f *fakeSiteSettingStore) DeleteByKey(key string) error {
	delete(f.settings, key)
	return nil
}

func newTestSiteSettingHandler() (siteSettingHandler, *fakeSiteSettingStore, *fakeBlobStore) {
	repo := newFakeSiteSettingStore()
	blobs := &fakeBlobStore{}
	return newSiteSettingHandler(repo, newBlobCleaner(blobs)), repo, blobs
}

func TestUpsertSiteSettingCreatesWithDefaultType(t *testing.T) {
	handler, _, _ := newTestSiteSettingHandler()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/site-settings",
		strings.NewReader(`{"key":"tagline","value":"We make things"}`))
	handler.upsertSiteSetting()(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Item models.SiteSetting `json:"item"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "tagline", resp.Item.Key)
	assert.Equal(t, "We make things", resp.Item.Value)
	assert.Equal(t, "text", resp.Item.Type)
}

func TestUpsertSiteSettingReplacesValue(t *testing.T) {
	handler, repo, _ := newTestSiteSettingHandler()

	first := httptest.NewRecorder()
	handler.upsertSiteSetting()(first, httptest.NewRequest(http.MethodPost, "/site-settings",
		strings.NewReader(`{"key":"tagline","value":"old"}`)))
	require.Equal(t, http.StatusCreated, first.Code)

	var created struct {
		Item models.SiteSetting `json:"item"`
	}
	require.NoError(t, json.Unmarshal(first.Body.Bytes(), &created))

	second := httptest.NewRecorder()
	handler.upsertSiteSetting()(second, httptest.NewRequest(http.MethodPost, "/site-settings",
		strings.NewReader(`{"key":"tagline","value":"new"}`)))
	require.Equal(t, http.StatusCreated, second.Code)

	var replaced struct {
		Item models.SiteSetting `json:"item"`
	}
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &replaced))

	require.Len(t, repo.settings, 1)
	assert.Equal(t, created.Item.ID, replaced.Item.ID)
	assert.Equal(t, "new", replaced.Item.Value)
}

func TestUpsertSiteSettingRequiredFields(t *testing.T) {
	handler, _, _ := newTestSiteSettingHandler()

	for _, body := range []string{
		`{"value":"x"}`,
		`{"key":"tagline"}`,
	} {
		rec := httptest.NewRecorder()
		handler.upsertSiteSetting()(rec, httptest.NewRequest(http.MethodPost, "/site-settings", strings.NewReader(body)))
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %s", body)
	}
}

func TestGetSiteSettingByKey(t *testing.T) {
	handler, repo, _ := newTestSiteSettingHandler()
	repo.settings["tagline"] = &models.SiteSetting{Key: "tagline", Value: "hello", Type: "text"}

	rec := httptest.NewRecorder()
	handler.getSiteSettings()(rec, httptest.NewRequest(http.MethodGet, "/site-settings?key=tagline", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"item"`)

	missing := httptest.NewRecorder()
	handler.getSiteSettings()(missing, httptest.NewRequest(http.MethodGet, "/site-settings?key=nope", nil))
	assert.Equal(t, http.StatusNotFound, missing.Code)
}

func TestDeleteSiteSettingCleansUpImageBlob(t *testing.T) {
	handler, repo, blobs := newTestSiteSettingHandler()

	repo.settings["logo"] = &models.SiteSetting{Key: "logo", Value: fakeBlobBaseURL + "/uploads/123-logo.png", Type: "image"}
	repo.settings["tagline"] = &models.SiteSetting{Key: "tagline", Value: "hello", Type: "text"}

	rec := httptest.NewRecorder()
	handler.deleteSiteSetting()(rec, httptest.NewRequest(http.MethodDelete, "/site-settings?key=logo", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"uploads/123-logo.png"}, blobs.deleted)

	// Text settings never touch the blob store.
	rec = httptest.NewRecorder()
	handler.deleteSiteSetting()(rec, httptest.NewRequest(http.MethodDelete, "/site-settings?key=tagline", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, blobs.deleted, 1)
}

func TestDeleteSiteSettingNotFound(t *testing.T) {
	handler, _, _ := newTestSiteSettingHandler()

	rec := httptest.NewRecorder()
	handler.deleteSiteSetting()(rec, httptest.NewRequest(http.MethodDelete, "/site-settings?key=missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

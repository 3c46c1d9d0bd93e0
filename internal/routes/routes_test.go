package routes_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/portfolio-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/portfolio-backend/internal/database"
	"github.com/ahmetcoskunkizilkaya/portfolio-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/portfolio-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/portfolio-backend/internal/routes"
	"github.com/ahmetcoskunkizilkaya/portfolio-backend/internal/site"
	"github.com/ahmetcoskunkizilkaya/portfolio-backend/internal/testutil"
	"github.com/gofiber/fiber/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func testConfig() *config.Config {
	return &config.Config{
		Env:                 "test",
		CORSOrigins:         "*",
		BodyLimitBytes:      1 << 20,
		ContentAllowedHosts: []string{"ucarecdn.com"},
		ContentFetchTimeout: time.Second,
	}
}

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	return newTestAppWith(t, testConfig())
}

func newTestAppWith(t *testing.T, cfg *config.Config) (*fiber.App, *gorm.DB) {
	t.Helper()
	db := testutil.DB(t)
	return routes.NewApp(cfg, db, site.Builtin()), db
}

// closedApp returns an app whose database handle is already closed, so every
// query fails.
func closedApp(t *testing.T, cfg *config.Config) *fiber.App {
	t.Helper()
	app, db := newTestAppWith(t, cfg)
	require.NoError(t, database.Close(db))
	return app
}

func do(t *testing.T, app *fiber.App, method, path string, body interface{}) (int, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func decode[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v), string(raw))
	return v
}

func TestHealth(t *testing.T) {
	app, _ := newTestApp(t)

	code, raw := do(t, app, http.MethodGet, "/api/health", nil)
	require.Equal(t, http.StatusOK, code)
	health := decode[dto.HealthResponse](t, raw)
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, "ok", health.DB)
}

func TestGetProfileFallback(t *testing.T) {
	app, _ := newTestApp(t)

	code, raw := do(t, app, http.MethodGet, "/api/profile", nil)
	require.Equal(t, http.StatusOK, code)

	got := decode[dto.ProfileResponse](t, raw)
	if diff := cmp.Diff(site.Builtin().FallbackProfile(), got); diff != "" {
		t.Errorf("fallback mismatch (-want +got):\n%s", diff)
	}
}

func TestPutProfileWithoutEmail(t *testing.T) {
	app, db := newTestApp(t)

	code, raw := do(t, app, http.MethodPut, "/api/profile", map[string]interface{}{"name": "Ada"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Email is required", decode[dto.ErrorResponse](t, raw).Error)
	assert.Zero(t, testutil.CountRows(t, db, &models.User{}))
}

func TestPutProfileCreatesThenUpdates(t *testing.T) {
	app, db := newTestApp(t)
	payload := map[string]interface{}{
		"name":          "Ada",
		"email":         "ada@example.com",
		"twitterHandle": "@ada",
		"about":         map[string]interface{}{"education": "MFA"},
		"achievements": map[string]interface{}{
			"awards":       []string{"A", "", " "},
			"publications": []map[string]string{{"title": "Book", "description": "2021"}},
			"recognition":  []string{},
		},
	}

	code, raw := do(t, app, http.MethodPut, "/api/profile", payload)
	require.Equal(t, http.StatusOK, code, string(raw))
	created := decode[dto.ProfileSaveResponse](t, raw)
	assert.Equal(t, "User created successfully", created.Message)
	assert.Equal(t, dto.ProfileStats{}, created.User.Stats)
	assert.Equal(t, "@ada", created.User.Social.Twitter)
	assert.Equal(t, "MFA", created.User.About.Education)
	assert.Equal(t, []string{"A"}, created.User.Achievements.Awards)
	assert.EqualValues(t, 1, testutil.CountRows(t, db, &models.User{}))
	assert.EqualValues(t, 1, testutil.CountRows(t, db, &models.Award{}))

	code, raw = do(t, app, http.MethodPut, "/api/profile", payload)
	require.Equal(t, http.StatusOK, code, string(raw))
	updated := decode[dto.ProfileSaveResponse](t, raw)
	assert.Equal(t, "User updated successfully", updated.Message)
	if diff := cmp.Diff(created.User, updated.User); diff != "" {
		t.Errorf("repeated PUT changed the profile (-first +second):\n%s", diff)
	}
	assert.EqualValues(t, 1, testutil.CountRows(t, db, &models.User{}))
	assert.EqualValues(t, 1, testutil.CountRows(t, db, &models.Award{}))

	code, raw = do(t, app, http.MethodGet, "/api/profile", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, created.User, decode[dto.ProfileResponse](t, raw))
}

func TestProfileByID(t *testing.T) {
	app, db := newTestApp(t)
	owner := testutil.SeedOwner(t, db, "ada@example.com")

	code, raw := do(t, app, http.MethodGet, "/api/profile/"+owner.ID.String(), nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Ada Owner", decode[dto.ProfileResponse](t, raw).Name)

	code, raw = do(t, app, http.MethodPut, "/api/profile/"+owner.ID.String(), map[string]interface{}{
		"bio":          "New bio",
		"achievements": map[string]interface{}{"awards": []string{"X"}},
	})
	require.Equal(t, http.StatusOK, code, string(raw))
	resp := decode[dto.ProfileSaveResponse](t, raw)
	assert.Equal(t, "Profile updated successfully", resp.Message)
	assert.Equal(t, "New bio", resp.User.Bio)
	assert.Equal(t, "Essayist", resp.User.Title)
	assert.Equal(t, []string{"X"}, resp.User.Achievements.Awards)

	code, raw = do(t, app, http.MethodGet, "/api/profile/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "User not found", decode[dto.ErrorResponse](t, raw).Error)

	code, _ = do(t, app, http.MethodGet, "/api/profile/not-a-uuid", nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestPostProfileConflicts(t *testing.T) {
	app, _ := newTestApp(t)

	code, raw := do(t, app, http.MethodPost, "/api/profile", map[string]string{"email": "ada@example.com"})
	require.Equal(t, http.StatusCreated, code, string(raw))

	code, raw = do(t, app, http.MethodPost, "/api/profile", map[string]string{"email": "bob@example.com"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Profile already exists", decode[dto.ErrorResponse](t, raw).Error)
}

func TestPhotosLifecycle(t *testing.T) {
	app, db := newTestApp(t)

	code, raw := do(t, app, http.MethodPost, "/api/photos", map[string]interface{}{
		"photos": []map[string]string{{"url": "https://cdn/a.jpg", "title": "A"}, {"url": "https://cdn/b.jpg"}},
	})
	require.Equal(t, http.StatusCreated, code, string(raw))
	created := decode[[]dto.PhotoResponse](t, raw)
	require.Len(t, created, 2)
	assert.Regexp(t, `^photo-\d+-[0-9a-z]{7}\.jpg$`, created[0].Filename)
	assert.Equal(t, "/uploads/photos/"+created[0].Filename, created[0].Path)
	assert.NotEmpty(t, created[0].Date)

	code, raw = do(t, app, http.MethodPost, "/api/photos", map[string]string{"title": "no url"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "URL is required for each photo", decode[dto.ErrorResponse](t, raw).Error)

	code, raw = do(t, app, http.MethodGet, "/api/photos", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, decode[[]dto.PhotoResponse](t, raw), 2)

	code, _ = do(t, app, http.MethodDelete, "/api/photos/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.EqualValues(t, 2, testutil.CountRows(t, db, &models.Photo{}))

	code, _ = do(t, app, http.MethodDelete, "/api/photos/"+created[0].ID, nil)
	assert.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 1, testutil.CountRows(t, db, &models.Photo{}))

	code, _ = do(t, app, http.MethodDelete, "/api/photos", nil)
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = do(t, app, http.MethodDelete, "/api/photos?id="+created[1].ID, nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Zero(t, testutil.CountRows(t, db, &models.Photo{}))
}

func TestPhotoSingleItemAndPatch(t *testing.T) {
	app, _ := newTestApp(t)

	code, raw := do(t, app, http.MethodPost, "/api/photos", map[string]string{"url": "https://cdn/solo.jpg", "filename": "solo.jpg"})
	require.Equal(t, http.StatusCreated, code, string(raw))
	photo := decode[[]dto.PhotoResponse](t, raw)[0]
	assert.Equal(t, "/uploads/photos/solo.jpg", photo.Path)

	code, raw = do(t, app, http.MethodPut, "/api/photos/"+photo.ID, map[string]string{"title": "Solo"})
	require.Equal(t, http.StatusOK, code, string(raw))
	updated := decode[dto.PhotoResponse](t, raw)
	require.NotNil(t, updated.Title)
	assert.Equal(t, "Solo", *updated.Title)
	assert.Equal(t, "https://cdn/solo.jpg", updated.URL)
}

func TestWritingsLifecycle(t *testing.T) {
	app, db := newTestApp(t)
	valid := map[string]interface{}{
		"title":       "On Light",
		"category":    "Essay",
		"description": "Short",
		"image":       "https://cdn/cover.jpg",
		"contentUrl":  "data:text/plain;base64,SGVsbG8=",
	}

	missing := map[string]interface{}{}
	for k, v := range valid {
		if k != "contentUrl" {
			missing[k] = v
		}
	}
	code, raw := do(t, app, http.MethodPost, "/api/writings", missing)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Missing required fields", decode[dto.ErrorResponse](t, raw).Error)
	assert.Zero(t, testutil.CountRows(t, db, &models.Writing{}))

	code, raw = do(t, app, http.MethodPost, "/api/writings", valid)
	require.Equal(t, http.StatusCreated, code, string(raw))
	saved := decode[struct {
		Message string         `json:"message"`
		Writing models.Writing `json:"writing"`
	}](t, raw)
	assert.Equal(t, "Writing created successfully", saved.Message)
	assert.Empty(t, saved.Writing.Tags)
	assert.Contains(t, string(raw), `"tags":[]`)
	id := saved.Writing.ID.String()

	code, raw = do(t, app, http.MethodGet, "/api/writings/"+id+"/content", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Hello", string(raw))

	code, raw = do(t, app, http.MethodPut, "/api/writings/"+id, map[string]interface{}{"tags": []string{"light"}})
	require.Equal(t, http.StatusOK, code, string(raw))
	assert.Contains(t, string(raw), `"tags":["light"]`)

	code, _ = do(t, app, http.MethodDelete, "/api/writings/"+id, nil)
	assert.Equal(t, http.StatusOK, code)

	code, raw = do(t, app, http.MethodGet, "/api/writings/"+id, nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Writing not found", decode[dto.ErrorResponse](t, raw).Error)
}

func TestWritingContentRejectsForeignHost(t *testing.T) {
	app, db := newTestApp(t)
	w := testutil.SeedWriting(t, db, "Elsewhere")
	require.NoError(t, db.Model(w).Update("content_url", "https://evil.example.com/x").Error)

	code, _ := do(t, app, http.MethodGet, "/api/writings/"+w.ID.String()+"/content", nil)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestInlineTextUpload(t *testing.T) {
	app, _ := newTestApp(t)

	code, raw := do(t, app, http.MethodPost, "/api/uploads/text", map[string]string{"content": "Hello"})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "data:text/plain;base64,SGVsbG8=", decode[dto.InlineContentResponse](t, raw).URL)

	code, _ = do(t, app, http.MethodPost, "/api/uploads/text", map[string]string{"content": " "})
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestUnknownRouteUsesErrorShape(t *testing.T) {
	app, _ := newTestApp(t)

	code, raw := do(t, app, http.MethodGet, "/api/nope", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.NotEmpty(t, decode[dto.ErrorResponse](t, raw).Error)
}

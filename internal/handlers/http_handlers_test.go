package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"tebakangka/internal/models"
	"tebakangka/internal/services"
	"tebakangka/internal/store"
)

func newTestRouter(t *testing.T) (*gin.Engine, *store.Memory, *services.AuthService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mem := store.NewMemory()
	auth := services.NewAuthService(mem, "test-secret", time.Hour)
	h := NewHTTPHandler(
		services.NewMarketService(mem),
		services.NewLombaService(mem),
		services.NewTebakanService(mem, mem),
		services.NewWinnerService(mem, mem),
		auth,
		services.NewUserService(mem),
		services.NewContentService(mem, mem),
	)

	r := gin.New()
	h.RegisterPublicRoutes(r)
	admin := r.Group("/api/admin")
	admin.Use(h.AdminMiddleware())
	h.RegisterAdminRoutes(admin)
	return r, mem, auth
}

func seedSettledLomba(t *testing.T, mem *store.Memory, result string) uuid.UUID {
	t.Helper()
	id := uuid.New()
	err := mem.CreateLomba(context.Background(), &models.Lomba{
		ID:        id,
		MarketID:  uuid.New(),
		Tanggal:   "2026-08-29",
		Result:    &result,
		GuessType: "2d",
		MaxWinner: 5,
	})
	require.NoError(t, err)
	return id
}

func TestWinnersEndpoint(t *testing.T) {
	r, mem, _ := newTestRouter(t)
	lombaID := seedSettledLomba(t, mem, "1234")
	base := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)

	for i, entry := range []struct{ user, number string }{
		{"bob", "56"},
		{"alice", "99-34"},
	} {
		err := mem.CreateTebakan(context.Background(), &models.Tebakan{
			ID: uuid.New(), LombaID: lombaID, WebsiteID: uuid.New(),
			UseridWebsite: entry.user, Number: entry.number,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/tebakan/winners?lomba_id="+lombaID.String(), nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "no-cache, no-store, must-revalidate", w.Header().Get("Cache-Control"))

	var winners []models.Winner
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &winners))
	require.Len(t, winners, 1)
	assert.Equal(t, "alice", winners[0].UseridWebsite)
	assert.Equal(t, "34", winners[0].MatchingPart)
}

func TestWinnersEndpointErrors(t *testing.T) {
	r, mem, _ := newTestRouter(t)

	t.Run("missing lomba_id", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/tebakan/winners", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown lomba", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/tebakan/winners?lomba_id="+uuid.NewString(), nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("unsettled lomba", func(t *testing.T) {
		id := uuid.New()
		err := mem.CreateLomba(context.Background(), &models.Lomba{
			ID: id, MarketID: uuid.New(), GuessType: "2d", MaxWinner: 5,
		})
		require.NoError(t, err)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/tebakan/winners?lomba_id="+id.String(), nil))
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestSubmitTebakanEndpoint(t *testing.T) {
	r, mem, _ := newTestRouter(t)
	lombaID := uuid.New()
	err := mem.CreateLomba(context.Background(), &models.Lomba{
		ID: lombaID, MarketID: uuid.New(), GuessType: "2d", MaxWinner: 5,
	})
	require.NoError(t, err)
	websiteID := uuid.New()

	body := `{"lomba_id":"` + lombaID.String() + `","website_id":"` + websiteID.String() + `","userid_website":"alice","number":"12-34"}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/tebakan", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	// The same triple again conflicts.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/tebakan", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAdminRoutesRequireToken(t *testing.T) {
	r, mem, auth := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/admin/whitelist", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// A participant session has no privilege level and is refused too.
	_, err := auth.Register(context.Background(), services.RegisterInput{
		Username: "alice", Email: "alice@example.com", Password: "rahasia123",
	})
	require.NoError(t, err)
	userToken, _, err := auth.Login(context.Background(), "alice", "rahasia123")
	require.NoError(t, err)

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/whitelist", nil)
	req.Header.Set("Authorization", "Bearer "+userToken)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// A staff session passes.
	hash, err := bcrypt.GenerateFromPassword([]byte("adminpass"), bcrypt.DefaultCost)
	require.NoError(t, err)
	mem.PutAdmin(models.Admin{
		ID: uuid.New(), Username: "boss", Email: "boss@example.com",
		PasswordHash: string(hash), Level: 1,
	})
	adminToken, _, err := auth.AdminLogin(context.Background(), "boss", "adminpass")
	require.NoError(t, err)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/admin/whitelist", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminLoginEndpoint(t *testing.T) {
	r, mem, _ := newTestRouter(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("adminpass"), bcrypt.DefaultCost)
	require.NoError(t, err)
	mem.PutAdmin(models.Admin{
		ID: uuid.New(), Username: "boss", Email: "boss@example.com",
		PasswordHash: string(hash), Level: 2,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/login",
		strings.NewReader(`{"usernameOrEmail":"boss","password":"adminpass"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Username    string `json:"username"`
			Level       int    `json:"level"`
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "boss", resp.Data.Username)
	assert.Equal(t, 2, resp.Data.Level)
	assert.NotEmpty(t, resp.Data.AccessToken)
}

func TestProfileEndpoint(t *testing.T) {
	r, mem, _ := newTestRouter(t)

	u := models.User{
		ID: uuid.New(), Username: "alice", Email: "alice@example.com",
		Phone: "0811", BirthDate: "1995-03-20", PasswordHash: "hash",
		Status: models.StatusActive,
	}
	require.NoError(t, mem.CreateUser(context.Background(), &u))

	t.Run("found", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/profile?email=alice@example.com", nil))
		require.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "alice", resp["username"])
		assert.Equal(t, "1995-03-20", resp["birth_date"])
		assert.NotContains(t, resp, "status")
		assert.NotContains(t, resp, "password_hash")
	})

	t.Run("unknown email", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/profile?email=nobody@example.com", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("missing email", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/profile", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestContactEndpoints(t *testing.T) {
	r, mem, _ := newTestRouter(t)
	ctx := context.Background()

	require.NoError(t, mem.CreateContact(ctx, &models.Contact{
		ID: uuid.New(), Name: "WhatsApp", Value: "+62811111111",
	}))
	require.NoError(t, mem.CreateSocialMedia(ctx, &models.SocialMedia{
		ID: uuid.New(), Name: "Instagram", Link: "https://instagram.com/tebakangka",
	}))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/contacts", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var contacts []models.Contact
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &contacts))
	require.Len(t, contacts, 1)
	assert.Equal(t, "WhatsApp", contacts[0].Name)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/social-media", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var social []models.SocialMedia
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &social))
	require.Len(t, social, 1)
	assert.Equal(t, "Instagram", social[0].Name)

	// Writes live behind the admin gate.
	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/contacts",
		strings.NewReader(`{"name":"Telegram","value":"@tebakangka"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMarketEndpoints(t *testing.T) {
	r, mem, _ := newTestRouter(t)
	ctx := context.Background()

	m := models.Market{ID: uuid.New(), Name: "hongkong", Buka: "20:00", Tutup: "23:00"}
	require.NoError(t, mem.CreateMarket(ctx, &m))

	t.Run("list", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/markets", nil))
		require.Equal(t, http.StatusOK, w.Code)
		var markets []models.Market
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &markets))
		assert.Len(t, markets, 1)
	})

	t.Run("get by name", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/market/hongkong", nil))
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/market/nowhere", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

package Controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/grandhotel/restaurant-pos/models"
	"github.com/grandhotel/restaurant-pos/router"
	"github.com/grandhotel/restaurant-pos/sessions"
	"github.com/grandhotel/restaurant-pos/storage"
	"github.com/grandhotel/restaurant-pos/utils"
	"golang.org/x/crypto/bcrypt"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type testEnv struct {
	Router   *gin.Engine
	Store    *storage.Store
	Sessions *sessions.Store
}

// setupEnv builds a full router over a fresh data directory with a seeded
// menu and admin credential.
func setupEnv(t *testing.T) *testEnv {
	t.Helper()

	store := storage.New(t.TempDir())
	if err := store.EnsureLayout(); err != nil {
		t.Fatalf("EnsureLayout: %v", err)
	}
	if err := store.SaveMenu(models.Menu{Items: []models.MenuItem{
		{ID: 1, Name: "Butter Chicken", Price: 320, Category: "Main Course", Available: true},
		{ID: 3, Name: "Chicken Biryani", Price: 250, Category: "Rice", Available: true},
		{ID: 5, Name: "Garlic Naan", Price: 60, Category: "Bread", Available: false},
	}}); err != nil {
		t.Fatalf("SaveMenu: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	if err := store.SeedAdminCredential("admin", string(hash)); err != nil {
		t.Fatalf("SeedAdminCredential: %v", err)
	}

	sess := sessions.NewStore()
	return &testEnv{
		Router:   router.SetupRouter(store, sess),
		Store:    store,
		Sessions: sess,
	}
}

// doJSON performs one request against the test router, marshaling body when
// non-nil and attaching the bearer token when non-empty.
func doJSON(t *testing.T, env *testEnv, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	env.Router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

func loginAdmin(t *testing.T, env *testEnv) string {
	t.Helper()

	w := doJSON(t, env, http.MethodPost, "/api/auth/login",
		map[string]string{"username": "admin", "password": "secret123"}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("login failed: code=%d body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
	}
	decodeBody(t, w, &resp)
	if !resp.Success || resp.Token == "" {
		t.Fatalf("login response missing token: %s", w.Body.String())
	}
	return resp.Token
}

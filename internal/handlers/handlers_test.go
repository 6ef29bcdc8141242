package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"boutique_back_end/internal/database"
	"boutique_back_end/internal/routes"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestAPI monte l'API complète sur une base SQLite en mémoire,
// propre à chaque test.
func newTestAPI(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	r := gin.New()
	routes.RegisterRoutes(r, db)
	return r, db
}

// doJSON exécute une requête JSON contre le routeur de test.
func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(raw)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// registerAndLogin crée un compte et retourne (user_id, token).
func registerAndLogin(t *testing.T, r *gin.Engine, email, role string) (string, string) {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/register", "", gin.H{
		"first_name": "Jean",
		"last_name":  "Dupont",
		"email":      email,
		"password":   "secret123",
		"role":       role,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/login", "", gin.H{
		"email":    email,
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		UserID string `json:"user_id"`
		Token  string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.UserID, resp.Token
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"api/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func adminTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin/registrations", AdminAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
	r.PUT("/selection", SelectAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
	return r
}

func TestAdminAuth(t *testing.T) {
	config.AdminToken = "admin-secret"
	t.Cleanup(func() { config.AdminToken = "" })

	r := adminTestRouter()

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{name: "valid token", header: "Bearer admin-secret", want: http.StatusOK},
		{name: "missing header", header: "", want: http.StatusUnauthorized},
		{name: "wrong token", header: "Bearer nope", want: http.StatusUnauthorized},
		{name: "missing bearer prefix", header: "admin-secret", want: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/admin/registrations", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			r.ServeHTTP(w, req)
			require.Equal(t, tt.want, w.Code)
		})
	}
}

func TestAdminAuthUnconfiguredTokenRejectsAll(t *testing.T) {
	config.AdminToken = ""
	r := adminTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/registrations", nil)
	req.Header.Set("Authorization", "Bearer ")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSelectAuthUsesSeparateToken(t *testing.T) {
	config.AdminToken = "admin-secret"
	config.AdminSelectToken = "select-secret"
	t.Cleanup(func() {
		config.AdminToken = ""
		config.AdminSelectToken = ""
	})

	r := adminTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/selection", nil)
	req.Header.Set("Authorization", "Bearer admin-secret")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code, "admin token must not unlock selection")

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPut, "/selection", nil)
	req.Header.Set("Authorization", "Bearer select-secret")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
}

package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ephanta/eva-app/internal/auth"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type staticVerifier map[string]string

func (v staticVerifier) Verify(_ context.Context, token string) (string, error) {
	userID, ok := v[token]
	if !ok {
		return "", auth.ErrInvalidToken
	}
	return userID, nil
}

func authTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/probe", RequireAuth(staticVerifier{"good-token": "user-9"}), func(c *gin.Context) {
		userID, _ := GetUserID(c)
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
	return r
}

func TestRequireAuth(t *testing.T) {
	router := authTestRouter()

	cases := []struct {
		name   string
		header string
		status int
	}{
		{name: "missing header", header: "", status: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Token good-token", status: http.StatusUnauthorized},
		{name: "unknown token", header: "Bearer bad-token", status: http.StatusUnauthorized},
		{name: "valid token", header: "Bearer good-token", status: http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/probe", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			require.Equal(t, tc.status, w.Code)

			if tc.status == http.StatusOK {
				require.JSONEq(t, `{"user_id":"user-9"}`, w.Body.String())
			}
		})
	}
}

package handler

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/yunhai/blog_go_server/config"
	"github.com/yunhai/blog_go_server/internal/model"
	"github.com/yunhai/blog_go_server/internal/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testContext struct {
	DB *gorm.DB
}

func testConfig() *config.Config {
	return &config.Config{
		Comment: config.CommentConfig{
			DefaultStatus: model.CommentStatusApproved,
			PageSize:      20,
			CacheTTL:      300,
		},
	}
}

func parseResponse(t *testing.T, w *httptest.ResponseRecorder) response.Response {
	t.Helper()

	var resp response.Response
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	return resp
}

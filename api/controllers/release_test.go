package controllers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	mockservices "github.com/hbalmes/webtoapp-api/api/mocks/services"
	"github.com/hbalmes/webtoapp-api/api/models"
	"github.com/hbalmes/webtoapp-api/api/utils/apierrors"
	"github.com/stretchr/testify/assert"
)

func newReleaseRouter(service *mockservices.MockReleaseService) *gin.Engine {
	c := &Release{Service: service}
	router := gin.New()
	router.GET("/releases", c.GetReleases)
	router.DELETE("/delete", c.DeleteRelease)
	router.DELETE("/history", c.DeleteHistory)
	return router
}

func TestRelease_GetReleases(t *testing.T) {
	tests := []struct {
		name     string
		releases []models.Release
		err      apierrors.ApiError
		status   int
		body     string
	}{
		{
			name:     "empty list",
			releases: []models.Release{},
			status:   http.StatusOK,
			body:     `[]`,
		},
		{
			name: "one release",
			releases: []models.Release{
				{ID: 7, Name: "Demo", TagName: "demo-1", Assets: []models.Asset{{ID: 1, Name: "Demo.apk", BrowserDownloadURL: "https://dl/Demo.apk", Category: "package"}}},
			},
			status: http.StatusOK,
			body: `[{"id":7,"name":"Demo","tag_name":"demo-1","html_url":"","draft":false,"prerelease":false,"created_at":"0001-01-01T00:00:00Z","published_at":null,
				"assets":[{"id":1,"name":"Demo.apk","size":0,"content_type":"","browser_download_url":"https://dl/Demo.apk","category":"package"}]}]`,
		},
		{
			name:   "upstream error",
			err:    apierrors.NewUpstreamApiError("GitHub API error: Unauthorized"),
			status: http.StatusInternalServerError,
			body:   `{"error":"GitHub API error: Unauthorized","code":"upstream_error","status":500}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := mockservices.NewMockReleaseService(ctrl)
			service.EXPECT().ListReleases().Return(tt.releases, tt.err).Times(1)

			w := httptest.NewRecorder()
			newReleaseRouter(service).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/releases", nil))

			assert.Equal(t, tt.status, w.Code)
			assert.JSONEq(t, tt.body, w.Body.String())
		})
	}
}

func TestRelease_DeleteRelease(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		deleteTimes int
		id          string
		err         apierrors.ApiError
		status      int
		response    string
	}{
		{
			name:     "invalid json",
			body:     `id=1`,
			status:   http.StatusBadRequest,
			response: `{"error":"Release ID is required","code":"bad_request","status":400}`,
		},
		{
			name:        "numeric id",
			body:        `{"id":123456789}`,
			deleteTimes: 1,
			id:          "123456789",
			status:      http.StatusOK,
			response:    `{"message":"Release deleted successfully"}`,
		},
		{
			name:        "string id",
			body:        `{"id":"42"}`,
			deleteTimes: 1,
			id:          "42",
			status:      http.StatusOK,
			response:    `{"message":"Release deleted successfully"}`,
		},
		{
			name:        "missing id",
			body:        `{}`,
			deleteTimes: 1,
			id:          "",
			err:         apierrors.NewBadRequestApiError("Release ID is required"),
			status:      http.StatusBadRequest,
			response:    `{"error":"Release ID is required","code":"bad_request","status":400}`,
		},
		{
			name:        "zero id",
			body:        `{"id":0}`,
			deleteTimes: 1,
			id:          "0",
			err:         apierrors.NewBadRequestApiError("Release ID is required"),
			status:      http.StatusBadRequest,
			response:    `{"error":"Release ID is required","code":"bad_request","status":400}`,
		},
		{
			name:        "upstream error",
			body:        `{"id":42}`,
			deleteTimes: 1,
			id:          "42",
			err:         apierrors.NewUpstreamApiError("Failed to delete release: Not Found"),
			status:      http.StatusInternalServerError,
			response:    `{"error":"Failed to delete release: Not Found","code":"upstream_error","status":500}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := mockservices.NewMockReleaseService(ctrl)
			service.EXPECT().DeleteRelease(tt.id).Return(tt.err).Times(tt.deleteTimes)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodDelete, "/delete", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			newReleaseRouter(service).ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			assert.JSONEq(t, tt.response, w.Body.String())
		})
	}
}

func TestRelease_DeleteHistory(t *testing.T) {
	tests := []struct {
		name     string
		result   *models.PurgeResult
		err      apierrors.ApiError
		status   int
		response string
	}{
		{
			name:     "runs cleaned up",
			result:   &models.PurgeResult{Attempted: 5, Deleted: 4, Failed: 1},
			status:   http.StatusOK,
			response: `{"message":"Cleaned up 5 workflow runs.","deletedCount":5,"failedCount":1}`,
		},
		{
			name:     "configuration error",
			err:      apierrors.NewConfigurationApiError("server configuration error"),
			status:   http.StatusInternalServerError,
			response: `{"error":"server configuration error","code":"configuration_error","status":500}`,
		},
		{
			name:     "internal error",
			err:      apierrors.NewInternalServerApiError("unexpected", errors.New("boom")),
			status:   http.StatusInternalServerError,
			response: `{"error":"unexpected","code":"internal_server_error","status":500,"details":["boom"]}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := mockservices.NewMockReleaseService(ctrl)
			service.EXPECT().PurgeRunHistory().Return(tt.result, tt.err).Times(1)

			w := httptest.NewRecorder()
			newReleaseRouter(service).ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/history", nil))

			assert.Equal(t, tt.status, w.Code)
			assert.JSONEq(t, tt.response, w.Body.String())
		})
	}
}

func TestReleaseID(t *testing.T) {
	assert.Equal(t, "42", releaseID(float64(42)))
	assert.Equal(t, "1234567890", releaseID(float64(1234567890)))
	assert.Equal(t, "42", releaseID(" 42 "))
	assert.Equal(t, "", releaseID(nil))
	assert.Equal(t, "", releaseID(true))
}

package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hbalmes/webtoapp-api/api/clients"
	"github.com/hbalmes/webtoapp-api/api/configs"
	"github.com/hbalmes/webtoapp-api/api/models"
	"github.com/hbalmes/webtoapp-api/api/services"
	"github.com/hbalmes/webtoapp-api/api/utils/apierrors"
)

type Release struct {
	Service services.ReleaseService
}

// NewReleaseController initializes a ReleaseController
func NewReleaseController(config *configs.Config, githubClient clients.GithubClient) *Release {
	return &Release{
		Service: services.NewReleaseService(config, githubClient),
	}
}

// GetReleases lists the published releases, an empty array when there are none
func (c *Release) GetReleases(ginContext *gin.Context) {

	releases, err := c.Service.ListReleases()

	if err != nil {
		ginContext.JSON(err.Status(), err)
		return
	}

	ginContext.JSON(http.StatusOK, releases)
}

// DeleteRelease deletes the release given in the body
// It could returns
//
//	200OK in case the release was deleted
//	400BadRequest in case of a missing id
//	500InternalServerError in case of a configuration or upstream error
func (c *Release) DeleteRelease(ginContext *gin.Context) {

	var request models.DeleteReleaseRequest

	if err := ginContext.ShouldBindJSON(&request); err != nil {
		ginContext.JSON(
			http.StatusBadRequest,
			apierrors.NewBadRequestApiError("Release ID is required"),
		)
		return
	}

	if err := c.Service.DeleteRelease(releaseID(request.ID)); err != nil {
		ginContext.JSON(err.Status(), err)
		return
	}

	ginContext.JSON(http.StatusOK, gin.H{"message": "Release deleted successfully"})
}

// DeleteHistory removes the most recent workflow runs.
// deletedCount is the number of runs a delete was issued for.
func (c *Release) DeleteHistory(ginContext *gin.Context) {

	result, err := c.Service.PurgeRunHistory()

	if err != nil {
		ginContext.JSON(err.Status(), err)
		return
	}

	ginContext.JSON(http.StatusOK, gin.H{
		"message":      fmt.Sprintf("Cleaned up %d workflow runs.", result.Attempted),
		"deletedCount": result.Attempted,
		"failedCount":  result.Failed,
	})
}

// releaseID accepts the id as a json number or string
func releaseID(raw interface{}) string {
	switch v := raw.(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

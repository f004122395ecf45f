package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hbalmes/webtoapp-api/api/clients"
	"github.com/hbalmes/webtoapp-api/api/configs"
	"github.com/hbalmes/webtoapp-api/api/models"
	"github.com/hbalmes/webtoapp-api/api/services"
	"github.com/hbalmes/webtoapp-api/api/utils/apierrors"
)

const buildsTriggeredMessage = "Builds triggered successfully"

type Build struct {
	Service services.BuildService
}

// NewBuildController initializes a BuildController
func NewBuildController(config *configs.Config, githubClient clients.GithubClient) *Build {
	return &Build{
		Service: services.NewBuildService(config, githubClient),
	}
}

// CreateBuild triggers the packaging workflows for a website
// It could returns
//
//	200OK in case every workflow was triggered
//	400BadRequest in case of missing fields or no valid platform
//	500InternalServerError in case of a configuration error or a failed trigger
func (c *Build) CreateBuild(ginContext *gin.Context) {

	var request models.BuildRequest

	if err := ginContext.ShouldBindJSON(&request); err != nil {
		ginContext.JSON(
			http.StatusBadRequest,
			apierrors.NewBadRequestApiError("invalid build payload"),
		)
		return
	}

	results, err := c.Service.Dispatch(&request)

	if err != nil {
		ginContext.JSON(err.Status(), err)
		return
	}

	ginContext.JSON(http.StatusOK, gin.H{
		"message": buildsTriggeredMessage,
		"results": results,
	})
}

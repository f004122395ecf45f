package app

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hbalmes/webtoapp-api/api/clients"
	"github.com/hbalmes/webtoapp-api/api/configs"
	"github.com/hbalmes/webtoapp-api/api/controllers"
	"github.com/hbalmes/webtoapp-api/api/logger"
	"github.com/hbalmes/webtoapp-api/api/metrics"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires every controller with a single github client built from the config
func NewRouter(config *configs.Config) *gin.Engine {
	return newRouter(clients.NewGithubClient(config), config)
}

func newRouter(githubClient clients.GithubClient, config *configs.Config) *gin.Engine {
	if config.Scope == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	metrics.Register()

	router := gin.New()
	router.Use(RequestID(), logger.Middleware(), gin.Recovery())

	mapUrls(router,
		controllers.NewBuildController(config, githubClient),
		controllers.NewReleaseController(config, githubClient),
	)

	return router
}

func mapUrls(router *gin.Engine, build *controllers.Build, release *controllers.Release) {
	router.GET("/ping", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "pong")
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.POST("/build", build.CreateBuild)
	router.GET("/releases", release.GetReleases)
	router.DELETE("/delete", release.DeleteRelease)
	router.DELETE("/history", release.DeleteHistory)
}

package services

import (
	"fmt"
	"strings"

	"github.com/hbalmes/webtoapp-api/api/clients"
	"github.com/hbalmes/webtoapp-api/api/configs"
	"github.com/hbalmes/webtoapp-api/api/metrics"
	"github.com/hbalmes/webtoapp-api/api/models"
	"github.com/hbalmes/webtoapp-api/api/utils"
	"github.com/hbalmes/webtoapp-api/api/utils/apierrors"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const (
	missingFieldsMessage    = "URL and Name are required"
	noValidPlatformsMessage = "no valid platforms"
	partialFailureMessage   = "Failed to trigger some builds"
)

type BuildService interface {
	Dispatch(request *models.BuildRequest) ([]models.DispatchResult, apierrors.ApiError)
}

// Build represents the BuildService layer
// It has the process configuration and
// A github client instance
type Build struct {
	Config       *configs.Config
	GithubClient clients.GithubClient
}

// NewBuildService initializes a BuildService
func NewBuildService(config *configs.Config, githubClient clients.GithubClient) *Build {
	return &Build{
		Config:       config,
		GithubClient: githubClient,
	}
}

// Dispatch triggers one packaging workflow per requested platform.
// Every platform is dispatched even if a sibling fails, and nothing is rolled back:
// the results always hold exactly one entry per resolved platform.
func (s *Build) Dispatch(request *models.BuildRequest) ([]models.DispatchResult, apierrors.ApiError) {

	if request == nil {
		return nil, apierrors.NewBadRequestApiError(missingFieldsMessage)
	}

	appURL := strings.TrimSpace(request.URL)
	appName := strings.TrimSpace(request.Name)

	if appURL == "" || appName == "" {
		return nil, apierrors.NewBadRequestApiError(missingFieldsMessage)
	}

	platforms := ResolvePlatforms(request.Platforms)
	if len(platforms) == 0 {
		return nil, apierrors.NewBadRequestApiError(noValidPlatformsMessage)
	}

	if err := s.Config.RequireCredentials(); err != nil {
		return nil, err
	}

	payload := &models.DispatchPayload{
		Ref: s.Config.DispatchRef,
		Inputs: models.DispatchInputs{
			AppURL:  appURL,
			AppName: appName,
		},
	}

	results := make([]models.DispatchResult, len(platforms))

	var g errgroup.Group
	for i, platform := range platforms {
		i, platform := i, platform
		g.Go(func() error {
			results[i] = s.dispatchPlatform(platform, payload)
			return nil
		})
	}
	_ = g.Wait()

	var failures []string
	for _, r := range results {
		if !r.Success {
			failures = append(failures, fmt.Sprintf("%s: %s", r.Workflow, r.Detail))
		}
	}

	if len(failures) > 0 {
		return results, apierrors.NewPartialFailureApiError(partialFailureMessage, failures)
	}

	return results, nil
}

func (s *Build) dispatchPlatform(platform models.Platform, payload *models.DispatchPayload) models.DispatchResult {
	workflow, _ := configs.GetPlatformWorkflow(platform)

	result := models.DispatchResult{
		Platform: platform,
		Workflow: workflow,
	}

	response := s.GithubClient.DispatchWorkflow(workflow, payload)

	switch {
	case response.Err() != nil:
		result.Detail = response.Err().Error()
	case !utils.IsSuccess(response.StatusCode()):
		result.Detail = response.String()
		if result.Detail == "" {
			result.Detail = response.Status()
		}
	default:
		result.Success = true
	}

	metrics.ObserveDispatch(string(platform), result.Success)

	if !result.Success {
		log.Error().
			Str("platform", string(platform)).
			Str("workflow", workflow).
			Str("detail", result.Detail).
			Msg("failed to trigger workflow")
		return result
	}

	log.Info().
		Str("platform", string(platform)).
		Str("workflow", workflow).
		Str("app_name", payload.Inputs.AppName).
		Msg("workflow triggered")

	return result
}

// ResolvePlatforms maps the requested names to known platforms.
// An empty request means every known platform, unknown names are dropped
// and the result always follows the known platforms order.
func ResolvePlatforms(requested []string) []models.Platform {
	known := configs.GetKnownPlatforms()

	if len(requested) == 0 {
		return known
	}

	names := utils.Normalize(requested)

	var platforms []models.Platform
	for _, p := range known {
		if utils.StringContains(names, string(p)) {
			platforms = append(platforms, p)
		}
	}

	return platforms
}

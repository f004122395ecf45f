package services

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/hbalmes/webtoapp-api/api/clients"
	"github.com/hbalmes/webtoapp-api/api/configs"
	"github.com/hbalmes/webtoapp-api/api/metrics"
	"github.com/hbalmes/webtoapp-api/api/models"
	"github.com/hbalmes/webtoapp-api/api/utils"
	"github.com/hbalmes/webtoapp-api/api/utils/apierrors"
	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type ReleaseService interface {
	ListReleases() ([]models.Release, apierrors.ApiError)
	DeleteRelease(id string) apierrors.ApiError
	PurgeRunHistory() (*models.PurgeResult, apierrors.ApiError)
}

// Release represents the ReleaseService layer.
// Releases and runs live on the build platform only, nothing is cached here.
type Release struct {
	Config       *configs.Config
	GithubClient clients.GithubClient
}

// NewReleaseService initializes a ReleaseService
func NewReleaseService(config *configs.Config, githubClient clients.GithubClient) *Release {
	return &Release{
		Config:       config,
		GithubClient: githubClient,
	}
}

// ListReleases gets the published releases in the order the platform returns them.
// Credentials are optional here, an anonymous read only gets a lower rate limit.
func (s *Release) ListReleases() ([]models.Release, apierrors.ApiError) {

	if err := s.Config.RequireRepository(); err != nil {
		return nil, err
	}

	response := s.GithubClient.ListReleases()

	if response.Err() != nil {
		metrics.ObserveUpstreamError("list_releases")
		return nil, apierrors.NewUpstreamApiError(fmt.Sprintf("GitHub API error: %s", response.Err().Error()))
	}

	if isUninitializedRepository(response) {
		log.Debug().Str("repository", s.Config.GithubRepository).Msg("repository not found, returning empty release list")
		return []models.Release{}, nil
	}

	if !utils.IsSuccess(response.StatusCode()) {
		metrics.ObserveUpstreamError("list_releases")
		return nil, apierrors.NewUpstreamApiError(fmt.Sprintf("GitHub API error: %s", response.Status()))
	}

	releases := make([]models.Release, 0)
	if err := json.Unmarshal(response.Bytes(), &releases); err != nil {
		return nil, apierrors.NewUpstreamApiError("error binding github releases response")
	}

	for i := range releases {
		for j := range releases[i].Assets {
			releases[i].Assets[j].Category = models.AssetCategory(releases[i].Assets[j].Name)
		}
	}

	return releases, nil
}

// isUninitializedRepository is the only place where an upstream error becomes a success:
// a 404 on the release list means nothing has been published yet.
// Do not extend it to other status codes.
func isUninitializedRepository(response clients.Response) bool {
	return response.StatusCode() == http.StatusNotFound
}

// DeleteRelease removes a release and its assets.
// There is no confirmation step here, the caller is expected to ask for it.
func (s *Release) DeleteRelease(id string) apierrors.ApiError {

	id = strings.TrimSpace(id)
	if id == "" {
		return apierrors.NewBadRequestApiError("Release ID is required")
	}

	n, err := strconv.ParseUint(id, 10, 64)
	if err != nil {
		return apierrors.NewBadRequestApiError("Release ID must be numeric")
	}
	// ids start at 1, a zero id is an unset field
	if n == 0 {
		return apierrors.NewBadRequestApiError("Release ID is required")
	}

	if err := s.Config.RequireCredentials(); err != nil {
		return err
	}

	response := s.GithubClient.DeleteRelease(id)

	if response.Err() != nil {
		metrics.ObserveUpstreamError("delete_release")
		return apierrors.NewUpstreamApiError(fmt.Sprintf("Failed to delete release: %s", response.Err().Error()))
	}

	if !utils.IsSuccess(response.StatusCode()) {
		metrics.ObserveUpstreamError("delete_release")
		return apierrors.NewUpstreamApiError(fmt.Sprintf("Failed to delete release: %s", response.Status()))
	}

	log.Info().Str("release_id", id).Msg("release deleted")

	return nil
}

package clients

// Github client, connects the api with the GitHub REST api
// and implements the calls needed to dispatch packaging workflows
// and to read and clean up the releases and runs they produce

import (
	"fmt"
	"net/http"

	"github.com/hbalmes/webtoapp-api/api/configs"
	"github.com/hbalmes/webtoapp-api/api/models"
	"github.com/mercadolibre/golang-restclient/rest"
)

const githubMediaType = "application/vnd.github.v3+json"

// GithubClient maps every build platform operation to its REST path.
// Responses are returned raw, the services decide what a status means.
type GithubClient interface {
	DispatchWorkflow(workflow string, payload *models.DispatchPayload) Response
	ListReleases() Response
	DeleteRelease(id string) Response
	ListWorkflowRuns(perPage int) Response
	DeleteWorkflowRun(id int64) Response
}

type githubClient struct {
	Client     Client
	Repository string
}

func NewGithubClient(config *configs.Config) GithubClient {
	return &githubClient{
		Client: &client{
			RestClient: &rest.RequestBuilder{
				BaseURL:        config.GithubBaseURL,
				Timeout:        config.Timeout,
				Headers:        GetGithubHeaders(config),
				ContentType:    rest.BYTES,
				DisableCache:   true,
				DisableTimeout: false,
			},
		},
		Repository: config.GithubRepository,
	}
}

// GetGithubHeaders builds the headers sent on every call.
// Authorization is only set when a token is configured, anonymous calls are rate limited.
func GetGithubHeaders(config *configs.Config) http.Header {
	hs := make(http.Header)
	hs.Set("cache-control", "no-cache")
	hs.Set("Accept", githubMediaType)
	hs.Set("Content-Type", "application/json")
	if config.HasCredentials() {
		hs.Set("Authorization", fmt.Sprintf("Bearer %s", config.GithubToken))
	}
	return hs
}

// DispatchWorkflow triggers a workflow_dispatch event
// This perform a POST request to Github api
func (c *githubClient) DispatchWorkflow(workflow string, payload *models.DispatchPayload) Response {
	return c.Client.Post(fmt.Sprintf("/repos/%s/actions/workflows/%s/dispatches", c.Repository, workflow), payload)
}

func (c *githubClient) ListReleases() Response {
	return c.Client.Get(fmt.Sprintf("/repos/%s/releases", c.Repository))
}

func (c *githubClient) DeleteRelease(id string) Response {
	return c.Client.Delete(fmt.Sprintf("/repos/%s/releases/%s", c.Repository, id))
}

// ListWorkflowRuns gets the most recent runs of every workflow in the repository
func (c *githubClient) ListWorkflowRuns(perPage int) Response {
	return c.Client.Get(fmt.Sprintf("/repos/%s/actions/runs?per_page=%d", c.Repository, perPage))
}

func (c *githubClient) DeleteWorkflowRun(id int64) Response {
	return c.Client.Delete(fmt.Sprintf("/repos/%s/actions/runs/%d", c.Repository, id))
}

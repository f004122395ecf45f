package services

import (
	"fmt"

	"github.com/hbalmes/webtoapp-api/api/metrics"
	"github.com/hbalmes/webtoapp-api/api/models"
	"github.com/hbalmes/webtoapp-api/api/utils"
	"github.com/hbalmes/webtoapp-api/api/utils/apierrors"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// PurgeRunHistory deletes the most recent workflow runs.
// It is a best effort cleanup: every fetched run gets one delete call, failed deletes are
// only counted, and calling it again targets whatever is left.
func (s *Release) PurgeRunHistory() (*models.PurgeResult, apierrors.ApiError) {

	if err := s.Config.RequireCredentials(); err != nil {
		return nil, err
	}

	response := s.GithubClient.ListWorkflowRuns(s.Config.RunsPageSize)

	if response.Err() != nil {
		metrics.ObserveUpstreamError("list_runs")
		return nil, apierrors.NewUpstreamApiError(fmt.Sprintf("Failed to fetch runs: %s", response.Err().Error()))
	}

	if !utils.IsSuccess(response.StatusCode()) {
		metrics.ObserveUpstreamError("list_runs")
		return nil, apierrors.NewUpstreamApiError(fmt.Sprintf("Failed to fetch runs: %s", response.Status()))
	}

	var runList models.WorkflowRunList
	if err := json.Unmarshal(response.Bytes(), &runList); err != nil {
		return nil, apierrors.NewUpstreamApiError("error binding github workflow runs response")
	}

	runs := runList.WorkflowRuns
	deleted := make([]bool, len(runs))

	var g errgroup.Group
	for i, run := range runs {
		i, run := i, run
		g.Go(func() error {
			deleted[i] = s.deleteRun(run)
			return nil
		})
	}
	_ = g.Wait()

	result := &models.PurgeResult{Attempted: len(runs)}
	for _, ok := range deleted {
		if ok {
			result.Deleted++
		} else {
			result.Failed++
		}
	}

	log.Info().
		Int("attempted", result.Attempted).
		Int("deleted", result.Deleted).
		Int("failed", result.Failed).
		Msg("workflow run history cleaned up")

	return result, nil
}

func (s *Release) deleteRun(run models.WorkflowRun) bool {
	response := s.GithubClient.DeleteWorkflowRun(run.ID)

	ok := response.Err() == nil && utils.IsSuccess(response.StatusCode())
	metrics.ObserveRunDeletion(ok)

	if !ok {
		log.Warn().
			Int64("run_id", run.ID).
			Int("status", response.StatusCode()).
			Msg("could not delete workflow run")
	}

	return ok
}

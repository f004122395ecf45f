package models

import "time"

type WorkflowRun struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Status     string    `json:"status"`
	Conclusion string    `json:"conclusion"`
	HeadBranch string    `json:"head_branch"`
	CreatedAt  time.Time `json:"created_at"`
}

type WorkflowRunList struct {
	TotalCount   int           `json:"total_count"`
	WorkflowRuns []WorkflowRun `json:"workflow_runs"`
}

// PurgeResult summarizes a best effort run history cleanup.
// Attempted is always the number of fetched runs.
type PurgeResult struct {
	Attempted int `json:"attempted"`
	Deleted   int `json:"deleted"`
	Failed    int `json:"failed"`
}

package models

// Platform is a packaging target that maps to a remote workflow
type Platform string

// BuildRequest is the payload received to package a website
type BuildRequest struct {
	URL       string   `json:"url"`
	Name      string   `json:"name"`
	Platforms []string `json:"platforms"`
}

// DispatchPayload is the body sent to the workflow dispatch endpoint
type DispatchPayload struct {
	Ref    string         `json:"ref"`
	Inputs DispatchInputs `json:"inputs"`
}

type DispatchInputs struct {
	AppURL  string `json:"app_url"`
	AppName string `json:"app_name"`
}

// DispatchResult is the outcome of one workflow dispatch
type DispatchResult struct {
	Platform Platform `json:"platform"`
	Workflow string   `json:"workflow"`
	Success  bool     `json:"success"`
	Detail   string   `json:"detail,omitempty"`
}

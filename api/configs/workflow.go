package configs

import "github.com/hbalmes/webtoapp-api/api/models"

const (
	PlatformWindows models.Platform = "windows"
	PlatformAndroid models.Platform = "android"
)

// knownPlatforms keeps the order in which platforms are dispatched and reported
var knownPlatforms = []models.Platform{PlatformWindows, PlatformAndroid}

var platformWorkflows = map[models.Platform]string{
	PlatformWindows: "build-windows.yml",
	PlatformAndroid: "build-android.yml",
}

// GetKnownPlatforms returns every platform that can be built
func GetKnownPlatforms() []models.Platform {
	platforms := make([]models.Platform, len(knownPlatforms))
	copy(platforms, knownPlatforms)
	return platforms
}

// GetPlatformWorkflow returns the workflow file that packages the given platform
func GetPlatformWorkflow(platform models.Platform) (string, bool) {
	wf, ok := platformWorkflows[platform]
	return wf, ok
}

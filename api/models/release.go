package models

import (
	"strings"
	"time"
)

const (
	AssetCategoryPackage   = "package"
	AssetCategoryInstaller = "installer"
	AssetCategoryOther     = "other"
)

var assetCategories = map[string]string{
	".apk": AssetCategoryPackage,
	".aab": AssetCategoryPackage,
	".exe": AssetCategoryInstaller,
	".msi": AssetCategoryInstaller,
}

type Release struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	TagName     string     `json:"tag_name"`
	HTMLURL     string     `json:"html_url"`
	Draft       bool       `json:"draft"`
	Prerelease  bool       `json:"prerelease"`
	CreatedAt   time.Time  `json:"created_at"`
	PublishedAt *time.Time `json:"published_at"`
	Assets      []Asset    `json:"assets"`
}

type Asset struct {
	ID                 int64  `json:"id"`
	Name               string `json:"name"`
	Size               int64  `json:"size"`
	ContentType        string `json:"content_type"`
	BrowserDownloadURL string `json:"browser_download_url"`
	Category           string `json:"category"`
}

// AssetCategory classifies a file by its suffix. Only used for display.
func AssetCategory(fileName string) string {
	name := strings.ToLower(fileName)
	for suffix, category := range assetCategories {
		if strings.HasSuffix(name, suffix) {
			return category
		}
	}
	return AssetCategoryOther
}

// DeleteReleaseRequest is the payload received to delete a release.
// The id may come as a json number or string.
type DeleteReleaseRequest struct {
	ID interface{} `json:"id"`
}

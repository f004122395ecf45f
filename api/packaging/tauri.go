package packaging

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"unicode"

	"github.com/coreos/go-semver/semver"
	jsoniter "github.com/json-iterator/go"
)

const (
	identifierPrefix   = "com.converted."
	identifierFallback = "app"
	productNamePrefix  = "App "
)

var (
	json          = jsoniter.ConfigCompatibleWithStandardLibrary
	nonIdentifier = regexp.MustCompile(`[^a-z0-9]`)
)

// Options holds the values written into the packaging configuration
type Options struct {
	AppName string
	AppURL  string
	Version string
}

// Result is what ended up in the configuration file
type Result struct {
	ProductName string
	Identifier  string
	URL         string
	Version     string
}

// Identifier builds the bundle identifier from an app name.
// Bundle segments can not be empty nor start with a digit.
func Identifier(appName string) string {
	id := nonIdentifier.ReplaceAllString(strings.ToLower(appName), "")
	if id == "" || startsWithDigit(id) {
		id = identifierFallback + id
	}
	return identifierPrefix + id
}

// ProductName returns the display name, product names can not start with a digit
func ProductName(appName string) string {
	if startsWithDigit(appName) {
		return productNamePrefix + appName
	}
	return appName
}

func startsWithDigit(s string) bool {
	for _, r := range s {
		return unicode.IsDigit(r)
	}
	return false
}

// NormalizeVersion validates a semantic version, a leading "v" is accepted
func NormalizeVersion(version string) (string, error) {
	v, err := semver.NewVersion(strings.TrimPrefix(strings.TrimSpace(version), "v"))
	if err != nil {
		return "", fmt.Errorf("invalid app version %q: %w", version, err)
	}
	return v.String(), nil
}

// Configure rewrites the packaging configuration file in place
func Configure(path string, opts Options) (*Result, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	config := map[string]interface{}{}
	if err := json.Unmarshal(raw, &config); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	result, err := Apply(config, opts)
	if err != nil {
		return nil, err
	}

	out, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", path, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	if err := os.WriteFile(path, out, info.Mode()); err != nil {
		return nil, fmt.Errorf("writing %s: %w", path, err)
	}

	return result, nil
}

// Apply sets the app fields on a decoded configuration.
// The window is only updated when app.windows has at least one entry.
func Apply(config map[string]interface{}, opts Options) (*Result, error) {
	result := &Result{
		ProductName: ProductName(opts.AppName),
		Identifier:  Identifier(opts.AppName),
		URL:         opts.AppURL,
	}

	if opts.Version != "" {
		version, err := NormalizeVersion(opts.Version)
		if err != nil {
			return nil, err
		}
		result.Version = version
		config["version"] = version
	}

	config["productName"] = result.ProductName
	config["identifier"] = result.Identifier

	app, ok := config["app"].(map[string]interface{})
	if !ok {
		return result, nil
	}
	windows, ok := app["windows"].([]interface{})
	if !ok || len(windows) == 0 {
		return result, nil
	}
	if window, ok := windows[0].(map[string]interface{}); ok {
		window["title"] = result.ProductName
		window["url"] = result.URL
	}

	return result, nil
}

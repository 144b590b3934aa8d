package tracking

import (
	"fmt"
	"net/url"
	"os"

	"outreachai_backend/internal/config"
)

// Base URL sources, in precedence order. The winning source is
// reported by the diagnostics endpoint so misconfigured deployments
// that fall through to the local fallback are visible.
const (
	SourceSetting  = "admin_setting"
	SourceOverride = "app_base_url"
	SourceOAuth    = "oauth_redirect"
	SourcePlatform = "platform_url"
	SourceFallback = "local_fallback"
)

// ResolveBaseURL picks the public base URL for tracking links:
// explicit override, then the OAuth callback origin, then the
// platform-provided deployment URL, then localhost.
func ResolveBaseURL(override, oauthRedirect, platformURL string, port int) (base string, source string) {
	if override != "" {
		return trimSlash(override), SourceOverride
	}
	if oauthRedirect != "" {
		if u, err := url.Parse(oauthRedirect); err == nil && u.Scheme != "" && u.Host != "" {
			return u.Scheme + "://" + u.Host, SourceOAuth
		}
	}
	if platformURL != "" {
		return trimSlash(platformURL), SourcePlatform
	}
	return fmt.Sprintf("http://localhost:%d", port), SourceFallback
}

// RuntimeBaseURL layers the admin-managed app_base_url setting over
// the config resolution. The send path and the diagnostics endpoint
// both resolve through here, so diagnostics always reports the base
// URL outgoing mail actually uses.
func RuntimeBaseURL(settingValue string, cfg *config.Config) (string, string) {
	if settingValue != "" {
		return trimSlash(settingValue), SourceSetting
	}
	return BaseURLFromConfig(cfg)
}

// BaseURLFromConfig resolves the base URL from application config and
// the PLATFORM_URL environment variable.
func BaseURLFromConfig(cfg *config.Config) (string, string) {
	return ResolveBaseURL(
		cfg.Tracking.AppBaseURL,
		cfg.Google.RedirectURL,
		os.Getenv("PLATFORM_URL"),
		cfg.Server.Port,
	)
}

func trimSlash(s string) string {
	for len(s) > 0 && s[len(s)-1] == '/' {
		s = s[:len(s)-1]
	}
	return s
}

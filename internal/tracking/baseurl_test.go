package tracking

import (
	"testing"

	"outreachai_backend/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestResolveBaseURL_Precedence(t *testing.T) {
	tests := []struct {
		name       string
		override   string
		oauth      string
		platform   string
		wantBase   string
		wantSource string
	}{
		{
			name:       "override wins over everything",
			override:   "https://outreach.example.com/",
			oauth:      "https://other.example.com/auth/gmail/callback",
			platform:   "https://deploy.example.com",
			wantBase:   "https://outreach.example.com",
			wantSource: SourceOverride,
		},
		{
			name:       "oauth callback origin when no override",
			oauth:      "https://other.example.com/auth/gmail/callback",
			platform:   "https://deploy.example.com",
			wantBase:   "https://other.example.com",
			wantSource: SourceOAuth,
		},
		{
			name:       "platform url when oauth absent",
			platform:   "https://deploy.example.com/",
			wantBase:   "https://deploy.example.com",
			wantSource: SourcePlatform,
		},
		{
			name:       "local fallback",
			wantBase:   "http://localhost:4000",
			wantSource: SourceFallback,
		},
		{
			name:       "unparseable oauth redirect falls through",
			oauth:      "not a url",
			wantBase:   "http://localhost:4000",
			wantSource: SourceFallback,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base, source := ResolveBaseURL(tt.override, tt.oauth, tt.platform, 4000)
			assert.Equal(t, tt.wantBase, base)
			assert.Equal(t, tt.wantSource, source)
		})
	}
}

func TestRuntimeBaseURL_SettingWinsOverConfig(t *testing.T) {
	cfg := &config.Config{}
	cfg.Tracking.AppBaseURL = "https://config.example.com"
	cfg.Server.Port = 4000

	base, source := RuntimeBaseURL("https://admin.example.com/", cfg)
	assert.Equal(t, "https://admin.example.com", base)
	assert.Equal(t, SourceSetting, source)
}

func TestRuntimeBaseURL_EmptySettingFallsThroughToConfig(t *testing.T) {
	cfg := &config.Config{}
	cfg.Tracking.AppBaseURL = "https://config.example.com"
	cfg.Server.Port = 4000

	base, source := RuntimeBaseURL("", cfg)
	assert.Equal(t, "https://config.example.com", base)
	assert.Equal(t, SourceOverride, source)
}

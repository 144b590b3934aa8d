package services

import (
	"outreachai_backend/internal/config"
	"outreachai_backend/internal/tracking"
)

func appBaseURL(cfg *config.Config) string {
	base, _ := tracking.BaseURLFromConfig(cfg)
	return base
}

func normalizePage(page, size int) (int, int) {
	if page < 1 {
		page = 1
	}
	if size < 1 || size > 100 {
		size = 20
	}
	return page, size
}

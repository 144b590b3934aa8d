package handlers

import (
	"net/http"

	"outreachai_backend/internal/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Health reports liveness plus database reachability. The database
// handle comes from DBMiddleware so tests can swap a transaction in.
func Health(c *gin.Context) {
	status := "ok"
	dbStatus := "ok"

	if v, exists := c.Get(middleware.DBKey); exists {
		if db, ok := v.(*gorm.DB); ok {
			sqlDB, err := db.DB()
			if err != nil || sqlDB.Ping() != nil {
				status = "degraded"
				dbStatus = "unreachable"
			}
		}
	} else {
		dbStatus = "unknown"
	}

	code := http.StatusOK
	if status != "ok" {
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{"status": status, "database": dbStatus})
}

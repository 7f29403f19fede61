package services

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/salonsuite/salon-api/internal/config"
	"github.com/salonsuite/salon-api/internal/utils"
)

// HealthCheckResult represents the result of a health check
type HealthCheckResult struct {
	Status       string            `json:"status"`
	Database     string            `json:"database"`
	MediaHost    string            `json:"mediaHost"`
	Details      map[string]string `json:"details,omitempty"`
	ErrorMessage string            `json:"error,omitempty"`
}

// HealthCheck probes the database and, when configured, the media host.
func HealthCheck(cfg *config.Config, db *gorm.DB) HealthCheckResult {
	result := HealthCheckResult{
		Status:  "healthy",
		Details: make(map[string]string),
	}

	// Database connectivity
	sqlDB, err := db.DB()
	if err != nil {
		result.Status = "unhealthy"
		result.Database = "error"
		result.Details["database_error"] = err.Error()
		result.ErrorMessage = fmt.Sprintf("Database connection error: %v", err)
		log.Printf("Health check failed - database connection: %v", err)
	} else if err := sqlDB.Ping(); err != nil {
		result.Status = "unhealthy"
		result.Database = "unreachable"
		result.Details["database_ping_error"] = err.Error()
		result.ErrorMessage = fmt.Sprintf("Database ping failed: %v", err)
		log.Printf("Health check failed - database ping: %v", err)
	} else {
		result.Database = "ok"
		result.Details["database_type"] = cfg.DBType
		result.Details["database_name"] = cfg.DBDatabase
	}

	// Media host connectivity (only meaningful when credentials exist)
	if !cfg.MediaConfigured() {
		result.MediaHost = "not configured"
	} else if err := utils.PingMediaHost(cfg.CloudinaryHost); err != nil {
		result.Status = "unhealthy"
		result.MediaHost = "unreachable"
		result.Details["media_host_error"] = err.Error()
		if result.ErrorMessage == "" {
			result.ErrorMessage = fmt.Sprintf("Media host ping failed: %v", err)
		} else {
			result.ErrorMessage += fmt.Sprintf("; media host ping failed: %v", err)
		}
		log.Printf("Health check failed - media host ping: %v", err)
	} else {
		result.MediaHost = "ok"
	}

	return result
}

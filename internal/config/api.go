package config

import (
	"fmt"
	"os"

	"github.com/mohannadkhirallah/qatar-law-harmony/pkg/formatting"
	"github.com/mohannadkhirallah/qatar-law-harmony/pkg/middleware"
	"github.com/mohannadkhirallah/qatar-law-harmony/pkg/openapi"
	"github.com/mohannadkhirallah/qatar-law-harmony/pkg/pagination"
)

const defaultMaxUploadSize = 50 * 1024 * 1024

var corsEnv = &middleware.CORSEnv{
	Enabled:          "HARMONY_CORS_ENABLED",
	Origins:          "HARMONY_CORS_ORIGINS",
	AllowedMethods:   "HARMONY_CORS_ALLOWED_METHODS",
	AllowedHeaders:   "HARMONY_CORS_ALLOWED_HEADERS",
	AllowCredentials: "HARMONY_CORS_ALLOW_CREDENTIALS",
	MaxAge:           "HARMONY_CORS_MAX_AGE",
}

var paginationEnv = &pagination.ConfigEnv{
	DefaultPageSize: "HARMONY_PAGINATION_DEFAULT_PAGE_SIZE",
	MaxPageSize:     "HARMONY_PAGINATION_MAX_PAGE_SIZE",
}

var openapiEnv = &openapi.ConfigEnv{
	Title:       "HARMONY_OPENAPI_TITLE",
	Description: "HARMONY_OPENAPI_DESCRIPTION",
}

// APIConfig holds the JSON API mount point and its nested policies.
// MaxUploadSize bounds the upload metadata form, which the dashboard
// advertises but never stores.
type APIConfig struct {
	BasePath      string                `toml:"base_path"`
	MaxUploadSize string                `toml:"max_upload_size"`
	CORS          middleware.CORSConfig `toml:"cors"`
	Pagination    pagination.Config     `toml:"pagination"`
	OpenAPI       openapi.Config        `toml:"openapi"`
}

func (c *APIConfig) MaxUploadSizeBytes() int64 {
	size, err := formatting.ParseBytes(c.MaxUploadSize)
	if err != nil {
		return defaultMaxUploadSize
	}
	return size
}

// Finalize applies defaults, environment overrides, and validation to the
// API section and its nested configs.
func (c *APIConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if _, err := formatting.ParseBytes(c.MaxUploadSize); err != nil {
		return fmt.Errorf("invalid max_upload_size: %w", err)
	}
	if err := c.CORS.Finalize(corsEnv); err != nil {
		return fmt.Errorf("cors: %w", err)
	}
	if err := c.Pagination.Finalize(paginationEnv); err != nil {
		return fmt.Errorf("pagination: %w", err)
	}
	if err := c.OpenAPI.Finalize(openapiEnv); err != nil {
		return fmt.Errorf("openapi: %w", err)
	}
	return nil
}

func (c *APIConfig) Merge(overlay *APIConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.MaxUploadSize != "" {
		c.MaxUploadSize = overlay.MaxUploadSize
	}

	c.CORS.Merge(&overlay.CORS)
	c.Pagination.Merge(&overlay.Pagination)
	c.OpenAPI.Merge(&overlay.OpenAPI)
}

func (c *APIConfig) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = "/api"
	}
	if c.MaxUploadSize == "" {
		c.MaxUploadSize = "50MB"
	}
}

func (c *APIConfig) loadEnv() {
	if v := os.Getenv("HARMONY_API_BASE_PATH"); v != "" {
		c.BasePath = v
	}
	if v := os.Getenv("HARMONY_API_MAX_UPLOAD_SIZE"); v != "" {
		c.MaxUploadSize = v
	}
}

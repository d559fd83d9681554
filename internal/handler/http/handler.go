// Package http implements the HTTP transport layer of the mock Eka Care API
// server. It provides middleware, route handlers, and request/response
// utilities mirroring the real service's three endpoints: account login,
// document upload, and per-document result.
package http

import (
	"github.com/MKhiriev/go-eka-mr/internal/config"
	"github.com/MKhiriev/go-eka-mr/internal/logger"
	"github.com/MKhiriev/go-eka-mr/internal/store"
)

type Handler struct {
	cfg  *config.MockConfig
	docs *store.DocumentStore

	logger *logger.Logger
}

func NewHandler(cfg *config.MockConfig, docs *store.DocumentStore, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		cfg:    cfg,
		docs:   docs,
		logger: logger,
	}
}

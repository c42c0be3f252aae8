/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/suparena/ddbgateway/datastore"
)

// TestDBPath is the single route served by the gateway.
const TestDBPath = "/testdb"

// Handler serves table scans for one fixed table.
type Handler struct {
	scanner   datastore.Scanner
	tableName string
	logger    logrus.FieldLogger
}

// NewHandler creates a Handler scanning tableName through scanner.
func NewHandler(scanner datastore.Scanner, tableName string, logger logrus.FieldLogger) *Handler {
	return &Handler{
		scanner:   scanner,
		tableName: tableName,
		logger:    logger,
	}
}

// NewRouter builds the gin engine with the middleware chain and the
// GET /testdb route. Other paths get 404 and other methods on /testdb get 405.
func NewRouter(scanner datastore.Scanner, tableName string, logger logrus.FieldLogger) *gin.Engine {
	h := NewHandler(scanner, tableName, logger)

	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(RequestID())
	router.Use(RequestLogger(logger))
	router.Use(Recovery(logger))
	router.Use(CORS())

	router.GET(TestDBPath, h.ScanTable)

	return router
}

// ScanTable handles GET /testdb.
func (h *Handler) ScanTable(c *gin.Context) {
	result, err := h.scanner.ScanTable(c.Request.Context(), h.tableName)
	if err != nil {
		h.logger.WithFields(logrus.Fields{
			"table":      h.tableName,
			"request_id": c.GetString(requestIDKey),
		}).WithError(err).Error("scan failed")
		c.JSON(http.StatusInternalServerError, Failed(ScanFailedMessage))
		return
	}

	c.JSON(http.StatusOK, Succeeded(result))
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mohit-5899/CSIRNet-Mock-Test/internal/provider"
	"github.com/Mohit-5899/CSIRNet-Mock-Test/internal/response"
)

// CatalogHandler serves the mock-test catalog.
type CatalogHandler struct {
	catalog *provider.Catalog
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalog *provider.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// ListTests godoc
// GET /api/v1/tests
// Returns every available mock test for the selection page.
func (h *CatalogHandler) ListTests(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"tests": h.catalog.ListTests()})
}

package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/royaltyguard/royalty-checker/internal/api/shared/dto"
	"github.com/royaltyguard/royalty-checker/internal/api/shared/executor"
)

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// CheckNfts classifies the royalty payment of every requested mint
	// POST /api/check-nfts
	CheckNfts(c *gin.Context)

	// CheckNftsPage classifies one page of the requested mints (requires authentication)
	// POST /api/v1/check-nfts
	CheckNftsPage(c *gin.Context)

	// CheckUnlisted classifies whether every requested mint is delisted
	// POST /api/check-nfts-unlisted
	CheckUnlisted(c *gin.Context)

	// CheckUnlistedPage classifies one page of the requested mints (requires authentication)
	// POST /api/v1/check-nfts-unlisted
	CheckUnlistedPage(c *gin.Context)

	// RoyaltyBreakdown returns the per-day royalty compliance of a collection
	// POST /api/royalty-breakdown
	RoyaltyBreakdown(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	executor executor.Executor
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(exec executor.Executor) Handler {
	return &handler{
		executor: exec,
	}
}

func (h *handler) CheckNfts(c *gin.Context) {
	var req dto.CheckNftsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondError(c, err, "Invalid request body")
		return
	}

	checked, err := h.executor.CheckNfts(c.Request.Context(), req.Mints)
	if err != nil {
		respondError(c, err, "Failed to check NFTs")
		return
	}

	c.JSON(http.StatusOK, checked)
}

func (h *handler) CheckNftsPage(c *gin.Context) {
	var req dto.CheckNftsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondError(c, err, "Invalid request body")
		return
	}

	response, err := h.executor.CheckNftsPage(c.Request.Context(), req.Mints, req.PaginationToken)
	if err != nil {
		respondError(c, err, "Failed to check NFTs")
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) CheckUnlisted(c *gin.Context) {
	var req dto.CheckUnlistedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondError(c, err, "Invalid request body")
		return
	}

	checked, err := h.executor.CheckUnlisted(c.Request.Context(), req.Mints, req.Days())
	if err != nil {
		respondError(c, err, "Failed to check unlisted NFTs")
		return
	}

	c.JSON(http.StatusOK, checked)
}

func (h *handler) CheckUnlistedPage(c *gin.Context) {
	var req dto.CheckUnlistedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondError(c, err, "Invalid request body")
		return
	}

	response, err := h.executor.CheckUnlistedPage(c.Request.Context(), req.Mints, req.Days(), req.PaginationToken)
	if err != nil {
		respondError(c, err, "Failed to check unlisted NFTs")
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) RoyaltyBreakdown(c *gin.Context) {
	var req dto.RoyaltyBreakdownRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondError(c, err, "Invalid request body")
		return
	}

	breakdown, err := h.executor.RoyaltyBreakdown(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to build royalty breakdown")
		return
	}

	c.JSON(http.StatusOK, breakdown)
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:  "ok",
		Service: "royalty-checker-api",
	})
}

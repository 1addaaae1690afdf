package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "task-capture/pkg/errors"
)

// processParseReq binds the parse preview body.
func (h *handler) processParseReq(c *gin.Context) (parseReq, error) {
	var req parseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.BadRequestf("invalid request body: %v", err)
	}
	return req, req.validate()
}

// processSubmitReq binds and validates the submit body.
func (h *handler) processSubmitReq(c *gin.Context) (submitReq, error) {
	var req submitReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.BadRequestf("invalid request body: %v", err)
	}
	if err := req.validate(); err != nil {
		return req, h.mapError(err)
	}
	return req, nil
}

// processEditReq binds and validates the edit body + URI param.
func (h *handler) processEditReq(c *gin.Context) (editReq, error) {
	var req editReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.BadRequestf("invalid request body: %v", err)
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, pkgErrors.BadRequestf("id is required")
	}
	if err := req.validate(); err != nil {
		return req, h.mapError(err)
	}
	return req, nil
}

func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, pkgErrors.BadRequestf("invalid query: %v", err)
	}
	return req, req.validate()
}

func (h *handler) processExportReq(c *gin.Context) (exportReq, error) {
	var req exportReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, pkgErrors.BadRequestf("invalid query: %v", err)
	}
	return req, req.validate()
}

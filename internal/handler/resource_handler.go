package handler

import (
	"net/http"

	"github.com/dancestudio/internal/service"
	"github.com/gin-gonic/gin"
)

// Resource exposes one service.Resource as a REST collection.
type Resource[T service.Record, P service.Payload[T]] struct {
	svc    *service.Resource[T, P]
	scopes func(*gin.Context) []service.Scope
}

// NewResource wraps svc. scopes, when set, narrows the list endpoint.
func NewResource[T service.Record, P service.Payload[T]](svc *service.Resource[T, P], scopes func(*gin.Context) []service.Scope) *Resource[T, P] {
	return &Resource[T, P]{svc: svc, scopes: scopes}
}

// Register mounts the collection under base, with and without a trailing slash.
func (h *Resource[T, P]) Register(r gin.IRouter, base string) {
	group := r.Group(base)
	for _, path := range []string{"", "/"} {
		group.GET(path, h.List)
		group.POST(path, h.Create)
	}
	for _, path := range []string{"/:id", "/:id/"} {
		group.GET(path, h.Get)
		group.PUT(path, h.Replace)
		group.PATCH(path, h.Merge)
		group.DELETE(path, h.Delete)
	}
	if h.svc.HasSlug() {
		group.GET("/slug/:slug", h.GetBySlug)
		group.GET("/slug/:slug/", h.GetBySlug)
	}
}

// List returns every record.
func (h *Resource[T, P]) List(c *gin.Context) {
	var scopes []service.Scope
	if h.scopes != nil {
		scopes = h.scopes(c)
	}

	items, err := h.svc.List(c.Request.Context(), scopes...)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// Create validates the body and stores a new record.
func (h *Resource[T, P]) Create(c *gin.Context) {
	var payload P
	if !bindJSON(c, &payload) {
		return
	}

	rec, err := h.svc.Create(c.Request.Context(), payload)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

// Get returns the record named by the id path parameter.
func (h *Resource[T, P]) Get(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	rec, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// GetBySlug returns the record whose slug matches, ignoring case.
func (h *Resource[T, P]) GetBySlug(c *gin.Context) {
	rec, err := h.svc.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// Replace is a full update; every required field must be sent.
func (h *Resource[T, P]) Replace(c *gin.Context) {
	h.update(c, false)
}

// Merge is a partial update.
func (h *Resource[T, P]) Merge(c *gin.Context) {
	h.update(c, true)
}

func (h *Resource[T, P]) update(c *gin.Context, partial bool) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	if _, err := h.svc.Get(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}

	var payload P
	if !bindJSON(c, &payload) {
		return
	}

	rec, err := h.svc.Update(c.Request.Context(), id, payload, partial)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// Delete removes the record and answers 204 with an empty body.
func (h *Resource[T, P]) Delete(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
	c.Writer.WriteHeaderNow()
}

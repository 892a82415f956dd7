package handler

import (
	"github.com/dancestudio/internal/service"
	"github.com/gin-gonic/gin"
)

// pageScopes applies the exclude_slugs filter to the page listing. Without
// the parameter the configured defaults are excluded; "none" lists everything.
func (a *API) pageScopes(c *gin.Context) []service.Scope {
	slugs := service.ParseExcludeSlugs(c.Query("exclude_slugs"), a.excludeSlugs)
	return []service.Scope{service.ExcludeSlugs(slugs)}
}

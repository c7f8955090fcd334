package http

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
)

// RouteDoc describes one registered route and the access rule guarding it.
type RouteDoc struct {
	Method string `json:"method"`
	Path   string `json:"path"`
	Access string `json:"access"`
}

// routesHandler lists the registered routes with their access requirement.
// GET /docs/routes - Public, or ADMIN when running in production.
func (s *Server) routesHandler(c *gin.Context) {
	routes := s.router.Routes()
	docs := make([]RouteDoc, 0, len(routes))

	for _, route := range routes {
		docs = append(docs, RouteDoc{
			Method: route.Method,
			Path:   route.Path,
			Access: s.policy.Match(route.Method, route.Path).Access.String(),
		})
	}

	sort.Slice(docs, func(i, j int) bool {
		if docs[i].Path == docs[j].Path {
			return docs[i].Method < docs[j].Method
		}
		return docs[i].Path < docs[j].Path
	})

	c.JSON(http.StatusOK, gin.H{"data": docs})
}

package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateReservation(c *ginext.Context)
	GetReservation(c *ginext.Context)
	TransitionStatus(c *ginext.Context)
	ForceComplete(c *ginext.Context)
	BulkTransitionStatus(c *ginext.Context)
	RecordConflict(c *ginext.Context)
	ResolveConflict(c *ginext.Context)
	ListConflicts(c *ginext.Context)
	ExportConflicts(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Reservations
		api.POST("/shops/:id/reservations", h.CreateReservation)
		api.GET("/reservations/:id", h.GetReservation)
		api.POST("/reservations/:id/status", h.TransitionStatus)
		api.POST("/reservations/:id/force-complete", h.ForceComplete)
		api.POST("/reservations/bulk-status", h.BulkTransitionStatus)

		// Conflicts
		api.POST("/conflicts", h.RecordConflict)
		api.GET("/conflicts", h.ListConflicts)
		api.GET("/conflicts/export", h.ExportConflicts)
		api.POST("/conflicts/:id/resolve", h.ResolveConflict)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	metrics := promhttp.Handler()
	router.GET("/metrics", func(c *ginext.Context) {
		metrics.ServeHTTP(c.Writer, c.Request)
	})

	return router
}

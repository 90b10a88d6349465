package resource

import (
	"github.com/gin-gonic/gin"
	cs "github.com/webtor-io/common-services"

	"github.com/sharehub-io/web-api/services/upload"
)

type Handler struct {
	pg    *cs.PG
	store *upload.Store
}

func RegisterHandler(r *gin.Engine, pg *cs.PG, store *upload.Store) {
	h := &Handler{
		pg:    pg,
		store: store,
	}
	r.GET("/resources", h.list)
	r.GET("/resources/search", h.search)
	r.GET("/resources/:id", h.get)
	r.POST("/resources", h.post)
	r.PUT("/resources/:id", h.put)
	r.DELETE("/resources/:id", h.delete)
}

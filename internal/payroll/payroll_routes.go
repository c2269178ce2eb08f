package payroll

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	payrolls := r.Group("/payroll")
	{
		payrolls.GET("/live", handler.Live)
		payrolls.GET("/detailed/:month", handler.Detailed)
		payrolls.GET("/months", handler.Months)
	}
}

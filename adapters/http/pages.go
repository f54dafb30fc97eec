package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ojunaidi/portfolio/web"
)

// RegisterPages wires the embedded public portfolio and admin dashboard
// pages. The admin page is intentionally unauthenticated.
func RegisterPages(router *gin.Engine) {
	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/portfolio")
	})
	router.GET("/portfolio", servePage("static/portfolio.html"))
	router.GET("/admin", servePage("static/admin.html"))
}

func servePage(path string) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, err := web.Static.ReadFile(path)
		if err != nil {
			c.String(http.StatusInternalServerError, "page unavailable")
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", data)
	}
}

package middleware

import (
	"net/http"

	"github.com/Lazaro2022/LazaroSEG-sub000/util"
	"github.com/gin-gonic/gin"
)

// AdminMiddleware must run after AuthMiddleware.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists || role.(string) != "admin" {
			util.ErrorResponse(c, http.StatusForbidden, "Admin privileges required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// utils/response.go
package utils

import (
	"log"

	"github.com/gin-gonic/gin"
)

// RespondWithError sends a JSON error body with the given status code.
func RespondWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

// RespondInternalError logs the real error server-side and answers with a
// generic message so internals never leak to the client.
func RespondInternalError(c *gin.Context, err error) {
	log.Printf("[ERROR] %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.AbortWithStatusJSON(500, gin.H{"error": "Server error"})
}

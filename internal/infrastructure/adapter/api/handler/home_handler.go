package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Home answers GET / with an empty 200
func Home(c *gin.Context) {
	c.Status(http.StatusOK)
}

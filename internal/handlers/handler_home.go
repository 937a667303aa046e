package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// getHome answers the root route with the original server's greeting.
func getHome(c *gin.Context) {
	c.String(http.StatusOK, `Welcome to peer-to-peer-payment/server"`)
}

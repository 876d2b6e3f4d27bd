package apperror

import "github.com/gin-gonic/gin"

// Respond writes the normalized form of err to the response. Every error
// leaving the API goes through here, so the wire shape stays uniform.
func Respond(c *gin.Context, err error) {
	status, body, plainText := Normalize(err)
	if plainText {
		c.String(status, body.Detail)
		return
	}
	c.JSON(status, body)
}

package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/gearshift-labs/partsdepot/internal/apperror"
	"github.com/gearshift-labs/partsdepot/internal/gatekeeper"
)

const gateKey = "gatekeeper"

// Gatekeep runs the route's gatekeeper chain. It builds the request context
// (identity, :id parameter, decoded body with key order), executes the stages
// strictly in order, and on a halt hands the tagged error to the normalizer.
// On success the context is stored for the controller action.
func Gatekeep(stages ...gatekeeper.Stage) gin.HandlerFunc {
	return func(c *gin.Context) {
		rc := &gatekeeper.Context{
			Identity: Identity(c),
			ParamID:  c.Param("id"),
		}
		if c.Request.Body != nil {
			if aerr := rc.DecodeBody(c.Request.Body); aerr != nil {
				apperror.Respond(c, aerr)
				c.Abort()
				return
			}
		}
		if aerr := gatekeeper.Run(c.Request.Context(), rc, stages...); aerr != nil {
			apperror.Respond(c, aerr)
			c.Abort()
			return
		}
		c.Set(gateKey, rc)
		c.Next()
	}
}

// Gate returns the gatekeeper context attached by Gatekeep.
func Gate(c *gin.Context) *gatekeeper.Context {
	value, exists := c.Get(gateKey)
	if !exists {
		return &gatekeeper.Context{Identity: Identity(c), ParamID: c.Param("id")}
	}
	rc, ok := value.(*gatekeeper.Context)
	if !ok {
		return &gatekeeper.Context{Identity: Identity(c), ParamID: c.Param("id")}
	}
	return rc
}

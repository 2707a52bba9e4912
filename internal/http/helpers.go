package http

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookmarks/internal/rpc"
)

// --- Response Types ---

// CallResponse is the envelope of every procedure response. Exactly one of
// Result and Error is set.
type CallResponse struct {
	Result any        `json:"result,omitempty"`
	Error  *rpc.Error `json:"error,omitempty"`
}

// --- Response Helpers ---

func respondResult(c *gin.Context, result any) {
	c.JSON(http.StatusOK, gin.H{"result": result})
}

// respondRPCError sends the error with the status matching its code.
// Internal errors are logged.
func respondRPCError(c *gin.Context, err *rpc.Error) {
	respondRPCErrorWithStatus(c, err.HTTPStatus(), err)
}

func respondRPCErrorWithStatus(c *gin.Context, status int, err *rpc.Error) {
	if err.Code == rpc.CodeInternalServer {
		log.Printf("[RPC] internal error (%s): %s", c.Param("procedure"), err.Message)
	}
	c.AbortWithStatusJSON(status, CallResponse{Error: err})
}

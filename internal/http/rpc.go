package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookmarks/internal/auth"
	"github.com/mrlokans/bookmarks/internal/rpc"
)

// maxInputBytes bounds mutation bodies.
const maxInputBytes = 1 << 20

// RPCController exposes the procedure router over HTTP:
//
//	GET  /rpc/:procedure?input=<json>   queries
//	POST /rpc/:procedure                mutations, JSON body
type RPCController struct {
	procedures *rpc.Router
	base       rpc.Context
	timeout    time.Duration
	metrics    *Metrics
}

func NewRPCController(procedures *rpc.Router, base rpc.Context, timeout time.Duration, metrics *Metrics) *RPCController {
	return &RPCController{
		procedures: procedures,
		base:       base,
		timeout:    timeout,
		metrics:    metrics,
	}
}

// Query handles GET /rpc/:procedure
func (rc *RPCController) Query(c *gin.Context) {
	rc.dispatch(c, rpc.KindQuery, []byte(c.Query("input")))
}

// Mutation handles POST /rpc/:procedure
func (rc *RPCController) Mutation(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxInputBytes+1))
	if err != nil {
		respondRPCError(c, rpc.BadRequest("failed to read request body"))
		return
	}
	if len(body) > maxInputBytes {
		respondRPCErrorWithStatus(c, http.StatusRequestEntityTooLarge, rpc.BadRequest("request body too large"))
		return
	}
	rc.dispatch(c, rpc.KindMutation, body)
}

func (rc *RPCController) dispatch(c *gin.Context, kind rpc.Kind, input []byte) {
	name := c.Param("procedure")
	start := time.Now()

	proc, ok := rc.procedures.Lookup(name)
	if ok && proc.Kind != kind {
		rpcErr := rpc.BadRequest(fmt.Sprintf("procedure %q is a %s, call it with %s", name, proc.Kind, methodFor(proc.Kind)))
		rc.observe(name, ok, rpcErr, start)
		respondRPCErrorWithStatus(c, http.StatusMethodNotAllowed, rpcErr)
		return
	}

	ctx := c.Request.Context()
	if rc.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, rc.timeout)
		defer cancel()
	}

	call := rc.base.WithCall(auth.GetSessionID(c), GetRequestID(c))
	result, rpcErr := rc.procedures.Call(ctx, call, name, kind, input)
	rc.observe(name, ok, rpcErr, start)
	if rpcErr != nil {
		respondRPCError(c, rpcErr)
		return
	}
	respondResult(c, result)
}

func (rc *RPCController) observe(name string, known bool, rpcErr *rpc.Error, start time.Time) {
	if rc.metrics == nil {
		return
	}
	if !known {
		name = "unknown"
	}
	code := "OK"
	if rpcErr != nil {
		code = string(rpcErr.Code)
	}
	rc.metrics.ObserveCall(name, code, time.Since(start))
}

func methodFor(kind rpc.Kind) string {
	if kind == rpc.KindMutation {
		return http.MethodPost
	}
	return http.MethodGet
}

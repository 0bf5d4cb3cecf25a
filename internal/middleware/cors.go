package middleware

import (
	"github.com/valyala/fasthttp"
)

const (
	allowOrigin  = "*"
	allowHeaders = "authorization, content-type, x-request-id"
	allowMethods = "GET, POST, PUT, DELETE, OPTIONS"
)

// CORS decorates every route with permissive cross-origin headers and
// short-circuits preflight requests, matching the relay behavior the web
// client expects.
func CORS(next fasthttp.RequestHandler) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		ctx.Response.Header.Set("Access-Control-Allow-Origin", allowOrigin)
		ctx.Response.Header.Set("Access-Control-Allow-Headers", allowHeaders)
		ctx.Response.Header.Set("Access-Control-Allow-Methods", allowMethods)

		if string(ctx.Method()) == fasthttp.MethodOptions {
			ctx.SetStatusCode(fasthttp.StatusNoContent)
			return
		}

		next(ctx)
	}
}

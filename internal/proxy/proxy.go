// Package proxy is a one-hop reverse proxy in front of the API server.
// Method, headers, query and body pass through unchanged; an upstream
// transport failure maps to a 502 with the standard error body.
package proxy

import (
	"net/http"
	"net/http/httputil"
	"net/url"
	"time"

	"github.com/flowspace-dev/flowspace/internal/logger"
	"github.com/flowspace-dev/flowspace/internal/utils"
)

const requestIdHeader = "X-Request-Id"

// New returns a handler forwarding every request to the fixed upstream.
func New(upstream *url.URL) http.Handler {
	rp := httputil.NewSingleHostReverseProxy(upstream)

	rp.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		logger.Log.Error("upstream request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", r.Header.Get(requestIdHeader),
			"error", err,
		)
		utils.WriteJSON(w, http.StatusBadGateway, map[string]string{"message": "Bad gateway"})
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		reqId := r.Header.Get(requestIdHeader)
		if reqId == "" {
			reqId = utils.NewRequestId()
			r.Header.Set(requestIdHeader, reqId)
		}

		rp.ServeHTTP(w, r)

		logger.Log.Debug("proxied request",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", reqId,
			"duration", time.Since(start),
		)
	})
}

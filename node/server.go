// Copyright 2022-2026 The N42 Authors
// This file is part of the N42 library.
//
// The N42 library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The N42 library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the N42 library. If not, see <http://www.gnu.org/licenses/>.

// Package node wires the JSON-RPC registry to an HTTP listener, with CORS,
// Prometheus metrics, and rate limiting — the concrete realization of C9's
// "observability hooks" responsibility.
package node

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/paulbellamy/ratecounter"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/eduledger/chain/log"
	"github.com/eduledger/chain/modules/rpc/jsonrpc"
)

var (
	requestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "educhain_rpc_requests_total",
		Help: "Total JSON-RPC requests handled, by method.",
	}, []string{"method"})

	requestErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "educhain_rpc_errors_total",
		Help: "Total JSON-RPC requests that returned an error, by method.",
	}, []string{"method"})
)

func init() {
	prometheus.MustRegister(requestsTotal, requestErrors)
}

// Server binds a JSON-RPC 2.0 HTTP listener over a Registry.
type Server struct {
	httpServer *http.Server
	registry   *jsonrpc.Registry
	rateLimit  *jsonrpc.RateLimiter
	reqRate    *ratecounter.RateCounter
	stopCh     chan struct{}
}

// New constructs a Server bound to addr, dispatching through registry.
func New(addr string, registry *jsonrpc.Registry) *Server {
	s := &Server{
		registry:  registry,
		rateLimit: jsonrpc.NewRateLimiter(nil),
		reqRate:   ratecounter.NewRateCounter(time.Second),
		stopCh:    make(chan struct{}),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleRPC)
	mux.Handle("/metrics", promhttp.Handler())

	handler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(jsonrpc.RateLimitMiddleware(s.rateLimit, mux))

	s.httpServer = &http.Server{Addr: addr, Handler: handler}
	return s
}

// ListenAndServe blocks serving HTTP until the server is shut down. Per
// spec.md §6's exit codes, a bind failure here is fatal at startup.
func (s *Server) ListenAndServe() error {
	go s.logSummaryLoop()
	log.Info("rpc server listening", "addr", s.httpServer.Addr)
	err := s.httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown gracefully stops the HTTP listener and background loops.
func (s *Server) Shutdown(ctx context.Context) error {
	close(s.stopCh)
	s.rateLimit.Stop()
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) logSummaryLoop() {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			log.Info("rpc request rate", "per_second", s.reqRate.Rate())
		case <-s.stopCh:
			return
		}
	}
}

func (s *Server) handleRPC(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req jsonrpc.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(jsonrpc.Response{
			JSONRPC: "2.0",
			Error:   &jsonrpc.Error{Code: jsonrpc.CodeParseError, Message: err.Error()},
		})
		return
	}

	s.reqRate.Incr(1)
	requestsTotal.WithLabelValues(req.Method).Inc()

	resp := s.registry.Handle(req)
	if resp.Error != nil {
		requestErrors.WithLabelValues(req.Method).Inc()
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// Copyright 2022-2026 The N42 Authors
// This file is part of the N42 library.

package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, result interface{}, rpcErr *rpcError) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req request
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotEmpty(t, req.ID)

		resp := response{Error: rpcErr}
		if rpcErr == nil {
			raw, err := json.Marshal(result)
			require.NoError(t, err)
			resp.Result = raw
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
}

func TestCallDecodesResult(t *testing.T) {
	srv := newTestServer(t, "0x1", nil)
	defer srv.Close()

	c := New(srv.URL)
	n, err := c.BlockNumber(context.Background())
	require.NoError(t, err)
	require.Equal(t, "0x1", n)
}

func TestCallSurfacesRPCError(t *testing.T) {
	srv := newTestServer(t, nil, &rpcError{Code: -32000, Message: "boom"})
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.BlockNumber(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "boom")
}

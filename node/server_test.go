// Copyright 2022-2026 The N42 Authors
// This file is part of the N42 library.

package node

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eduledger/chain/modules/rpc/jsonrpc"
)

type echoService struct{}

func (echoService) Ping() (string, error) { return "pong", nil }

func TestHandleRPCDispatchesToRegistry(t *testing.T) {
	registry := jsonrpc.NewRegistry()
	registry.RegisterService("test", echoService{})

	srv := New("127.0.0.1:0", registry)

	body, err := json.Marshal(map[string]interface{}{
		"jsonrpc": "2.0",
		"id":      "1",
		"method":  "test_ping",
		"params":  []interface{}{},
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	srv.handleRPC(rec, req)

	var resp jsonrpc.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Nil(t, resp.Error)

	var result string
	require.NoError(t, json.Unmarshal(resp.Result, &result))
	require.Equal(t, "pong", result)
}

func TestHandleRPCRejectsNonPost(t *testing.T) {
	registry := jsonrpc.NewRegistry()
	srv := New("127.0.0.1:0", registry)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	srv.handleRPC(rec, req)

	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

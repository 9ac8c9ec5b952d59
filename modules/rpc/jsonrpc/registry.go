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

package jsonrpc

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/eduledger/chain/log"
)

// Registry dispatches method names of the form "namespace_methodName" to
// the exported method "MethodName" on a struct registered under
// "namespace". Parameters are the JSON-RPC params array, positionally
// matched against the method's argument list by reflection — the same
// receiver-method convention the teacher's API structs use.
type Registry struct {
	services map[string]reflect.Value
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{services: make(map[string]reflect.Value)}
}

// RegisterService makes every exported method of svc callable as
// "namespace_methodName" (methodName lowercased at the first rune, as
// eth_blockNumber is reached via namespace "eth" and method "BlockNumber").
func (r *Registry) RegisterService(namespace string, svc interface{}) {
	r.services[namespace] = reflect.ValueOf(svc)
}

// Handle executes req against the registry and always returns a Response
// (never an error) — JSON-RPC failures are reported inside the envelope.
func (r *Registry) Handle(req Request) *Response {
	namespace, methodName, ok := splitMethod(req.Method)
	if !ok {
		return errorResponse(req.ID, CodeMethodNotFound, fmt.Sprintf("method not found: %s", req.Method))
	}

	svc, ok := r.services[namespace]
	if !ok {
		return errorResponse(req.ID, CodeMethodNotFound, fmt.Sprintf("unknown namespace: %s", namespace))
	}

	method := svc.MethodByName(methodName)
	if !method.IsValid() {
		return errorResponse(req.ID, CodeMethodNotFound, fmt.Sprintf("method not found: %s", req.Method))
	}

	args, err := decodeParams(req.Params, method.Type())
	if err != nil {
		return errorResponse(req.ID, CodeInvalidParams, err.Error())
	}

	log.Debug("rpc call", "method", req.Method)
	out := method.Call(args)
	return toResponse(req.ID, out)
}

func splitMethod(method string) (namespace, name string, ok bool) {
	i := strings.IndexByte(method, '_')
	if i <= 0 || i == len(method)-1 {
		return "", "", false
	}
	namespace = method[:i]
	rest := method[i+1:]
	name = strings.ToUpper(rest[:1]) + rest[1:]
	return namespace, name, true
}

func decodeParams(raw json.RawMessage, methodType reflect.Type) ([]reflect.Value, error) {
	var rawParams []json.RawMessage
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &rawParams); err != nil {
			return nil, fmt.Errorf("invalid params array: %w", err)
		}
	}
	if len(rawParams) > methodType.NumIn() {
		return nil, fmt.Errorf("too many params: got %d, want at most %d", len(rawParams), methodType.NumIn())
	}

	args := make([]reflect.Value, methodType.NumIn())
	for i := 0; i < methodType.NumIn(); i++ {
		argType := methodType.In(i)
		argPtr := reflect.New(argType)
		if i < len(rawParams) {
			if err := json.Unmarshal(rawParams[i], argPtr.Interface()); err != nil {
				return nil, fmt.Errorf("param %d: %w", i, err)
			}
		}
		args[i] = argPtr.Elem()
	}
	return args, nil
}

// toResponse interprets a method's return values as (result, error) or
// just (error), the two shapes every EthAPI method uses.
func toResponse(id json.RawMessage, out []reflect.Value) *Response {
	if len(out) == 0 {
		return resultResponse(id, nil)
	}

	last := out[len(out)-1]
	if errIface, ok := last.Interface().(error); ok && errIface != nil {
		return errorResponse(id, CodeCustom, errIface.Error())
	}

	if len(out) == 1 {
		return resultResponse(id, nil)
	}
	return resultResponse(id, out[0].Interface())
}

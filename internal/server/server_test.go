package server

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/numerics/newtonpoly/internal/tools"
)

func TestNewNewtonServer(t *testing.T) {
	var buf bytes.Buffer
	s := NewNewtonServer(log.New(&buf, "", 0))
	assert.NotNil(t, s.MCPServer())

	// List the registered tools through the protocol
	request := `{"jsonrpc": "2.0", "id": 1, "method": "tools/list"}`
	response := s.MCPServer().HandleMessage(context.Background(), json.RawMessage(request))

	data, err := json.Marshal(response)
	assert.NoError(t, err)

	for _, name := range []string{
		tools.ToolChebyshevNodes,
		tools.ToolDividedDifferences,
		tools.ToolEvaluate,
		tools.ToolHorner,
		tools.ToolInterpolate,
	} {
		assert.Contains(t, string(data), name)
	}
}

func TestCallTool(t *testing.T) {
	s := NewNewtonServer(log.New(&bytes.Buffer{}, "", 0))

	request := `{"jsonrpc": "2.0", "id": 2, "method": "tools/call", "params": {"name": "newton.divided_differences", "arguments": {"x": [0, 1, 2], "y": [1, 3, 7]}}}`
	response := s.MCPServer().HandleMessage(context.Background(), json.RawMessage(request))

	data, err := json.Marshal(response)
	assert.NoError(t, err)

	var decoded struct {
		Result struct {
			IsError bool `json:"isError"`
			Content []struct {
				Type string `json:"type"`
				Text string `json:"text"`
			} `json:"content"`
		} `json:"result"`
	}
	assert.NoError(t, json.Unmarshal(data, &decoded))
	assert.False(t, decoded.Result.IsError)
	if assert.Len(t, decoded.Result.Content, 1) {
		assert.Equal(t, "text", decoded.Result.Content[0].Type)
		assert.JSONEq(t, `{"degree": 2, "nodes": [0, 1, 2], "coeffs": [1, 2, 1]}`, decoded.Result.Content[0].Text)
	}
}

package tools

import (
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
)

func stringArgument(req mcp.CallToolRequest, key string) string {
	value, _ := req.GetArguments()[key].(string)
	return value
}

func mustMarshal(v interface{}) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}

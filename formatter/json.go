package formatter

import (
	"encoding/json"
)

type responseBuilder struct{}

func newResponseBuilder() *responseBuilder { return &responseBuilder{} }

// NewResponseBuilder creates a new response builder for formatting API responses
func NewResponseBuilder() *responseBuilder {
	return newResponseBuilder()
}

// BuildJSON serializes a response envelope to JSON
func (rb *responseBuilder) BuildJSON(res any) []byte {
	b, _ := json.Marshal(res)
	return b
}

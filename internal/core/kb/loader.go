package kb

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a YAML knowledge base with the same shape as KnowledgeBase
func LoadFile(path string) (*KnowledgeBase, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read knowledge base file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML knowledge base
func Parse(data []byte) (*KnowledgeBase, error) {
	var k KnowledgeBase
	if err := yaml.Unmarshal(data, &k); err != nil {
		return nil, fmt.Errorf("parse knowledge base: %w", err)
	}
	if err := k.Validate(); err != nil {
		return nil, err
	}
	return &k, nil
}

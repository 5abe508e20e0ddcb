package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	skema "github.com/reoring/skema"
)

// readValue decodes a document by file extension: .yaml and .yml as YAML,
// anything else as JSON. JSON numbers are kept as json.Number. Repeated
// JSON object keys are returned as issues; the YAML decoder rejects them
// itself.
func readValue(path string) (any, skema.Issues, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		v, err := decodeYAML(b)
		return v, nil, err
	}
	v, err := decodeJSON(b)
	if err != nil {
		return nil, nil, err
	}
	dups, err := duplicateKeys(b)
	return v, dups, err
}

func decodeJSON(b []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("decoding JSON: %w", err)
	}
	if dec.More() {
		return nil, fmt.Errorf("decoding JSON: trailing data after the first value")
	}
	return v, nil
}

func decodeYAML(b []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(b, &v); err != nil {
		return nil, fmt.Errorf("decoding YAML: %w", err)
	}
	return normalizeYAML(v), nil
}

// normalizeYAML turns map[any]any nodes into map[string]any so that they read
// like decoded JSON. Non-string keys are rendered with fmt.
func normalizeYAML(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = normalizeYAML(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			ks, ok := k.(string)
			if !ok {
				ks = fmt.Sprint(k)
			}
			out[ks] = normalizeYAML(vv)
		}
		return out
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = normalizeYAML(t[i])
		}
		return arr
	}
	return v
}

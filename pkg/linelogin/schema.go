package linelogin

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// A shape is the structural contract a JSON document must meet before it is
// decoded: required keys present with the right JSON types, optional keys
// nullable, unknown keys ignored.
type shape struct {
	name   string
	keys   []string
	schema *gojsonschema.Schema
}

type fields map[string]map[string]any

var (
	jsonString      = map[string]any{"type": "string"}
	jsonUint        = map[string]any{"type": "integer", "minimum": 0}
	jsonBool        = map[string]any{"type": "boolean"}
	jsonStringArray = map[string]any{"type": "array", "items": jsonString}
)

func mustObjectShape(name string, required, optional fields) shape {
	props := make(map[string]any, len(required)+len(optional))
	names := make([]string, 0, len(required))
	keys := make([]string, 0, len(required)+len(optional))
	for k, typ := range required {
		props[k] = typ
		names = append(names, k)
		keys = append(keys, k)
	}
	for k, typ := range optional {
		props[k] = map[string]any{"anyOf": []any{typ, map[string]any{"type": "null"}}}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	doc := map[string]any{
		"type":       "object",
		"properties": props,
	}
	if len(names) > 0 {
		sort.Strings(names)
		doc["required"] = names
	}

	s, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(doc))
	if err != nil {
		panic(fmt.Sprintf("linelogin: compile %s shape: %v", name, err))
	}
	return shape{name: name, keys: keys, schema: s}
}

// decode validates doc against the shape and, when it matches, decodes it into out.
func (s shape) decode(doc []byte, out any) error {
	res, err := s.schema.Validate(gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return fmt.Errorf("%s: %w", s.name, err)
	}
	if !res.Valid() {
		msgs := make([]string, 0, len(res.Errors()))
		for _, e := range res.Errors() {
			msgs = append(msgs, e.String())
		}
		return fmt.Errorf("%s: %s", s.name, strings.Join(msgs, "; "))
	}
	exact, err := s.validatedKeys(doc)
	if err != nil {
		return fmt.Errorf("%s: %w", s.name, err)
	}
	if err := json.Unmarshal(exact, out); err != nil {
		return fmt.Errorf("%s: %w", s.name, err)
	}
	return nil
}

// validatedKeys re-encodes doc keeping only the shape's own keys, matched
// case-sensitively. encoding/json matches field names case-insensitively, so
// a key like "FRIENDFLAG" must not reach the decoder.
func (s shape) validatedKeys(doc []byte) ([]byte, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(doc, &obj); err != nil {
		return nil, err
	}
	kept := make(map[string]json.RawMessage, len(s.keys))
	for _, k := range s.keys {
		if v, ok := obj[k]; ok {
			kept[k] = v
		}
	}
	return json.Marshal(kept)
}

var errorResponseShape = mustObjectShape("error response",
	fields{"error": jsonString, "error_description": jsonString},
	nil,
)

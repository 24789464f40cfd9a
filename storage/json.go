// Package storage provides task.Gateway implementations: a JSON file gateway
// for durable state and an in-memory gateway for tests and embedders.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/gf-haseeb/taskdeck/task"
)

const schemaName = "taskdeck.schema.json"

// JSON persists registry snapshots as a single JSON document on disk.
type JSON struct {
	path   string
	schema *jsonschema.Schema
}

var _ task.Gateway = (*JSON)(nil)

// NewJSON returns a gateway backed by the file at path. The file does not
// need to exist yet.
func NewJSON(path string) (*JSON, error) {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true
	if err := compiler.AddResource(schemaName, strings.NewReader(documentSchema)); err != nil {
		return nil, fmt.Errorf("add document schema: %w", err)
	}
	schema, err := compiler.Compile(schemaName)
	if err != nil {
		return nil, fmt.Errorf("compile document schema: %w", err)
	}

	return &JSON{path: path, schema: schema}, nil
}

// Path returns the document location.
func (g *JSON) Path() string {
	return g.path
}

// Save writes the snapshot, replacing any existing document. The document is
// written to a temp file and renamed into place so an interrupted write
// never leaves a torn document.
func (g *JSON) Save(snapshot *task.Snapshot) error {
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(g.path), 0o755); err != nil {
		return fmt.Errorf("create parent dir: %w", err)
	}

	tmpPath := g.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, g.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// Load reads and validates the document. A missing file is reported as
// task.ErrNoDocument; a document that fails schema validation or decoding is
// reported as task.ErrCorruptDocument.
func (g *JSON) Load() (*task.Snapshot, error) {
	data, err := os.ReadFile(g.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", task.ErrNoDocument, g.path)
	}
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON: %v", task.ErrCorruptDocument, err)
	}
	if err := g.schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", task.ErrCorruptDocument, err)
	}

	var snapshot task.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("%w: %v", task.ErrCorruptDocument, err)
	}
	return &snapshot, nil
}

// Clear deletes the document if it exists.
func (g *JSON) Clear() error {
	err := os.Remove(g.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove document: %w", err)
	}
	return nil
}

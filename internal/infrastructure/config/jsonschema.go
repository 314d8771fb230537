package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"

	"github.com/bnema/dockyard/internal/domain/entity"
)

// GenerateSchema returns the JSON schema of the config file.
func GenerateSchema() *jsonschema.Schema {
	r := &jsonschema.Reflector{FieldNameTag: "toml"}
	schema := r.Reflect(&Config{})
	schema.ID = "https://github.com/bnema/dockyard/config.schema.json"
	schema.Title = "Dockyard Configuration"
	schema.Description = "Configuration schema for dockyard, a docking-panel layout engine"
	return schema
}

// GenerateLayoutSchema returns the JSON schema of a layout document.
func GenerateLayoutSchema() *jsonschema.Schema {
	r := new(jsonschema.Reflector)
	schema := r.Reflect(&entity.LayoutDocument{})
	schema.ID = "https://github.com/bnema/dockyard/layout.schema.json"
	schema.Title = "Dockyard Layout"
	schema.Description = "A saved dock layout: primary workspace, hidden items and floating windows"
	return schema
}

// MarshalSchema renders schema as indented JSON.
func MarshalSchema(schema *jsonschema.Schema) ([]byte, error) {
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}

// WriteSchemaFile writes the config schema next to configFile.
func WriteSchemaFile(configFile string) (string, error) {
	data, err := MarshalSchema(GenerateSchema())
	if err != nil {
		return "", err
	}
	schemaFile := filepath.Join(filepath.Dir(configFile), "config.schema.json")
	if err := os.WriteFile(schemaFile, data, filePerm); err != nil {
		return "", fmt.Errorf("failed to write schema file: %w", err)
	}
	return schemaFile, nil
}

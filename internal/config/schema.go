package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"
)

// SchemaJSON reflects the Config struct into a pretty-printed JSON schema.
func SchemaJSON() ([]byte, error) {
	reflector := new(jsonschema.Reflector)
	schema := reflector.Reflect(&Config{})

	schema.ID = "https://github.com/demoreel/demoreel/config.schema.json"
	schema.Title = "Demoreel Configuration"
	schema.Description = "Configuration schema for demoreel, a multi-pane layout engine for scripted session recordings"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	return data, nil
}

// GenerateSchemaFile writes config.schema.json next to the config file so
// editors can validate it. Called whenever a default config is created.
func GenerateSchemaFile() error {
	configDir, err := GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}

	data, err := SchemaJSON()
	if err != nil {
		return err
	}

	schemaFile := filepath.Join(configDir, "config.schema.json")
	if err := os.WriteFile(schemaFile, data, filePerm); err != nil {
		return fmt.Errorf("failed to write schema file: %w", err)
	}

	fmt.Printf("Generated JSON schema: %s\n", schemaFile)
	return nil
}

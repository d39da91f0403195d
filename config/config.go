// Package config loads a weaver.ServerConfig from a document on disk,
// dispatching on file extension, rather than requiring hosts to hand
// build the struct literal themselves.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	weaver "github.com/weaverhttp/weaver"
)

// Logging configures weaverlog beyond the process-wide default.
type Logging struct {
	Level        string `toml:"level" yaml:"level" json:"level"`
	RotationPath string `toml:"rotation_path" yaml:"rotation_path" json:"rotation_path"`
}

// Admin configures the optional introspection surface (weaveradmin);
// it is never mounted automatically, only described here so a host's
// config document has somewhere to request it.
type Admin struct {
	Listen string `toml:"listen" yaml:"listen" json:"listen"`
}

// Document is the on-disk shape Load parses, before being turned into a
// weaver.ServerConfig.
type Document struct {
	Bind struct {
		Host string `toml:"host" yaml:"host" json:"host"`
		Port int    `toml:"port" yaml:"port" json:"port"`
	} `toml:"bind" yaml:"bind" json:"bind"`
	Name       string  `toml:"name" yaml:"name" json:"name"`
	TrustProxy bool    `toml:"trust_proxy" yaml:"trust_proxy" json:"trust_proxy"`
	Logging    Logging `toml:"logging" yaml:"logging" json:"logging"`
	Admin      Admin   `toml:"admin" yaml:"admin" json:"admin"`
}

// Load reads path and decodes it per its extension: .toml via
// BurntSushi/toml, .yaml/.yml via yaml.v3, .json via encoding/json.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	doc := &Document{
		Bind: struct {
			Host string `toml:"host" yaml:"host" json:"host"`
			Port int    `toml:"port" yaml:"port" json:"port"`
		}{Host: "127.0.0.1", Port: 8000},
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(data, doc); err != nil {
			return nil, fmt.Errorf("config: parse %s as toml: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, doc); err != nil {
			return nil, fmt.Errorf("config: parse %s as yaml: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(data, doc); err != nil {
			return nil, fmt.Errorf("config: parse %s as json: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("config: unrecognized extension %q for %s", ext, path)
	}

	return doc, nil
}

// ServerConfig projects the document onto weaver.ServerConfig, the only
// fields the core Server itself understands.
func (d *Document) ServerConfig() weaver.ServerConfig {
	return weaver.ServerConfig{
		Host:       d.Bind.Host,
		Port:       d.Bind.Port,
		Name:       d.Name,
		TrustProxy: d.TrustProxy,
	}
}

package bio

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFile is returned by Load for an unrecognised file extension.
var ErrUnsupportedFile = errors.New("bio: unsupported file type")

// Load reads a bio from a YAML, JSON or TOML file. Fields missing from the
// file keep their Default values.
func Load(path string) (*Bio, error) {
	b := Default()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.DecodeFile(path, b); err != nil {
			return nil, fmt.Errorf("bio: parse %s: %w", path, err)
		}
	case ".yaml", ".yml", ".json":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if ext == ".json" {
			err = json.Unmarshal(data, b)
		} else {
			err = yaml.Unmarshal(data, b)
		}
		if err != nil {
			return nil, fmt.Errorf("bio: parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFile, ext)
	}
	return b, nil
}

package yaml

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/moonkev/loadtarget/internal/model"
	"go.yaml.in/yaml/v2"
)

type Config struct {
	ConfigPath string
}

type Route struct {
	Path string `yaml:"path"`
}

// LoadConfig reads a YAML list of routes and builds the route table from it.
func LoadConfig(config Config) (*model.RouteTable, error) {

	rawYaml, err := os.ReadFile(config.ConfigPath)
	if err != nil {
		return nil, err
	}

	var routes []Route
	if err := yaml.UnmarshalStrict(rawYaml, &routes); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", config.ConfigPath, err)
	}

	paths := make([]string, 0, len(routes))
	for _, r := range routes {
		paths = append(paths, r.Path)
	}

	table, err := model.NewRouteTable(paths)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", config.ConfigPath, err)
	}

	slog.Debug("Loaded routes from YAML config",
		"path", config.ConfigPath,
		"count", table.Len(),
		"routes", table.Paths())
	return table, nil
}

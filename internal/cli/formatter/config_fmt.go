package formatter

import (
	"strings"

	"github.com/alexanderramin/compactgantt/internal/config"
	"gopkg.in/yaml.v3"
)

// FormatConfig shows the effective engine configuration as YAML. source
// names where it came from.
func FormatConfig(cfg config.EngineConfig, source string) (string, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return "", err
	}
	body := Dim("source: "+source) + "\n\n" + strings.TrimRight(string(data), "\n")
	return RenderBox("Engine configuration", body), nil
}

package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/phicus/changelog-go/internal/changelog"
)

// Config is the root configuration structure.
type Config struct {
	Output   OutputConfig   `json:"output"`
	Grouping GroupingConfig `json:"grouping"`
	Messages MessageConfig  `json:"messages"`
	Source   SourceConfig   `json:"source"`
}

// OutputConfig holds rendering defaults.
type OutputConfig struct {
	Format string `json:"format"` // "md" or "json"
}

// GroupingConfig holds date-grouping defaults.
type GroupingConfig struct {
	Policy string `json:"policy"` // "merge" or "split"
}

// MessageConfig holds the message filter and rewrite configuration.
type MessageConfig struct {
	// SkipPatterns drop commits whose message matches (case-insensitive regex).
	SkipPatterns []string `json:"skipPatterns"`
	// MergePatterns drop merge-ish messages that add no changelog value.
	MergePatterns []string `json:"mergePatterns"`
	// RewriteRules canonicalize shorthand prefixes, e.g. "fix" -> "Fix:".
	RewriteRules []changelog.RewriteRule `json:"rewriteRules"`
}

// SourceConfig holds commit source defaults.
type SourceConfig struct {
	SkipMerges bool `json:"skipMerges"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Format: "md",
		},
		Grouping: GroupingConfig{
			Policy: "merge",
		},
		Messages: MessageConfig{
			SkipPatterns: []string{
				`\butd\b`,
				`\bwip\b`,
				`\bwtf\b`,
				`formater`,
				`set version`,
				`app version`,
				`new version`,
				`^init\b`,
				`\bver:`,
			},
			MergePatterns: []string{
				`merge branch`,
				`merge tag`,
				`\bpull\b`,
				`\bmerge\b`,
			},
			RewriteRules: []changelog.RewriteRule{
				{Pattern: `add`, Label: "Add:"},
				{Pattern: `fea|feature`, Label: "Feature:"},
				{Pattern: `fix`, Label: "Fix:"},
				{Pattern: `ref|rfc|rft|refactor`, Label: "Refactor:"},
				{Pattern: `enh|enhancement`, Label: "Enhancement:"},
			},
		},
		Source: SourceConfig{
			SkipMerges: true,
		},
	}
}

// LoadConfig loads configuration from a file, merging with defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		// Try default locations
		candidates := []string{".changelog.json"}
		if home, err := os.UserHomeDir(); err == nil && home != "" {
			candidates = append(candidates, filepath.Join(home, ".changelog.json"))
		}
		for _, p := range candidates {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SaveConfig saves configuration to a file.
func SaveConfig(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

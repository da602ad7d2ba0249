package config

import (
	"errors"
	"fmt"
	"path"
	"strings"

	kjson "github.com/knadh/koanf/parsers/json"
	ktoml "github.com/knadh/koanf/parsers/toml"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/mitchellh/mapstructure"
	"github.com/rs/zerolog"
)

var defaults = map[string]any{
	"log_level":     "info",
	"log_json":      false,
	"prompt":        "avl> ",
	"confirm_clear": true,
	"default_tree":  "main",
}

// Load layers the defaults, the file at configPath (skipped when empty) and
// overrides, later layers winning. The parser follows the file extension.
func Load(configPath string, overrides map[string]any) (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, err
	}
	if configPath != "" {
		parser, err := determineParser(strings.TrimPrefix(strings.ToLower(path.Ext(configPath)), "."))
		if err != nil {
			return nil, err
		}
		if err = k.Load(file.Provider(configPath), parser); err != nil {
			return nil, fmt.Errorf("error loading '%s': %w", configPath, err)
		}
	}
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, err
		}
	}

	if _, err := zerolog.ParseLevel(k.String("log_level")); err != nil {
		return nil, fmt.Errorf("log_level: %w", err)
	}
	if strings.TrimSpace(k.String("default_tree")) == "" {
		return nil, errors.New("default_tree must not be empty")
	}

	cfg := &Config{}
	err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}

func determineParser(configType string) (koanf.Parser, error) {
	switch configType {
	case "json":
		return kjson.Parser(), nil
	case "toml":
		return ktoml.Parser(), nil
	case "yaml", "yml":
		return kyaml.Parser(), nil
	default:
		return nil, fmt.Errorf("unknown config type %q: use json, toml or yaml", configType)
	}
}

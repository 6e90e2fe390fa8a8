package config

import (
	"fmt"
	"os"
	"sort"

	"github.com/joho/godotenv"
	apperrors "github.com/ksyq12/gvm-config/internal/errors"
	"github.com/ksyq12/gvm-config/internal/logger"
	"gopkg.in/yaml.v3"
)

// LoadFile reads a YAML settings file mapping option keys to scalar values.
// Keys with a null value are treated as absent.
func LoadFile(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.Config(path, "failed to read settings", err)
	}

	raw := map[string]interface{}{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, apperrors.Config(path, "failed to parse settings", err)
	}

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	settings := make(map[string]string, len(raw))
	for _, k := range keys {
		if !IsValidKey(k) {
			return nil, apperrors.Config(path, "unknown setting", fmt.Errorf("%s", k))
		}
		switch v := raw[k].(type) {
		case nil:
			logger.Warn("Ignoring empty setting %s in %s", k, path)
			continue
		case string, bool, int, int64, uint64, float64:
			settings[k] = fmt.Sprint(v)
		default:
			return nil, apperrors.Config(path, "setting must be a scalar", fmt.Errorf("%s", k))
		}
	}

	return settings, nil
}

// ReadEnvFiles parses dotenv files without touching the process
// environment. Later files win over earlier ones.
func ReadEnvFiles(paths ...string) (map[string]string, error) {
	if len(paths) == 0 {
		return map[string]string{}, nil
	}
	env, err := godotenv.Read(paths...)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeConfig, "failed to read env file", err)
	}
	return env, nil
}

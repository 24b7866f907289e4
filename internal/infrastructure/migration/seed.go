package migration

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"fixmylab/internal/domain/setting"
	"fixmylab/internal/shared/logger"
)

type seedFile struct {
	Settings map[string]string `yaml:"settings"`
}

// SeedSettings loads default settings from a YAML file and inserts the ones
// that do not exist yet. Existing values are never overwritten, so running
// the seed repeatedly is safe.
func SeedSettings(ctx context.Context, path string, repo setting.Repository, log logger.Interface) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read seed file: %w", err)
	}

	var file seedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse seed file: %w", err)
	}

	seeded := 0
	for rawKey, value := range file.Settings {
		key := setting.Key(rawKey)
		if !key.IsValid() {
			return fmt.Errorf("unknown setting key in seed file: %s", rawKey)
		}

		existing, err := repo.Get(ctx, key)
		if err != nil {
			return fmt.Errorf("failed to check setting %s: %w", key, err)
		}
		if existing != nil {
			continue
		}

		s, err := setting.NewSetting(key, value)
		if err != nil {
			return fmt.Errorf("failed to build setting %s: %w", key, err)
		}
		if err := repo.Set(ctx, s); err != nil {
			return fmt.Errorf("failed to seed setting %s: %w", key, err)
		}
		seeded++
	}

	log.Infow("settings seeded", "file", path, "inserted", seeded)
	return nil
}

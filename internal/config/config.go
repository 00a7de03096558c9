// Package config loads the scaffolder settings from the config file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/inovacc/dadandiaoming/internal/application"
	"github.com/inovacc/dadandiaoming/internal/model"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// FilePath returns the default config file location
// (<user config dir>/dadandiaoming/config.yaml).
func FilePath() (string, error) {
	dir, err := application.GetApplicationDirectory()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, fileName+"."+fileType), nil
}

// Load reads the config file at path (or the default location when path is
// empty) layered over model.DefaultConfig and DADANDIAOMING_* variables.
// A missing file is not an error.
func Load(path string) (model.Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType(fileType)
	v.SetEnvPrefix(application.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	explicit := path != ""
	if !explicit {
		p, err := FilePath()
		if err == nil {
			path = p
		}
	}

	if path != "" {
		v.SetConfigFile(path)

		if err := v.ReadInConfig(); err != nil {
			if explicit || !isNotExist(err) {
				return model.Config{}, fmt.Errorf("reading config %s: %w", path, err)
			}
		}
	}

	var cfg model.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return model.Config{}, fmt.Errorf("decoding config: %w", err)
	}

	for i, t := range cfg.Templates {
		if err := t.Validate(); err != nil {
			return model.Config{}, fmt.Errorf("templates[%d]: %w", i, err)
		}
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := model.DefaultConfig()

	v.SetDefault("package_name", d.PackageName)
	v.SetDefault("registry_url", d.RegistryURL)
	v.SetDefault("mirror_url", d.MirrorURL)
	v.SetDefault("version_check.ttl", d.VersionCheck.TTL)
	v.SetDefault("version_check.timeout", d.VersionCheck.Timeout)
	v.SetDefault("progress.receive", []string{})
	v.SetDefault("progress.resolve", []string{})
}

func isNotExist(err error) bool {
	var notFound viper.ConfigFileNotFoundError

	return errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)
}

package store

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config supplies the location of the on-disk storage.
type Config interface {
	BasePath() string
}

// LoadConfig reads the .eventdash config file (current directory, or the
// directory named by EVENTDASH_CONFIG_PATH) and environment overrides.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.eventdash.db")
	viper.SetConfigName(".eventdash") // .yaml is implicit
	viper.SetEnvPrefix("EVENTDASH")
	viper.AutomaticEnv()

	if override := os.Getenv("EVENTDASH_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}

	return &fileConfig{Path: path}, nil
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

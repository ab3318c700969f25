package session

import (
	"log"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config provides the client settings the session layer needs.
type Config interface {
	BasePath() string
	ServerURL() string
}

// LoadConfig reads the .moodlog config file and MOODLOG_* env overrides.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.moodlog.db")
	viper.SetDefault("server", "http://localhost:8000")
	viper.SetConfigName(".moodlog") // .yaml is implicit
	viper.SetEnvPrefix("MOODLOG")
	viper.AutomaticEnv()

	if override := os.Getenv("MOODLOG_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("$HOME")
	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("error reading config file: %v", err)
			return nil, err
		}
	}

	return &fileConfig{Path: viper.GetString("path"), Server: viper.GetString("server")}, nil
}

type fileConfig struct {
	Path   string `json:"path"`
	Server string `json:"server"`
}

func (f *fileConfig) BasePath() string {
	if expanded, err := homedir.Expand(f.Path); err == nil {
		return expanded
	}
	return f.Path
}

func (f *fileConfig) ServerURL() string {
	return f.Server
}

package config

import (
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

var loadDotEnv sync.Once

// newEnv returns a viper instance reading the process environment. A .env
// file in the working directory, or the file named by DOTENV_PATH, is
// loaded once and never overrides variables that are already set.
func newEnv() *viper.Viper {
	loadDotEnv.Do(func() {
		path := os.Getenv("DOTENV_PATH")
		if path == "" {
			path = ".env"
		}

		if err := gotenv.Load(path); err != nil && !os.IsNotExist(err) {
			log.Warn().Err(err).Str("path", path).Msg("Failed to load dotenv file")
		}
	})

	v := viper.New()
	v.AutomaticEnv()

	return v
}

func getString(v *viper.Viper, key string, def string) string {
	v.SetDefault(key, def)
	return v.GetString(key)
}

func getBool(v *viper.Viper, key string, def bool) bool {
	v.SetDefault(key, def)
	return v.GetBool(key)
}

func getInt(v *viper.Viper, key string, def int) int {
	v.SetDefault(key, def)
	return v.GetInt(key)
}

// getStringSlice splits a comma separated variable.
func getStringSlice(v *viper.Viper, key string, def []string) []string {
	raw := v.GetString(key)
	if raw == "" {
		return def
	}

	var out []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}

	return out
}

// getOptionalString reports whether key is set at all, so an explicitly
// empty value can be told apart from an absent one.
func getOptionalString(v *viper.Viper, key string) *string {
	if !v.IsSet(key) {
		if _, ok := os.LookupEnv(key); !ok {
			return nil
		}
	}

	s := v.GetString(key)
	return &s
}

package configloader

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Validator interface {
	Validate() error
}

// Options controls where Load looks for configuration.
type Options struct {
	// ServiceName selects the env prefix: <SERVICE_NAME>_SERVER_PORT -> server.port.
	ServiceName string
	// SharedPrefixes are env prefixes kept as the top-level key: DB_USER -> db.user.
	SharedPrefixes []string
	// Defaults are applied first, with the lowest priority. Keys are dot-delimited.
	Defaults map[string]any
	// ConfigFile is an optional YAML file. Defaults to config.yaml.
	ConfigFile string
	// EnvFile is an optional dotenv file. Defaults to .env.
	EnvFile string
}

// Load builds T from defaults, the YAML file, the dotenv file and the process
// environment, in increasing order of priority, then validates it.
func Load[T Validator](opts Options) (T, error) {
	var cfg T
	k := koanf.New(".")

	if opts.ConfigFile == "" {
		opts.ConfigFile = "config.yaml"
	}
	if opts.EnvFile == "" {
		opts.EnvFile = ".env"
	}
	servicePrefix := strings.ToUpper(opts.ServiceName) + "_"

	// 0. Defaults
	if len(opts.Defaults) > 0 {
		if err := k.Load(confmap.Provider(opts.Defaults, "."), nil); err != nil {
			return cfg, fmt.Errorf("error loading defaults: %w", err)
		}
	}

	// 1. Load configuration from yaml file
	if err := k.Load(file.Provider(opts.ConfigFile), yaml.Parser()); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("WARN: error loading YAML config file '%s': %v", opts.ConfigFile, err)
		}
	}

	// 2. Load environment variables from .env file
	if envFileMap, err := godotenv.Read(opts.EnvFile); err == nil {
		envMap := make(map[string]any)
		for key, value := range envFileMap {
			if tk, ok := transformKey(key, servicePrefix, opts.SharedPrefixes); ok {
				envMap[tk] = value
			}
		}
		if err := k.Load(confmap.Provider(envMap, "."), nil); err != nil {
			log.Printf("WARN: error loading .env config: %v", err)
		}
	} else if !os.IsNotExist(err) {
		log.Printf("WARN: error reading .env file: %v", err)
	}

	// 3. Load environment variables from the system, the highest priority
	if err := k.Load(env.Provider(servicePrefix, ".", func(key string) string {
		tk, _ := transformKey(key, servicePrefix, nil)
		return tk
	}), nil); err != nil {
		log.Printf("WARN: error loading system env vars: %v", err)
	}
	for _, prefix := range opts.SharedPrefixes {
		if err := k.Load(env.Provider(prefix, ".", func(key string) string {
			tk, _ := transformKey(key, "", []string{prefix})
			return tk
		}), nil); err != nil {
			log.Printf("WARN: error loading %s env vars: %v", prefix, err)
		}
	}

	// 4. Unmarshal the configuration into the Config struct
	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, fmt.Errorf("error unmarshalling config: %w", err)
	}

	// 5. Validate the configuration
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// transformKey maps an environment variable name to a koanf key.
// It reports false when the name matches neither the service prefix nor a shared prefix.
func transformKey(key, servicePrefix string, sharedPrefixes []string) (string, bool) {
	upper := strings.ToUpper(key)
	for _, prefix := range sharedPrefixes {
		if strings.HasPrefix(upper, strings.ToUpper(prefix)) {
			return strings.ReplaceAll(strings.ToLower(key), "_", "."), true
		}
	}
	if servicePrefix != "" && strings.HasPrefix(upper, servicePrefix) {
		key = strings.ToLower(key[len(servicePrefix):])
		return strings.ReplaceAll(key, "_", "."), true
	}
	return "", false
}

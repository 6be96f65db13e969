package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/odingame/forge/internal/branding"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const fileType = "yaml"

// Project is a loaded configuration bound to a project root.
type Project struct {
	Root     string
	File     string // config file in use, "" when running on defaults
	Settings Settings

	v     *viper.Viper
	flags *pflag.FlagSet
}

// Load reads the project configuration. file may be empty, in which case
// forge.yaml in root is used if present. flags may be nil.
func Load(root, file string, flags *pflag.FlagSet) (*Project, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving project root %s: %w", root, err)
	}

	v := newViper()

	if file == "" {
		file = FilePath(absRoot)
	} else if !filepath.IsAbs(file) {
		file = filepath.Join(absRoot, file)
	}

	used := ""
	if _, statErr := os.Stat(file); statErr == nil {
		issues, err := ValidateFile(file)
		if err != nil {
			return nil, err
		}
		if len(issues) > 0 {
			return nil, &InvalidError{File: file, Issues: issues}
		}
		v.SetConfigFile(file)
		v.SetConfigType(fileType)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", file, err)
		}
		used = file
	} else if !errors.Is(statErr, os.ErrNotExist) {
		return nil, fmt.Errorf("checking config file %s: %w", file, statErr)
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("binding flag --%s: %w", name, err)
				}
			}
		}
	}

	p := &Project{Root: absRoot, File: used, v: v, flags: flags}
	if err := v.Unmarshal(&p.Settings); err != nil {
		return nil, fmt.Errorf("decoding configuration: %w", err)
	}
	return p, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	for key, value := range defaultValues() {
		v.SetDefault(key, value)
	}
	v.SetEnvPrefix(branding.EnvPrefix())
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// FilePath returns the config file location inside root.
func FilePath(root string) string {
	return filepath.Join(root, branding.ConfigFile())
}

// Path resolves a project-relative path against the project root.
func (p *Project) Path(rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(p.Root, filepath.FromSlash(rel))
}

// Get returns a config value by key as a string. Returns empty string if not set.
func (p *Project) Get(key string) string {
	return p.v.GetString(key)
}

// Value sources reported by Source, in precedence order.
const (
	SourceFlag    = "flag"
	SourceEnv     = "env"
	SourceFile    = "file"
	SourceDefault = "default"
)

// Source reports where the effective value of key comes from.
func (p *Project) Source(key string) string {
	if p.flags != nil {
		for name, k := range flagKeys {
			if k != key {
				continue
			}
			if f := p.flags.Lookup(name); f != nil && f.Changed {
				return SourceFlag
			}
		}
	}
	env := branding.EnvVar(strings.ToUpper(strings.ReplaceAll(key, ".", "_")))
	if _, ok := os.LookupEnv(env); ok {
		return SourceEnv
	}
	if p.v.InConfig(key) {
		return SourceFile
	}
	return SourceDefault
}

// ScalarKeys returns the keys that hold a single string value, sorted.
func ScalarKeys() []string { return scalarKeys() }

// Keys returns every known configuration key, sorted.
func Keys() []string {
	keys := make([]string, 0, len(defaultValues()))
	for k := range defaultValues() {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Set writes a scalar key-value pair into the project's config file,
// creating the file when it does not exist. The result is validated before
// it is written.
func Set(root, key, value string) error {
	if !isScalarKey(key) {
		return fmt.Errorf("unknown or non-scalar config key %q (known keys: %s)", key, strings.Join(scalarKeys(), ", "))
	}

	path := FilePath(root)
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType(fileType)
	if _, err := os.Stat(path); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	v.Set(key, value)

	// Viper picks the encoder from the extension, so the temp file keeps it.
	tmp := strings.TrimSuffix(path, filepath.Ext(path)) + ".tmp" + filepath.Ext(path)
	if err := v.WriteConfigAs(tmp); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	issues, err := ValidateFile(tmp)
	if err != nil {
		os.Remove(tmp)
		return err
	}
	if len(issues) > 0 {
		os.Remove(tmp)
		return &InvalidError{File: path, Issues: issues}
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replacing config file %s: %w", path, err)
	}
	return nil
}

func isScalarKey(key string) bool {
	for _, k := range scalarKeys() {
		if k == key {
			return true
		}
	}
	return false
}

func scalarKeys() []string {
	var keys []string
	for _, k := range Keys() {
		if _, ok := defaultValues()[k].(string); ok {
			keys = append(keys, k)
		}
	}
	return keys
}

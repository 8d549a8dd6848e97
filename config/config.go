// Package config holds the settings bag handed to every service during
// initialization. A Config is never mutated once built.
package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const Separator = "."

const maxSeconds = math.MaxInt64 / int64(time.Second)

var ErrNotAMapping = errors.New("config document must be a mapping")

type Config struct {
	values map[string]string
}

func New(values map[string]string) Config {
	copied := make(map[string]string, len(values))
	for k, v := range values {
		copied[k] = v
	}
	return Config{values: copied}
}

func Empty() Config {
	return Config{}
}

// Load parses a YAML document. Nested mappings are flattened into dotted
// keys and sequences of scalars are joined with commas.
func Load(r io.Reader) (Config, error) {
	var doc map[string]interface{}
	err := yaml.NewDecoder(r).Decode(&doc)
	if err == io.EOF {
		return Empty(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	values := map[string]string{}
	err = flatten("", doc, values)
	if err != nil {
		return Config{}, err
	}

	return Config{values: values}, nil
}

func LoadFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	defer f.Close()

	return Load(f)
}

func (c Config) Lookup(key string) (string, bool) {
	v, ok := c.values[key]
	return v, ok
}

func (c Config) Get(key string) string {
	return c.values[key]
}

// List splits a comma-joined value, dropping empty entries.
func (c Config) List(key string) []string {
	raw, ok := c.values[key]
	if !ok {
		return nil
	}

	var items []string
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}

// Duration returns def when key is absent. Values are parsed with
// time.ParseDuration; bare integers are taken as seconds.
func (c Config) Duration(key string, def time.Duration) (time.Duration, error) {
	raw, ok := c.values[key]
	if !ok {
		return def, nil
	}

	if seconds, err := strconv.ParseInt(raw, 10, 64); err == nil {
		if seconds > maxSeconds || seconds < -maxSeconds {
			return 0, fmt.Errorf("invalid duration for %s: %d seconds is out of range", key, seconds)
		}
		return time.Duration(seconds) * time.Second, nil
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid duration for %s: %w", key, err)
	}
	return d, nil
}

// Sub returns the settings under prefix with the prefix stripped.
func (c Config) Sub(prefix string) Config {
	prefix = strings.TrimSuffix(prefix, Separator) + Separator

	values := map[string]string{}
	for k, v := range c.values {
		if strings.HasPrefix(k, prefix) {
			values[strings.TrimPrefix(k, prefix)] = v
		}
	}
	return Config{values: values}
}

func (c Config) Keys() []string {
	keys := make([]string, 0, len(c.values))
	for k := range c.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (c Config) Len() int {
	return len(c.values)
}

func flatten(prefix string, node interface{}, out map[string]string) error {
	switch n := node.(type) {
	case map[string]interface{}:
		for k, v := range n {
			err := flatten(join(prefix, k), v, out)
			if err != nil {
				return err
			}
		}
	case []interface{}:
		items := make([]string, 0, len(n))
		for _, item := range n {
			switch item.(type) {
			case map[string]interface{}, []interface{}:
				return fmt.Errorf("config key %s: sequences may only hold scalars", prefix)
			}
			items = append(items, scalar(item))
		}
		out[prefix] = strings.Join(items, ",")
	default:
		if prefix == "" {
			return ErrNotAMapping
		}
		out[prefix] = scalar(n)
	}
	return nil
}

func join(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + Separator + key
}

func scalar(v interface{}) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

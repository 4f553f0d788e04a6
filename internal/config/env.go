package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
)

type lookupFunc func(key string) (string, bool)

// applyEnv overrides every field tagged `env:"NAME"` whose variable is set.
// Nested structs are walked recursively.
func applyEnv(target interface{}, lookup lookupFunc) error {
	v := reflect.Indirect(reflect.ValueOf(target))
	if v.Kind() != reflect.Struct {
		return fmt.Errorf("config target must be a struct, got %s", v.Kind())
	}
	return applyEnvValue(v, lookup)
}

func applyEnvValue(v reflect.Value, lookup lookupFunc) error {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		sf, fv := t.Field(i), v.Field(i)
		if fv.Kind() == reflect.Struct {
			if err := applyEnvValue(fv, lookup); err != nil {
				return err
			}
			continue
		}

		name, ok := sf.Tag.Lookup("env")
		if !ok || name == "" {
			continue
		}
		raw, set := lookup(name)
		if !set {
			continue
		}
		if err := assignEnv(fv, strings.TrimSpace(raw)); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

func assignEnv(fv reflect.Value, raw string) error {
	switch fv.Kind() {
	case reflect.String:
		fv.SetString(raw)
	case reflect.Int, reflect.Int64:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("expected an integer, got %q", raw)
		}
		fv.SetInt(int64(n))
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("expected a boolean, got %q", raw)
		}
		fv.SetBool(b)
	default:
		return fmt.Errorf("unsupported kind %s", fv.Kind())
	}
	return nil
}

// loadFromEnv overrides configuration with process environment variables
func loadFromEnv(config *Config) error {
	return applyEnv(config, os.LookupEnv)
}

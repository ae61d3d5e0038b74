package config

import (
	"reflect"
	"strings"
)

// ConfigManager merges CLI flags into a loaded Config.
// Priority: CLI flags > repo file > home file > defaults.
type ConfigManager struct {
	Config *Config
	Flags  map[string]interface{}
}

func NewConfigManager(cfg *Config) *ConfigManager {
	return &ConfigManager{
		Config: cfg,
		Flags:  make(map[string]interface{}),
	}
}

// RegisterFlag records a flag value under the YAML key of the Config field it
// overrides.
func (cm *ConfigManager) RegisterFlag(key string, value interface{}) {
	cm.Flags[key] = value
}

// MergeConfiguration writes every non-zero registered flag into the Config.
// A zero flag (unset string, false bool) leaves the file value alone.
func (cm *ConfigManager) MergeConfiguration() *Config {
	configValue := reflect.ValueOf(cm.Config).Elem()
	configType := configValue.Type()

	for i := 0; i < configType.NumField(); i++ {
		field := configType.Field(i)
		yamlTag := field.Tag.Get("yaml")
		if yamlTag == "" {
			continue
		}
		name := strings.Split(yamlTag, ",")[0]
		flagValue, exists := cm.Flags[name]
		if !exists {
			continue
		}
		flagVal := reflect.ValueOf(flagValue)
		if !flagVal.IsValid() || isZeroValue(flagVal) {
			continue
		}
		fieldValue := configValue.Field(i)
		if fieldValue.CanSet() && flagVal.Type().ConvertibleTo(fieldValue.Type()) {
			fieldValue.Set(flagVal.Convert(fieldValue.Type()))
		}
	}
	return cm.Config
}

func isZeroValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return strings.TrimSpace(v.String()) == ""
	case reflect.Bool:
		return !v.Bool()
	default:
		return v.IsZero()
	}
}

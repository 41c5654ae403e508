package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sjzsdu/tdoc/helper"
	"github.com/sjzsdu/tdoc/share"
)

var configMap map[string]string

func init() {
	// 先加载当前目录下的 .env，配置文件中的同名键会覆盖它
	_ = godotenv.Load()

	configMap = make(map[string]string)
	_ = LoadConfig()
}

// GetConfig 依次按原样和加前缀后的键读取环境变量
func GetConfig(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return os.Getenv(envKey(key))
}

func GetConfigWithDefault(key string, defaultValue string) string {
	if value := GetConfig(key); value != "" {
		return value
	}
	return defaultValue
}

// configFile 配置文件路径 ~/.tdoc/config
func configFile() string {
	return helper.GetPath("config")
}

// LoadConfig 读取配置文件并写入环境变量，文件不存在时保持现有配置
func LoadConfig() error {
	values, err := godotenv.Read(configFile())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	configMap = values
	for key, value := range values {
		if err := os.Setenv(key, value); err != nil {
			return err
		}
	}
	return nil
}

// SaveConfig 把当前配置写回配置文件，键按字母序
func SaveConfig() error {
	if err := os.MkdirAll(helper.GetPath(""), 0755); err != nil {
		return err
	}
	if err := godotenv.Write(configMap, configFile()); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func GetEnvKey(flagKey string) string {
	return share.PREFIX + strings.ToUpper(flagKey)
}

// envKey 简短键加上前缀，已是完整环境变量名的键原样返回
func envKey(key string) string {
	if strings.HasPrefix(key, share.PREFIX) {
		return key
	}
	return GetEnvKey(key)
}

// SetConfig 设置配置值并更新环境变量
func SetConfig(key, value string) {
	name := envKey(key)
	configMap[name] = value
	os.Setenv(name, value)
}

// ClearConfig 清除指定配置
func ClearConfig(key string) {
	name := envKey(key)
	delete(configMap, name)
	os.Unsetenv(name)
}

// ClearAllConfig 清除所有配置
func ClearAllConfig() {
	for key := range configMap {
		os.Unsetenv(key)
	}
	configMap = make(map[string]string)
}

// GetConfigMap 返回已加载的配置
func GetConfigMap() map[string]string {
	return configMap
}

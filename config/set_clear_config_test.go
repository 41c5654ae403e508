package config_test

import (
	"os"
	"testing"

	"github.com/sjzsdu/tdoc/config"
)

// TestSetConfig 测试SetConfig函数是否正确处理不同格式的键
func TestSetConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	config.ClearAllConfig()
	t.Cleanup(config.ClearAllConfig)

	tests := []struct {
		name     string
		key      string
		value    string
		checkKey string
	}{
		{
			name:     "使用简短键设置配置",
			key:      "branch",
			value:    "main",
			checkKey: "TDOC_BRANCH",
		},
		{
			name:     "使用环境变量键设置配置",
			key:      "TDOC_LANG",
			value:    "zh-CN",
			checkKey: "TDOC_LANG",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config.SetConfig(tt.key, tt.value)

			// 检查环境变量是否被正确设置
			if got := os.Getenv(tt.checkKey); got != tt.value {
				t.Errorf("SetConfig() 环境变量 = %v, want %v", got, tt.value)
			}

			if got := config.GetConfig(tt.key); got != tt.value {
				t.Errorf("GetConfig(%s) = %v, want %v", tt.key, got, tt.value)
			}

			// 检查用环境变量名获取也能正确返回
			if got := config.GetConfig(tt.checkKey); got != tt.value {
				t.Errorf("GetConfig(%s) = %v, want %v", tt.checkKey, got, tt.value)
			}
		})
	}
}

// TestClearConfig 测试ClearConfig函数是否正确处理不同格式的键
func TestClearConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	config.ClearAllConfig()

	config.SetConfig("workers", "4")
	config.SetConfig("TDOC_THEME", "latte")

	config.ClearConfig("workers")
	config.ClearConfig("TDOC_THEME")

	for _, key := range []string{"TDOC_WORKERS", "TDOC_THEME"} {
		if got := os.Getenv(key); got != "" {
			t.Errorf("ClearConfig() 后 %s = %q, 期望为空", key, got)
		}
	}
	if len(config.GetConfigMap()) != 0 {
		t.Errorf("GetConfigMap() = %v, 期望为空", config.GetConfigMap())
	}
}

func TestIsValidConfigOption(t *testing.T) {
	tests := []struct {
		key   string
		value string
		want  bool
	}{
		{config.KeyGitBackend, "library", true},
		{config.KeyGitBackend, "command", true},
		{config.KeyGitBackend, "svn", false},
		{config.KeyRenderer, "markdown", true},
		{config.KeyTargetLang, "anything", true},
	}
	for _, tt := range tests {
		if got := config.IsValidConfigOption(tt.key, tt.value); got != tt.want {
			t.Errorf("IsValidConfigOption(%s, %s) = %v, want %v", tt.key, tt.value, got, tt.want)
		}
	}
}

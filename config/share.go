package config

// ConfigKeyInfo 存储配置键的相关信息
type ConfigKeyInfo struct {
	Description string   // 配置项描述
	Options     []string // 可选值，如果为空则表示没有限制
	Type        string   // 配置项类型，默认为 "string"，可以是 "int", "path" 等
}

// 配置键常量定义
const (
	KeyLang       = "lang"
	KeyRenderer   = "renderer"
	KeyTheme      = "theme"
	KeyRepoURL    = "repo_url"
	KeyRepoPath   = "repo_path"
	KeyDocDir     = "doc_dir"
	KeyOriginLang = "origin_lang"
	KeyTargetLang = "target_lang"
	KeyBranch     = "branch"
	KeyGitBackend = "git_backend"
	KeyWorkers    = "workers"
	KeyLogFile    = "log_file"
)

// ConfigKeys 存储所有配置键及其信息
var ConfigKeys = map[string]ConfigKeyInfo{
	KeyLang: {
		Description: "Set language",
		Options:     []string{"en", "zh-CN"},
		Type:        "string",
	},
	KeyRenderer: {
		Description: "Set report render type",
		Options:     []string{"text", "markdown"},
		Type:        "string",
	},
	KeyTheme: {
		Description: "Set color theme",
		Options:     []string{"latte", "frappe", "macchiato", "mocha"},
		Type:        "string",
	},
	KeyRepoURL: {
		Description: "Set upstream documentation repository URL",
		Type:        "string",
	},
	KeyRepoPath: {
		Description: "Set local checkout path",
		Type:        "path",
	},
	KeyDocDir: {
		Description: "Set documentation directory inside the checkout",
		Type:        "string",
	},
	KeyOriginLang: {
		Description: "Set source language",
		Type:        "string",
	},
	KeyTargetLang: {
		Description: "Set default target language",
		Type:        "string",
	},
	KeyBranch: {
		Description: "Set branch used for translated document links",
		Type:        "string",
	},
	KeyGitBackend: {
		Description: "Set git backend",
		Options:     []string{"library", "command"},
		Type:        "string",
	},
	KeyWorkers: {
		Description: "Set number of concurrent status workers",
		Type:        "int",
	},
	KeyLogFile: {
		Description: "Set log file path",
		Type:        "path",
	},
}

// GetConfigDescription 获取配置键的描述
func GetConfigDescription(key string) string {
	if info, exists := ConfigKeys[key]; exists {
		return info.Description
	}
	return ""
}

// GetConfigOptions 获取配置键的可选值
func GetConfigOptions(key string) []string {
	if info, exists := ConfigKeys[key]; exists {
		return info.Options
	}
	return nil
}

// GetConfigType 获取配置键的类型
func GetConfigType(key string) string {
	if info, exists := ConfigKeys[key]; exists {
		return info.Type
	}
	return "string" // 默认类型为字符串
}

// IsValidConfigOption 检查给定的值是否是配置键的有效选项
func IsValidConfigOption(key, value string) bool {
	options := GetConfigOptions(key)
	if len(options) == 0 {
		// 如果没有定义选项，则认为所有值都有效
		return true
	}

	for _, option := range options {
		if option == value {
			return true
		}
	}
	return false
}

// GetAllConfigKeys 获取所有配置键
func GetAllConfigKeys() []string {
	keys := make([]string, 0, len(ConfigKeys))
	for key := range ConfigKeys {
		keys = append(keys, key)
	}
	return keys
}

package toc

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/muhammadmuzzammil1998/jsonc"
	"github.com/sjzsdu/tdoc/share"
	"gopkg.in/yaml.v3"
)

var (
	// ErrManifestNotFound 清单文件或语言不存在
	ErrManifestNotFound = errors.New("toc manifest not found")
	// ErrManifestInvalid 清单条目结构错误
	ErrManifestInvalid = errors.New("toc manifest invalid")
)

// ManifestFiles 按优先级查找的清单文件名
var ManifestFiles = []string{"toc.json", "toc.jsonc", "toc.yaml", "toc.yml", "toc.js"}

// Manifest 以语言为键的原始清单
type Manifest struct {
	File  string
	langs map[string][]any
}

// LoadManifest 在 docRoot 下查找并解析清单文件
func LoadManifest(docRoot string) (*Manifest, error) {
	for _, name := range ManifestFiles {
		file := filepath.Join(docRoot, name)
		data, err := os.ReadFile(file)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("read %s: %w", file, err)
		}
		raw, err := decodeManifest(name, data)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrManifestInvalid, file, err)
		}
		return newManifest(file, raw)
	}
	return nil, fmt.Errorf("%w: no %v in %s", ErrManifestNotFound, ManifestFiles, docRoot)
}

func decodeManifest(name string, data []byte) (map[string]any, error) {
	raw := map[string]any{}
	switch filepath.Ext(name) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	case ".js":
		return evalJSModule(name, data)
	default:
		if err := json.Unmarshal(jsonc.ToJSON(data), &raw); err != nil {
			return nil, err
		}
	}
	return raw, nil
}

func newManifest(file string, raw map[string]any) (*Manifest, error) {
	m := &Manifest{File: file, langs: make(map[string][]any, len(raw))}
	for lang, value := range raw {
		items, ok := value.([]any)
		if !ok {
			return nil, fmt.Errorf("%w: %s: language %q is not a list", ErrManifestInvalid, file, lang)
		}
		m.langs[lang] = items
	}
	return m, nil
}

// Languages 返回清单中的语言，按字母序
func (m *Manifest) Languages() []string {
	langs := make([]string, 0, len(m.langs))
	for lang := range m.langs {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// Tree 展开某一语言的目录
func (m *Manifest) Tree(lang string) (*Tree, error) {
	items, ok := m.langs[lang]
	if !ok {
		return nil, fmt.Errorf("%w: language %q in %s", ErrManifestNotFound, lang, m.File)
	}
	entries, err := expand(items, "", lang)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", m.File, err)
	}
	return &Tree{Lang: lang, Entries: entries}, nil
}

// Load 读取 docRoot 下的清单并展开 lang 对应的目录
func Load(docRoot, lang string) (*Tree, error) {
	m, err := LoadManifest(docRoot)
	if err != nil {
		return nil, err
	}
	return m.Tree(lang)
}

// expand 把 [名称, 路径] 或 [名称, [子目录, 子条目...]] 展开为条目
// 纯字符串条目和首页条目被跳过
func expand(items []any, prefix, where string) ([]*Entry, error) {
	entries := []*Entry{}
	for i, raw := range items {
		pos := fmt.Sprintf("%s[%d]", where, i)
		if _, ok := raw.(string); ok {
			continue
		}
		item, ok := raw.([]any)
		if !ok {
			return nil, fmt.Errorf("%w: %s: entry must be a list", ErrManifestInvalid, pos)
		}
		if len(item) > 0 && item[0] == share.HOME_ENTRY {
			continue
		}
		if len(item) < 2 {
			return nil, fmt.Errorf("%w: %s: entry needs a name and a path", ErrManifestInvalid, pos)
		}
		name, ok := item[0].(string)
		if !ok {
			return nil, fmt.Errorf("%w: %s: name must be a string", ErrManifestInvalid, pos)
		}

		switch v := item[1].(type) {
		case string:
			entries = append(entries, &Entry{Name: name, Path: prefix + "/" + v})
		case []any:
			if len(v) == 0 {
				return nil, fmt.Errorf("%w: %s: section %q has no directory", ErrManifestInvalid, pos, name)
			}
			segment, ok := v[0].(string)
			if !ok {
				return nil, fmt.Errorf("%w: %s: section %q directory must be a string", ErrManifestInvalid, pos, name)
			}
			dir := prefix + "/" + segment
			children, err := expand(sectionChildren(v[1:]), dir, where+"/"+name)
			if err != nil {
				return nil, err
			}
			entries = append(entries, &Entry{Name: name, Path: dir, Dir: true, Children: children})
		default:
			return nil, fmt.Errorf("%w: %s: path of %q must be a string or a list", ErrManifestInvalid, pos, name)
		}
	}
	return entries, nil
}

// sectionChildren 兼容 [子目录, [子条目...]] 的嵌套写法
func sectionChildren(rest []any) []any {
	if len(rest) != 1 {
		return rest
	}
	nested, ok := rest[0].([]any)
	if !ok {
		return rest
	}
	if len(nested) == 0 {
		return nested
	}
	if _, ok := nested[0].([]any); ok {
		return nested
	}
	return rest
}

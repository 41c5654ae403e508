package toc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTree() *Tree {
	return &Tree{Lang: "en", Entries: []*Entry{
		{Name: "About", Path: "/about.md"},
		{Name: "Drivers", Path: "/drivers", Dir: true, Children: []*Entry{
			{Name: "iOS", Path: "/drivers/ios.md"},
			{Name: "Android", Path: "/drivers/android", Dir: true, Children: []*Entry{
				{Name: "Espresso", Path: "/drivers/android/espresso.md"},
			}},
			{Name: "Commands", Path: "/drivers/commands.md"},
		}},
		{Name: "Commands", Path: "/commands", Dir: true, Children: []*Entry{
			{Name: "Status", Path: "/commands/status.md"},
		}},
	}}
}

func TestFlattenDepthFirst(t *testing.T) {
	got := FlattenTree(sampleTree(), FlattenOptions{})
	want := []FlatEntry{
		{Label: "- About", Path: "/about.md"},
		{Label: "- Drivers", Path: "/drivers"},
		{Label: "  - iOS", Path: "/drivers/ios.md"},
		{Label: "  - Android", Path: "/drivers/android"},
		{Label: "    - Espresso", Path: "/drivers/android/espresso.md"},
	}
	assert.Equal(t, want, got)
}

func TestFlattenParentPrecedesFirstChild(t *testing.T) {
	tree := sampleTree()
	flat := FlattenTree(tree, FlattenOptions{ShowCommands: true})

	index := map[string]int{}
	for i, e := range flat {
		index[e.Path] = i
	}
	var check func([]*Entry)
	check = func(entries []*Entry) {
		for _, e := range entries {
			if e.Dir && len(e.Children) > 0 {
				assert.Equal(t, index[e.Path]+1, index[e.Children[0].Path], "section %s", e.Name)
				check(e.Children)
			}
		}
	}
	check(tree.Entries)
}

func TestFlattenShowCommands(t *testing.T) {
	got := FlattenTree(sampleTree(), FlattenOptions{ShowCommands: true})
	require.Len(t, got, 8)
	// 嵌套层级中的同名条目也受开关控制
	assert.Equal(t, FlatEntry{Label: "  - Commands", Path: "/drivers/commands.md"}, got[5])
	assert.Equal(t, FlatEntry{Label: "- Commands", Path: "/commands"}, got[6])
	assert.Equal(t, FlatEntry{Label: "  - Status", Path: "/commands/status.md"}, got[7])
}

func TestFlattenSection(t *testing.T) {
	got := FlattenSection(sampleTree(), "Commands")
	assert.Equal(t, []FlatEntry{
		{Label: "- Commands", Path: "/commands"},
		{Label: "  - Status", Path: "/commands/status.md"},
	}, got)

	missing := FlattenSection(&Tree{Lang: "cn"}, "Commands")
	assert.NotNil(t, missing)
	assert.Empty(t, missing)
}

func TestFlattenEmpty(t *testing.T) {
	assert.Empty(t, FlattenTree(&Tree{}, FlattenOptions{}))
	assert.Empty(t, FlattenTree(nil, FlattenOptions{}))
	assert.Empty(t, Flatten(nil, 3, FlattenOptions{}))
}

func TestFlattenStartDepth(t *testing.T) {
	got := Flatten([]*Entry{{Name: "Deep", Path: "/deep.md"}}, 2, FlattenOptions{})
	assert.Equal(t, "    - Deep", got[0].Label)
}

func TestFilter(t *testing.T) {
	flat := FlattenTree(sampleTree(), FlattenOptions{ShowCommands: true})

	got, err := Filter(flat, "drivers/**/*.md")
	require.NoError(t, err)
	paths := make([]string, 0, len(got))
	for _, e := range got {
		paths = append(paths, e.Path)
	}
	assert.Equal(t, []string{
		"/drivers/ios.md",
		"/drivers/android/espresso.md",
		"/drivers/commands.md",
	}, paths)

	got, err = Filter(flat, "/**/*.md")
	require.NoError(t, err)
	assert.Len(t, got, 5)

	got, err = Filter(flat, "")
	require.NoError(t, err)
	assert.Equal(t, flat, got)

	_, err = Filter(flat, "drivers/[")
	assert.Error(t, err)
}

package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/infrastructure/codec"
)

// testEnv isolates XDG dirs and returns a config path inside them.
func testEnv(t *testing.T) (dir, configPath string) {
	t.Helper()
	dir = t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	t.Setenv("DOCKYARD_LOG_LEVEL", "error")
	return dir, filepath.Join(dir, "config", "dockyard", "config.toml")
}

// run executes the root command and resets flag variables shared between runs.
func run(t *testing.T, configPath string, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() {
		rootOpts.ConfigPath, rootOpts.LogLevel = "", ""
		inspectRaw, convertRaw = false, false
		moveOrientation, moveOut = "", ""
		itemOut, itemForce = "", false
		watchSaveAs, watchPlain = "", false
		app = nil
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--config", configPath}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func sampleLayout() *entity.LayoutDocument {
	doc := entity.NewLayoutDocument()
	doc.PrimaryWorkspace = &entity.WorkspaceDocument{
		ID: "primary",
		DockTree: &entity.NodeDocument{
			Type:        entity.NodeDocumentSplit,
			ID:          "root",
			Orientation: entity.Horizontal,
			Sizes:       []float64{0.25, 0.75},
			Children: []entity.NodeDocument{
				{
					Type: entity.NodeDocumentTab, ID: "tools", SelectedID: "explorer",
					Tabs: []entity.ItemDocument{{ID: "explorer", Title: "Explorer"}, {ID: "search", Title: "Search", DisableClose: true}},
				},
				{
					Type: entity.NodeDocumentTab, ID: "docs", SelectedID: "editor",
					Tabs: []entity.ItemDocument{{ID: "editor", Title: "Editor"}, {ID: "readme", Title: "Readme"}},
				},
			},
		},
	}
	return doc
}

func writeLayout(t *testing.T, path string, doc *entity.LayoutDocument) {
	t.Helper()
	c, err := codec.ForPath(path)
	require.NoError(t, err)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, c.Encode(f, doc))
}

func readLayout(t *testing.T, path string) *entity.LayoutDocument {
	t.Helper()
	c, err := codec.ForPath(path)
	require.NoError(t, err)
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	doc, err := c.Decode(f)
	require.NoError(t, err)
	return doc
}

// tabOf returns the id of the tab node holding item in the primary workspace.
func tabOf(doc *entity.LayoutDocument, item string) string {
	var walk func(n *entity.NodeDocument) string
	walk = func(n *entity.NodeDocument) string {
		for _, tab := range n.Tabs {
			if tab.ID == item {
				return n.ID
			}
		}
		for i := range n.Children {
			if id := walk(&n.Children[i]); id != "" {
				return id
			}
		}
		return ""
	}
	return walk(doc.PrimaryWorkspace.DockTree)
}

func TestValidateCommand(t *testing.T) {
	dir, cfg := testEnv(t)
	good := filepath.Join(dir, "good.json")
	writeLayout(t, good, sampleLayout())

	out, err := run(t, cfg, "validate", good)
	require.NoError(t, err)
	assert.Contains(t, out, "1 file(s), 0 failed")

	bad := sampleLayout()
	bad.PrimaryWorkspace.DockTree.Children[1].Tabs[0].ID = "explorer"
	badPath := filepath.Join(dir, "bad.yaml")
	writeLayout(t, badPath, bad)

	out, err = run(t, cfg, "validate", good, badPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 layout(s) failed validation")
	assert.Contains(t, out, "duplicates")
}

func TestMoveCommand_RewritesFile(t *testing.T) {
	dir, cfg := testEnv(t)
	path := filepath.Join(dir, "layout.json")
	writeLayout(t, path, sampleLayout())

	_, err := run(t, cfg, "move", path, "editor", "tools", "center")
	require.NoError(t, err)

	doc := readLayout(t, path)
	assert.Equal(t, "tools", tabOf(doc, "editor"))
	assert.Equal(t, "docs", tabOf(doc, "readme"))
}

func TestMoveCommand_UnknownTarget(t *testing.T) {
	dir, cfg := testEnv(t)
	path := filepath.Join(dir, "layout.json")
	writeLayout(t, path, sampleLayout())

	_, err := run(t, cfg, "move", path, "editor", "nowhere", "center")
	assert.ErrorIs(t, err, entity.ErrNodeNotFound)

	_, err = run(t, cfg, "move", path, "editor", "tools", "sideways")
	assert.Error(t, err)
}

func TestCloseCommand_HonorsDisableFlag(t *testing.T) {
	dir, cfg := testEnv(t)
	path := filepath.Join(dir, "layout.json")
	writeLayout(t, path, sampleLayout())

	_, err := run(t, cfg, "close", path, "search")
	require.ErrorIs(t, err, entity.ErrCloseDisabled)
	assert.Equal(t, "tools", tabOf(readLayout(t, path), "search"))

	_, err = run(t, cfg, "close", path, "search", "--force")
	require.NoError(t, err)
	assert.Empty(t, tabOf(readLayout(t, path), "search"))
}

func TestHideAndShowCommands(t *testing.T) {
	dir, cfg := testEnv(t)
	path := filepath.Join(dir, "layout.json")
	writeLayout(t, path, sampleLayout())

	_, err := run(t, cfg, "hide", path, "readme")
	require.NoError(t, err)

	doc := readLayout(t, path)
	require.Len(t, doc.Hidden, 1)
	assert.Equal(t, "readme", doc.Hidden[0].ID)
	assert.Empty(t, tabOf(doc, "readme"))

	_, err = run(t, cfg, "show", path, "readme")
	require.NoError(t, err)

	doc = readLayout(t, path)
	assert.Empty(t, doc.Hidden)
	assert.Equal(t, "docs", tabOf(doc, "readme"))
}

func TestFloatCommand(t *testing.T) {
	dir, cfg := testEnv(t)
	path := filepath.Join(dir, "layout.json")
	out := filepath.Join(dir, "floated.json")
	before := sampleLayout()
	writeLayout(t, path, before)

	_, err := run(t, cfg, "float", path, "readme", "--out", out)
	require.NoError(t, err)

	doc := readLayout(t, out)
	require.Len(t, doc.SecondaryWorkspaces, 1)
	window := doc.SecondaryWorkspaces[0]
	assert.Equal(t, 300.0, window.Width)
	assert.Equal(t, 200.0, window.Height)
	assert.Equal(t, before.CountItems(), doc.CountItems())
	assert.Empty(t, tabOf(doc, "readme"))

	// The input is left alone when --out is given.
	assert.Equal(t, "docs", tabOf(readLayout(t, path), "readme"))
}

func TestConvertCommand(t *testing.T) {
	dir, cfg := testEnv(t)
	in := filepath.Join(dir, "layout.json")
	out := filepath.Join(dir, "layout.yaml")
	writeLayout(t, in, sampleLayout())

	_, err := run(t, cfg, "convert", in, out)
	require.NoError(t, err)

	doc := readLayout(t, out)
	assert.Equal(t, 4, doc.CountItems())
	assert.Equal(t, "docs", tabOf(doc, "editor"))
}

func TestStoreCommands(t *testing.T) {
	dir, cfg := testEnv(t)
	path := filepath.Join(dir, "layout.toml")
	writeLayout(t, path, sampleLayout())

	out, err := run(t, cfg, "store", "save", "work", path)
	require.NoError(t, err)
	assert.Contains(t, out, "saved, 4 item(s)")

	out, err = run(t, cfg, "store", "save", "work", path)
	require.NoError(t, err)
	assert.Contains(t, out, "unchanged")

	out, err = run(t, cfg, "store", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "work")

	loaded := filepath.Join(dir, "loaded.json")
	_, err = run(t, cfg, "store", "load", "work", loaded)
	require.NoError(t, err)
	assert.Equal(t, "tools", tabOf(readLayout(t, loaded), "search"))

	_, err = run(t, cfg, "store", "delete", "work")
	require.NoError(t, err)

	_, err = run(t, cfg, "store", "load", "work", loaded)
	assert.ErrorIs(t, err, entity.ErrLayoutNotFound)
}

func TestSchemaCommand(t *testing.T) {
	_, cfg := testEnv(t)

	out, err := run(t, cfg, "schema", "layout")
	require.NoError(t, err)
	assert.Contains(t, out, "primaryWorkspace")

	out, err = run(t, cfg, "schema")
	require.NoError(t, err)
	assert.Contains(t, out, "insert_policy")

	_, err = run(t, cfg, "schema", "session")
	assert.Error(t, err)
}

func TestInspectCommand(t *testing.T) {
	dir, cfg := testEnv(t)
	path := filepath.Join(dir, "layout.json")
	writeLayout(t, path, sampleLayout())

	out, err := run(t, cfg, "inspect", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Primary workspace")
	assert.Contains(t, out, "editor")
}

func TestConfigCommands(t *testing.T) {
	dir, cfg := testEnv(t)

	out, err := run(t, cfg, "config", "path")
	require.NoError(t, err)
	assert.Contains(t, out, cfg)
	assert.Contains(t, out, filepath.Join(dir, "data", "dockyard"))

	out, err = run(t, cfg, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, `insert_policy = "create_last"`)
	assert.Contains(t, out, "[watch]")
}

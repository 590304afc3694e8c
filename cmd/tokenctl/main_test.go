package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cli struct {
	t        *testing.T
	database string
}

func newCLI(t *testing.T) *cli {
	return &cli{
		t:        t,
		database: filepath.Join(t.TempDir(), "tokens.db"),
	}
}

func (c *cli) run(stdin string, args ...string) (string, error) {
	c.t.Helper()

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--config", filepath.Join(c.t.TempDir(), "missing.yaml"), "--database", c.database}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func (c *cli) mustRun(args ...string) string {
	c.t.Helper()

	out, err := c.run("", args...)
	require.NoError(c.t, err, "tokenctl %s", strings.Join(args, " "))
	return out
}

func TestDecode(t *testing.T) {
	c := newCLI(t)

	out := c.mustRun("decode", "#FF0000", "ABC")
	assert.Contains(t, out, "#ff0000")
	assert.Contains(t, out, "#abababcc")
	assert.Contains(t, out, "rgba(255, 0, 0, 1.000)")
}

func TestDecode_Strict(t *testing.T) {
	c := newCLI(t)

	_, err := c.run("", "decode", "--strict", "12345")
	assert.ErrorContains(t, err, "invalid color format")
}

func TestCatalog(t *testing.T) {
	c := newCLI(t)

	out := c.mustRun("catalog")
	for _, name := range []string{"Color", "Space", "Size", "Typography", "Border", "Shadow", "Duration"} {
		assert.Contains(t, out, name)
	}
}

func TestGroupsAndColors(t *testing.T) {
	c := newCLI(t)

	groupID := strings.TrimSpace(c.mustRun("groups", "create", "Brand"))
	require.Len(t, groupID, 36)

	assert.Contains(t, c.mustRun("groups", "list"), "Brand")

	c.mustRun("colors", "add", groupID, "#111111", "--name", "a")
	_, err := c.run("", "colors", "add", groupID, "12345")
	assert.ErrorContains(t, err, "invalid color format")

	out, err := c.run(`[{"name":"b","value":"222222"},{"name":"c","value":"333333"}]`, "colors", "import", groupID)
	require.NoError(t, err)
	assert.Contains(t, out, "imported 2 color(s)")

	_, err = c.run("not json", "colors", "import", groupID, "-")
	assert.Error(t, err)

	out = c.mustRun("colors", "move", groupID, "0", "--to", "3")
	require.Contains(t, out, " a\n")
	assert.Less(t, strings.Index(out, " b\n"), strings.Index(out, " a\n"))

	out = c.mustRun("colors", "remove", groupID, "0")
	assert.NotContains(t, out, "#222222")
	assert.Contains(t, out, "#333333")

	c.mustRun("groups", "delete", groupID)
	assert.Contains(t, c.mustRun("groups", "list"), "no color groups")
}

func TestMigrate(t *testing.T) {
	c := newCLI(t)

	assert.Contains(t, c.mustRun("migrate", "up"), "version 2")
	assert.Contains(t, c.mustRun("migrate", "down"), "version 0")
	assert.Contains(t, c.mustRun("migrate", "version"), "version 0")
}

func TestInvalidGroupID(t *testing.T) {
	c := newCLI(t)

	_, err := c.run("", "colors", "list", "not-a-uuid")
	assert.ErrorContains(t, err, "invalid group id")
}

func TestBrowse(t *testing.T) {
	c := newCLI(t)

	groupID := strings.TrimSpace(c.mustRun("groups", "create", "Brand"))
	c.mustRun("colors", "add", groupID, "#2563EB", "--name", "primary")

	out, err := c.run("0\n0\nback\n1\nrefresh\nq\n", "browse")
	require.NoError(t, err)

	assert.Contains(t, out, "Typography")
	assert.Contains(t, out, "0  Brand")
	assert.Contains(t, out, "Color / Brand")
	assert.Contains(t, out, "primary")
	assert.Contains(t, out, "no group 1")
}

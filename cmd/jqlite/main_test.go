package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dataslice/jqlite/internal/jqerr"
)

func TestRunFilterWritesOneValuePerLine(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.json")
	require.NoError(t, os.WriteFile(path, []byte(`[1,2,3]`), 0o644))

	cmd := NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{".[] | . * 2", path})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "2\n4\n6\n", buf.String())
}

func TestRunFilterMissingFileIsCLIFileReadError(t *testing.T) {
	cmd := NewRootCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetArgs([]string{".", filepath.Join(t.TempDir(), "missing.json")})

	err := cmd.Execute()
	require.Error(t, err)
	assert.True(t, jqerr.IsCode(err, jqerr.CodeCLIFileRead))
}

func TestRunFilterBadFilterIsCLIFilterParseError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.json")
	require.NoError(t, os.WriteFile(path, []byte(`1`), 0o644))

	cmd := NewRootCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetArgs([]string{"   ", path})

	err := cmd.Execute()
	require.Error(t, err)
	assert.True(t, jqerr.IsCode(err, jqerr.CodeCLIFilterParse))
}

func TestExactArgsEnforced(t *testing.T) {
	cmd := NewRootCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetArgs([]string{"only-one-arg"})
	assert.Error(t, cmd.Execute())
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 3, exitCode(jqerr.New(jqerr.CodeCLIFileRead, -1, "boom")))
	assert.Equal(t, 5, exitCode(jqerr.New(jqerr.CodeCLIFilterParse, -1, "boom")))
	assert.Equal(t, 1, exitCode(assert.AnError))
}

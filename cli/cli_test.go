/*
File    : green/cli/cli_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeTempSource(t *testing.T, src string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.grn")
	assert.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func TestExecuteDefaultFileMissingIsIo001(t *testing.T) {
	dir := t.TempDir()
	cwd, err := os.Getwd()
	assert.NoError(t, err)
	defer os.Chdir(cwd)
	assert.NoError(t, os.Chdir(dir))

	var stdout, stderr bytes.Buffer
	code := Execute(nil, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "IO001")
}

func TestExecutePositionalFile(t *testing.T) {
	path := writeTempSource(t, `function main() { print("hi"); }`)

	var stdout, stderr bytes.Buffer
	code := Execute([]string{path}, &stdout, &stderr)
	assert.Equal(t, 0, code)
	assert.Equal(t, "hi\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestExecuteExeFlag(t *testing.T) {
	path := writeTempSource(t, `function main() { print(1 + 1); }`)

	var stdout, stderr bytes.Buffer
	code := Execute([]string{"-exe", path}, &stdout, &stderr)
	assert.Equal(t, 0, code)
	assert.Equal(t, "2\n", stdout.String())
}

func TestExecuteAnaFlagDoesNotRun(t *testing.T) {
	path := writeTempSource(t, `function add(a: int, b: int) → int { return a + b; } function main() { print(add(1, 2)); }`)

	var stdout, stderr bytes.Buffer
	code := Execute([]string{"-ana", path}, &stdout, &stderr)
	assert.Equal(t, 0, code)
	assert.NotContains(t, stdout.String(), "3")
	assert.Contains(t, stdout.String(), "add")
	assert.Contains(t, stdout.String(), "main")
}

func TestExecuteBothFlagsIsCmd002(t *testing.T) {
	path := writeTempSource(t, `function main() {}`)

	var stdout, stderr bytes.Buffer
	code := Execute([]string{"-exe", path, "-ana", path}, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "CMD002")
}

func TestExecuteTooManyArgsIsCmd002(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Execute([]string{"a.grn", "b.grn"}, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "CMD002")
}

func TestExecuteUnknownFlagIsCmd001(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Execute([]string{"--bogus"}, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "CMD001")
}

func TestExecuteParseErrorSurfacesAndExitsNonZero(t *testing.T) {
	path := writeTempSource(t, `function main() { let x : int = ; }`)

	var stdout, stderr bytes.Buffer
	code := Execute([]string{path}, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.NotEmpty(t, stderr.String())
}

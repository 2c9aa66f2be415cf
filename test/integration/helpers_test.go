//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"testing"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir        string // BUNDLEKIT_HOME
	StoreDir       string // BUNDLEKIT_STORE, holds bundles/ and repo/
	CredentialsDir string // BUNDLEKIT_CREDENTIALS
	BinDir         string // prepended to PATH for the fake bundle tool
}

// setupTestEnv creates isolated temp directories and sets environment variables
// so every operation is sandboxed. The env vars are restored after the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir:        t.TempDir(),
		StoreDir:       t.TempDir(),
		CredentialsDir: t.TempDir(),
		BinDir:         t.TempDir(),
	}

	t.Setenv("BUNDLEKIT_HOME", env.HomeDir)
	t.Setenv("BUNDLEKIT_STORE", env.StoreDir)
	t.Setenv("BUNDLEKIT_CREDENTIALS", env.CredentialsDir)
	t.Setenv("PATH", env.BinDir+string(os.PathListSeparator)+os.Getenv("PATH"))

	return env
}

// helloManifest returns a bundle.json for helloworld at version with one
// credential and three parameters.
func helloManifest(version string) string {
	return `{
  "name": "helloworld",
  "version": "` + version + `",
  "parameters": {
    "port": {"type": "int", "defaultValue": 8080, "minValue": 1024, "maxValue": 65535},
    "greeting": {"type": "string", "defaultValue": "hello", "maxLength": 20},
    "debug": {"type": "bool", "defaultValue": false}
  },
  "credentials": {"kubeconfig": {"path": "/root/.kube/config"}}
}`
}

// setupStore fills the local store with helloworld 0.1.0, 0.2.0 and latest,
// and caches helloworld 0.1.0 in the repository cache.
func setupStore(t *testing.T, storeDir string) {
	t.Helper()
	for _, v := range []string{"0.1.0", "0.2.0"} {
		writeFile(t, filepath.Join(storeDir, "bundles", "helloworld", v, "bundle.json"), helloManifest(v))
	}
	writeFile(t, filepath.Join(storeDir, "bundles", "helloworld", "latest", "bundle.json"), helloManifest("0.3.0-dev"))
	writeFile(t, filepath.Join(storeDir, "repo", "helloworld", "0.1.0", "bundle.json"), helloManifest("0.1.0"))
}

// setupCredentialSets writes one file per credential set name.
func setupCredentialSets(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, n := range names {
		writeFile(t, filepath.Join(dir, n+".yaml"), "name: "+n+"\ncredentials: []\n")
	}
}

// installFakeTool writes an executable named name into binDir that records
// its arguments, one per line, to <binDir>/<name>.args and exits with code.
func installFakeTool(t *testing.T, binDir, name string, code int) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake bundle tool needs a POSIX shell")
	}
	argsFile := filepath.Join(binDir, name+".args")
	script := "#!/bin/sh\n" +
		"for a in \"$@\"; do printf '%s\\n' \"$a\" >> '" + argsFile + "'; done\n" +
		"echo \"fake $1 done\"\n" +
		"exit " + strconv.Itoa(code) + "\n"
	path := filepath.Join(binDir, name)
	if err := os.WriteFile(path, []byte(script), 0755); err != nil {
		t.Fatalf("writing fake tool: %v", err)
	}
	return argsFile
}

// readArgs returns the arguments recorded by a fake tool.
func readArgs(t *testing.T, argsFile string) []string {
	t.Helper()
	data, err := os.ReadFile(argsFile)
	if err != nil {
		t.Fatalf("reading recorded args: %v", err)
	}
	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertDirExists fails the test if the directory does not exist.
func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected directory to exist: %s (error: %v)", path, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("expected %s to be a directory, but it is a file", path)
	}
}

// assertFileNotExists fails the test if the file exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

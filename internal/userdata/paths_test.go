package userdata

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetHomeRoot_EnvOverride(t *testing.T) {
	t.Setenv("BUNDLEKIT_HOME", "/tmp/test-home")
	root, err := GetHomeRoot()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if root != "/tmp/test-home" {
		t.Errorf("expected /tmp/test-home, got %s", root)
	}
}

func TestGetHomeRoot_Default(t *testing.T) {
	t.Setenv("BUNDLEKIT_HOME", "")
	root, err := GetHomeRoot()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	home, _ := os.UserHomeDir()
	expected := filepath.Join(home, ".bundlekit")
	if root != expected {
		t.Errorf("expected %s, got %s", expected, root)
	}
}

func TestGetBundleStoreRoot(t *testing.T) {
	t.Setenv("BUNDLEKIT_HOME", "/tmp/bk")
	t.Setenv("BUNDLEKIT_STORE", "")
	dir, err := GetBundleStoreRoot()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dir != "/tmp/bk" {
		t.Errorf("expected /tmp/bk, got %s", dir)
	}

	t.Setenv("BUNDLEKIT_STORE", "/srv/bundles")
	dir, err = GetBundleStoreRoot()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dir != "/srv/bundles" {
		t.Errorf("expected /srv/bundles, got %s", dir)
	}
}

func TestGetCredentialsDir(t *testing.T) {
	t.Setenv("BUNDLEKIT_HOME", "/tmp/bk")
	t.Setenv("BUNDLEKIT_CREDENTIALS", "")
	dir, err := GetCredentialsDir()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dir != "/tmp/bk/credentials" {
		t.Errorf("expected /tmp/bk/credentials, got %s", dir)
	}

	t.Setenv("BUNDLEKIT_CREDENTIALS", "/etc/creds")
	dir, err = GetCredentialsDir()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dir != "/etc/creds" {
		t.Errorf("expected /etc/creds, got %s", dir)
	}
}

func TestPermissionConstants(t *testing.T) {
	if DirPermSecure != 0700 {
		t.Errorf("DirPermSecure: expected 0700, got %o", DirPermSecure)
	}
	if FilePermSecure != 0600 {
		t.Errorf("FilePermSecure: expected 0600, got %o", FilePermSecure)
	}
	if DirPermNormal != 0755 {
		t.Errorf("DirPermNormal: expected 0755, got %o", DirPermNormal)
	}
}

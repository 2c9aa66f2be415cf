//go:build integration

package integration_test

import (
	"errors"
	"testing"

	"github.com/bundlekit/bundlekit/internal/bundle"
	"github.com/google/go-cmp/cmp"
)

func TestStoreResolution(t *testing.T) {
	env := setupTestEnv(t)
	setupStore(t, env.StoreDir)
	store := bundle.NewStore(env.StoreDir)

	tests := []struct {
		name        string
		sel         bundle.Selection
		wantVersion string
		wantErr     error
	}{
		{"local pinned", bundle.LocalSelection{Ref: bundle.Ref{Name: "helloworld", Version: "0.1.0"}}, "0.1.0", nil},
		{"local highest", bundle.LocalSelection{Ref: bundle.Ref{Name: "helloworld"}}, "0.2.0", nil},
		{"local missing version", bundle.LocalSelection{Ref: bundle.Ref{Name: "helloworld", Version: "9.9.9"}}, "", bundle.ErrBundleNotFound},
		{"local unknown bundle", bundle.LocalSelection{Ref: bundle.Ref{Name: "nope"}}, "", bundle.ErrBundleNotFound},
		{"repo cached", bundle.RepoSelection{Ref: bundle.Ref{Name: "helloworld", Version: "0.1.0"}}, "0.1.0", nil},
		{"repo not cached", bundle.RepoSelection{Ref: bundle.Ref{Name: "helloworld", Version: "0.2.0"}}, "", bundle.ErrRepoNotCached},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := store.Load(tt.sel)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Load err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if m.Version != tt.wantVersion {
				t.Errorf("Version = %q, want %q", m.Version, tt.wantVersion)
			}
			if len(m.Definitions()) != 3 || !m.HasCredentials() {
				t.Errorf("unexpected manifest contents: %+v", m)
			}
		})
	}
}

func TestStoreList(t *testing.T) {
	env := setupTestEnv(t)
	setupStore(t, env.StoreDir)

	entries, err := bundle.NewStore(env.StoreDir).List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	want := []bundle.Entry{{Name: "helloworld", Versions: []string{"0.2.0", "0.1.0"}}}
	if diff := cmp.Diff(want, entries); diff != "" {
		t.Errorf("List mismatch (-want +got):\n%s", diff)
	}
}

package credentials

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
)

// ExecLister lists credential sets by running the external bundle tool's
// `credentials list` command and reading one name per output line.
type ExecLister struct {
	// Binary is the bundle tool executable, resolved through PATH.
	Binary string
	// Args overrides the default "credentials list" arguments.
	Args []string
}

// ListCredentialSets implements Lister.
func (l *ExecLister) ListCredentialSets(ctx context.Context) ([]string, error) {
	bin, err := exec.LookPath(l.Binary)
	if err != nil {
		return nil, fmt.Errorf("locating %s: %w", l.Binary, err)
	}
	args := l.Args
	if len(args) == 0 {
		args = []string{"credentials", "list"}
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%s %s: %w: %s", l.Binary, strings.Join(args, " "), err, msg)
		}
		return nil, fmt.Errorf("%s %s: %w", l.Binary, strings.Join(args, " "), err)
	}
	return parseCredentialList(stdout.Bytes()), nil
}

// parseCredentialList reads one credential set name per line. Tabular output
// with a NAME header is reduced to its first column.
func parseCredentialList(out []byte) []string {
	names := []string{}
	scanner := bufio.NewScanner(bytes.NewReader(out))
	first := true
	tabular := false
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if first {
			first = false
			if strings.EqualFold(fields[0], "NAME") && len(fields) > 1 {
				tabular = true
				continue
			}
		}
		if tabular {
			names = append(names, fields[0])
			continue
		}
		names = append(names, line)
	}
	return names
}

// DirLister lists credential sets stored as files in a directory. Each
// *.yaml, *.yml or *.json file is one set, named by its base name.
type DirLister struct {
	Dir string
}

// ListCredentialSets implements Lister. A missing directory is a listing
// failure so callers fall back to manual entry.
func (l *DirLister) ListCredentialSets(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(l.Dir)
	if err != nil {
		return nil, fmt.Errorf("reading credential set directory: %w", err)
	}

	seen := make(map[string]bool)
	names := []string{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := filepath.Ext(e.Name())
		switch strings.ToLower(ext) {
		case ".yaml", ".yml", ".json":
		default:
			continue
		}
		name := strings.TrimSuffix(e.Name(), ext)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

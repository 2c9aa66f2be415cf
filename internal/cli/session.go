package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/bundlekit/bundlekit/internal/bundle"
	"github.com/bundlekit/bundlekit/internal/config"
	"github.com/bundlekit/bundlekit/internal/console"
	"github.com/bundlekit/bundlekit/internal/credentials"
	"github.com/bundlekit/bundlekit/internal/form"
	"github.com/bundlekit/bundlekit/internal/logging"
	"github.com/bundlekit/bundlekit/internal/prompt"
	"github.com/bundlekit/bundlekit/internal/tui"
	"github.com/bundlekit/bundlekit/internal/userdata"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// surface is what every prompt renderer provides: the parameter form and
// the two credential prompts.
type surface interface {
	form.Renderer
	credentials.Prompter
}

// session bundles the collaborators one command invocation needs.
type session struct {
	settings config.Settings
	logger   *log.Logger
	store    *bundle.Store
	engine   *prompt.Engine
}

func newSession(cmd *cobra.Command) (*session, error) {
	settings := config.Current()
	if logLevelFlag != "" {
		settings.LogLevel = logLevelFlag
	}
	if rendererFlag != "" {
		settings.Renderer = strings.ToLower(rendererFlag)
	}
	logger := logging.New(cmd.ErrOrStderr(), settings.LogLevel)

	storeRoot, err := userdata.GetBundleStoreRoot()
	if err != nil {
		return nil, fmt.Errorf("resolving bundle store: %w", err)
	}

	surf, err := newSurface(cmd, settings, logger)
	if err != nil {
		return nil, err
	}
	resolver := credentials.NewResolver(newLister(settings), surf,
		credentials.WithListTimeout(settings.ListTimeout),
		credentials.WithLogger(logger))

	return &session{
		settings: settings,
		logger:   logger,
		store:    bundle.NewStore(storeRoot),
		engine:   prompt.NewEngine(surf, resolver, prompt.WithLogger(logger)),
	}, nil
}

// newSurface picks the renderer. Prompts go to stderr so command output on
// stdout stays machine-readable.
func newSurface(cmd *cobra.Command, s config.Settings, logger *log.Logger) (surface, error) {
	in := cmd.InOrStdin()
	useTUI := false
	switch s.Renderer {
	case config.RendererTUI:
		useTUI = true
	case config.RendererLine:
		useTUI = false
	case config.RendererAuto:
		useTUI = in == os.Stdin && tui.IsInputTerminal()
	default:
		return nil, fmt.Errorf("unknown renderer %q: use %s, %s or %s", s.Renderer, config.RendererAuto, config.RendererTUI, config.RendererLine)
	}

	if useTUI {
		logger.Debug("using terminal form renderer", "theme", s.Theme)
		return tui.New(tui.Config{
			Theme:      tui.ParseTheme(s.Theme),
			Accessible: s.Accessible,
			Strict:     s.Strict,
			Output:     os.Stderr,
			Logger:     logger,
		}), nil
	}
	logger.Debug("using line renderer")
	return console.New(in, cmd.ErrOrStderr(),
		console.WithStrict(s.Strict),
		console.WithLogger(logger)), nil
}

func newLister(s config.Settings) credentials.Lister {
	if s.CredentialSource == config.SourceDir {
		return &credentials.DirLister{Dir: s.CredentialsDir}
	}
	return &credentials.ExecLister{Binary: s.BundleTool}
}

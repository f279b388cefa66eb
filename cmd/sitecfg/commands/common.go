package commands

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/sitecfg/internal/config"
	"git.home.luguber.info/inful/sitecfg/internal/logfields"
)

// Global carries state shared by every subcommand.
type Global struct {
	Logger *slog.Logger
	Out    io.Writer
}

// NewGlobal returns a Global writing command output to stdout.
func NewGlobal() *Global {
	return &Global{Logger: slog.Default(), Out: os.Stdout}
}

// CLI definition & global flags.
type CLI struct {
	Config  []string         `short:"c" help:"Declaration file(s), merged in order" default:"sitecfg.yaml" env:"SITECFG_CONFIG" sep:","`
	EnvFile []string         `name:"env-file" help:"Dotenv files used to expand VAR references" default:".env,.env.local" sep:","`
	Root    string           `help:"Project root that srcDir is relative to (default: directory of the first declaration)" type:"path"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Check   CheckCmd   `cmd:"" help:"Load and validate the site configuration"`
	Show    ShowCmd    `cmd:"" help:"Print the resolved site configuration"`
	Init    InitCmd    `cmd:"" help:"Write a starter declaration file"`
	EditURL EditURLCmd `cmd:"" name:"edit-url" help:"Print the edit link for a document"`
	Watch   WatchCmd   `cmd:"" help:"Watch declaration files and reload on change"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// Loader returns a config.Loader honoring --env-file.
func (c *CLI) Loader() *config.Loader {
	l := config.NewLoader()
	l.EnvFiles = c.EnvFile
	return l
}

// ProjectRoot is the directory srcDir is resolved against.
func (c *CLI) ProjectRoot() string {
	if c.Root != "" {
		return c.Root
	}
	if len(c.Config) > 0 {
		return filepath.Dir(c.Config[0])
	}
	return "."
}

// ContentDir is the absolute-or-relative path of cfg's srcDir.
func (c *CLI) ContentDir(cfg *config.SiteConfig) string {
	return filepath.Join(c.ProjectRoot(), cfg.SrcDir)
}

// load resolves the declarations and logs resolution warnings.
func load(g *Global, root *CLI) (*config.SiteConfig, error) {
	cfg, res, err := root.Loader().Load(root.Config...)
	logWarnings(g.Logger, res)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func logWarnings(logger *slog.Logger, res *config.Result) {
	if res == nil {
		return
	}
	for _, w := range res.Warnings {
		logger.Warn(w, logfields.ConfigPaths(res.Sources))
	}
}

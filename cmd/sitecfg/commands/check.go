package commands

import (
	"fmt"
	"log/slog"

	"git.home.luguber.info/inful/sitecfg/internal/config"
	ferrors "git.home.luguber.info/inful/sitecfg/internal/foundation/errors"
	"git.home.luguber.info/inful/sitecfg/internal/logfields"
	"git.home.luguber.info/inful/sitecfg/internal/routes"
)

// CheckCmd implements the 'check' command.
type CheckCmd struct {
	Content bool `help:"Also verify nav and sidebar links against the markdown under srcDir"`
	Strict  bool `help:"Treat dangling links as errors (implies --content)"`
}

func (c *CheckCmd) Run(g *Global, root *CLI) error {
	cfg, err := load(g, root)
	if err != nil {
		return err
	}

	if c.Content || c.Strict {
		if err := c.verifyContent(g, root, cfg); err != nil {
			return err
		}
	}

	_, _ = fmt.Fprintf(g.Out, "configuration OK (fingerprint %s)\n", cfg.Fingerprint())
	return nil
}

func (c *CheckCmd) verifyContent(g *Global, root *CLI, cfg *config.SiteConfig) error {
	dir := root.ContentDir(cfg)
	ix, err := routes.Scan(dir)
	if err != nil {
		return err
	}
	g.Logger.Debug("Indexed content routes", slog.String("dir", dir), slog.Int("routes", len(ix.Routes())))

	dangling := routes.Verify(cfg, ix)
	if len(dangling) == 0 {
		return nil
	}
	if c.Strict {
		return ferrors.WrapError(dangling, ferrors.CategoryRoute, "navigation links do not resolve").
			WithContext("dir", dir).
			WithContext("errors", len(dangling)).
			Build()
	}
	for _, e := range dangling {
		g.Logger.Warn(e.Message, logfields.Field(e.Field), logfields.Rule(string(e.Rule)), slog.String("link", e.Value))
	}
	return nil
}

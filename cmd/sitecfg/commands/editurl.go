package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	ferrors "git.home.luguber.info/inful/sitecfg/internal/foundation/errors"
)

// EditURLCmd implements the 'edit-url' command.
type EditURLCmd struct {
	Path string `arg:"" help:"Document path, relative to srcDir or prefixed with it"`
}

func (e *EditURLCmd) Run(g *Global, root *CLI) error {
	cfg, err := load(g, root)
	if err != nil {
		return err
	}

	rel := filepath.ToSlash(filepath.Clean(e.Path))
	if src := filepath.ToSlash(filepath.Clean(cfg.SrcDir)); src != "." {
		rel = strings.TrimPrefix(rel, src+"/")
	}

	u := cfg.EditURL(rel)
	if u == "" {
		if cfg.ThemeConfig.EditLink == nil {
			return ferrors.ConfigError("edit links are disabled (themeConfig.editLink is not set)").Build()
		}
		return ferrors.ValidationError("document path is empty").WithContext("path", e.Path).Build()
	}
	_, _ = fmt.Fprintln(g.Out, u)
	return nil
}

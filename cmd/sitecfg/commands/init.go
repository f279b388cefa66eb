package commands

import (
	"fmt"
	"path/filepath"

	"git.home.luguber.info/inful/sitecfg/internal/config"
	"git.home.luguber.info/inful/sitecfg/internal/editlink"
	"git.home.luguber.info/inful/sitecfg/internal/logfields"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force  bool   `help:"Overwrite existing declaration file"`
	Title  string `help:"Site title"`
	SrcDir string `name:"src-dir" help:"Markdown content directory" default:"docs"`
	NoGit  bool   `name:"no-git" help:"Do not derive an edit link from the git remote"`
}

func (i *InitCmd) Run(g *Global, root *CLI) error {
	path := root.Config[0]
	hints := config.ExampleHints{Title: i.Title, SrcDir: i.SrcDir}

	if !i.NoGit {
		s, err := editlink.Suggest(filepath.Dir(path), i.SrcDir)
		if err != nil {
			g.Logger.Debug("No edit link suggestion", logfields.Error(err))
		} else {
			g.Logger.Info("Derived edit link from git remote",
				"forge", string(s.Forge), "branch", s.Branch, "pattern", s.Pattern)
			hints.EditPattern = s.Pattern
			if s.Forge == editlink.ForgeGitHub {
				hints.RepoURL = s.RepoURL
			}
		}
	}

	_, _ = fmt.Fprintf(g.Out, "Writing configuration to %s\n", path)
	if err := config.WriteExample(path, i.Force, hints); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(g.Out, "initialized successfully")
	return nil
}

package commands

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/sitecfg/internal/config"
	ferrors "git.home.luguber.info/inful/sitecfg/internal/foundation/errors"
)

// ShowCmd implements the 'show' command.
type ShowCmd struct {
	Format string `short:"f" help:"Output format" enum:"yaml,json" default:"yaml"`
}

// shown is the JSON envelope printed by 'show --format json'.
type shown struct {
	Fingerprint string             `json:"fingerprint"`
	Config      *config.SiteConfig `json:"config"`
}

func (s *ShowCmd) Run(g *Global, root *CLI) error {
	cfg, err := load(g, root)
	if err != nil {
		return err
	}
	fp := cfg.Fingerprint()

	switch s.Format {
	case "json":
		enc := json.NewEncoder(g.Out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(shown{Fingerprint: fp, Config: cfg}); err != nil {
			return ferrors.WrapError(err, ferrors.CategoryInternal, "encode configuration").Build()
		}
	default:
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return ferrors.WrapError(err, ferrors.CategoryInternal, "encode configuration").Build()
		}
		_, _ = fmt.Fprintf(g.Out, "# fingerprint: %s\n%s", fp, data)
	}
	return nil
}

package main

import (
	"fmt"
	"path/filepath"

	"github.com/fwojciec/unitdoc"
	"github.com/fwojciec/unitdoc/goldmark"
	"github.com/fwojciec/unitdoc/goquery"
	unitslog "github.com/fwojciec/unitdoc/slog"
	"github.com/fwojciec/unitdoc/yaml"
)

// Run executes the check command.
func (c *CheckCmd) Run(deps *Dependencies) error {
	cfg, err := yaml.LoadConfig(c.Config)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", unitdoc.ErrorMessage(err))
		return err
	}

	outDir := filepath.Clean(c.Output)
	return checkLinks(deps, outDir, filepath.Join(filepath.Dir(outDir), cfg.Reference))
}

// checkLinks checks the portal in outDir and the reference at refPath and
// prints every broken link. It fails when any link is broken.
func checkLinks(deps *Dependencies, outDir, refPath string) error {
	checks := []struct {
		checker unitdoc.LinkChecker
		path    string
	}{
		{unitslog.NewLoggingLinkChecker(goquery.NewChecker(), "html", deps.Logger), outDir},
		{unitslog.NewLoggingLinkChecker(goldmark.NewChecker(), "markdown", deps.Logger), refPath},
	}

	var broken []unitdoc.BrokenLink
	for _, check := range checks {
		links, err := check.checker.CheckLinks(deps.Ctx, check.path)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", unitdoc.ErrorMessage(err))
			return err
		}
		broken = append(broken, links...)
	}

	for _, link := range broken {
		fmt.Fprintf(deps.Stdout, "broken link: %s\n", link)
	}
	if len(broken) > 0 {
		return fmt.Errorf("%d broken links", len(broken))
	}

	fmt.Fprintln(deps.Stdout, "All links OK")
	return nil
}

package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/Hussla/Recipe-Ingredient-Catalogue-sub001/internal/shell"
)

// RunCommand creates the script execution command.
func RunCommand() *cli.Command {
	return &cli.Command{
		Name:      "run",
		Usage:     "execute command script files",
		ArgsUsage: "FILE...",
		Action:    runScripts,
	}
}

func runScripts(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("run: at least one script file required")
	}

	cfg := Configuration(c)
	log := Log(c)
	sh, err := shell.New(cfg, log)
	if err != nil {
		return err
	}

	for _, path := range c.Args().Slice() {
		log.Info("running script", "file", path)
		if err := sh.RunScript(path); err != nil {
			return err
		}
	}
	return nil
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pyimports/pkg/config"
	"github.com/matzehuels/pyimports/pkg/errors"
)

// registryCommand creates the registry command for inspecting the
// package classification tables, including any config file overrides.
func (c *CLI) registryCommand() *cobra.Command {
	var configPath string
	var list string

	cmd := &cobra.Command{
		Use:   "registry",
		Short: "Inspect the package classification registry",
		Long: `Inspect the package classification registry.

Shows the stdlib and third-party table sizes after applying any config
file overrides. Use --list to print the members of one table.

Examples:
  pyimports registry
  pyimports registry --list stdlib
  pyimports registry --config pyimports.toml --list third-party`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRegistry(configPath, list)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "config file (defaults to ./pyimports.toml if present)")
	cmd.Flags().StringVar(&list, "list", "", "list table members: stdlib or third-party")

	return cmd
}

func (c *CLI) runRegistry(configPath, list string) error {
	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.Load(configPath)
	} else {
		cfg, err = config.LoadOrDefault(config.DefaultFileName)
	}
	if err != nil {
		return err
	}

	reg := cfg.NewHelper().Registry()

	switch list {
	case "":
		fmt.Println(StyleTitle.Render("Package registry"))
		printKeyValue("stdlib", fmt.Sprintf("%d modules", reg.CountStdlib()))
		printKeyValue("third-party", fmt.Sprintf("%d packages", reg.CountThirdParty()))
		if cfg.Local.PackageName != "" {
			printKeyValue("local package", cfg.Local.PackageName)
		}
		for _, prefix := range cfg.Local.Prefixes {
			printKeyValue("local prefix", prefix)
		}
	case "stdlib":
		for _, name := range reg.StdlibModules() {
			fmt.Println(name)
		}
	case "third-party":
		for _, name := range reg.ThirdPartyPackages() {
			fmt.Println(name)
		}
	default:
		return errors.New(errors.ErrCodeInvalidInput, "unknown table %q (expected stdlib or third-party)", list)
	}
	return nil
}

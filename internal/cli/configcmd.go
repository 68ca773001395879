package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/phanxgames/infinicanvas/internal/config"
)

func configCmd(g *globalFlags) *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := g.configPath
			if path == "" {
				path = config.DefaultPath()
			}
			cfg, _, err := g.setup()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if write {
				if err := cfg.Save(path); err != nil {
					return err
				}
				fmt.Fprintf(w, "  %s wrote %s\n", statusIcon(true), path)
				return nil
			}
			fmt.Fprintln(w, Subtle.Sprint("# "+path))
			return toml.NewEncoder(w).Encode(cfg)
		},
	}

	cmd.Flags().BoolVar(&write, "write", false, "write the effective config back to the config path")
	return cmd
}

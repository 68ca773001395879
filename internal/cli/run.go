package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/phanxgames/infinicanvas"
)

func runCmd(g *globalFlags) *cobra.Command {
	var (
		scriptPath string
		showFPS    bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open the canvas in a window",
		Long:  "Open a desktop window showing the seed board. Drag empty space to pan, drag a node to move it, scroll to zoom.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, b, err := g.setup()
			if err != nil {
				return err
			}

			rc := infinicanvas.RunConfig{
				Title:     cfg.Window.Title,
				Width:     cfg.Window.Width,
				Height:    cfg.Window.Height,
				ShowFPS:   cfg.Window.ShowFPS || showFPS,
				Resizable: cfg.Window.Resizable,
				Options:   cfg.EngineOptions(),
				Setup: func(e *infinicanvas.Engine) error {
					b.Apply(e)
					return nil
				},
			}
			if scriptPath != "" {
				data, err := os.ReadFile(scriptPath)
				if err != nil {
					return err
				}
				if rc.Script, err = infinicanvas.LoadScript(data); err != nil {
					return err
				}
			}
			return infinicanvas.Run(rc)
		},
	}

	cmd.Flags().StringVar(&scriptPath, "script", "", "replay a JSON input script in the window")
	cmd.Flags().BoolVar(&showFPS, "fps", false, "show the FPS/TPS readout")
	return cmd
}

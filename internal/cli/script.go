package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/phanxgames/infinicanvas"
)

// maxScriptFrames bounds a headless replay so a runaway wait cannot hang.
const maxScriptFrames = 100_000

func scriptCmd(g *globalFlags) *cobra.Command {
	var (
		outDir        string
		width, height int
	)

	cmd := &cobra.Command{
		Use:   "script <script.json>",
		Short: "Replay scripted input headlessly and write snapshot PNGs",
		Long: "Replay a JSON input script against the board without a window. " +
			"Every snapshot step writes <out-dir>/<NN>-<label>.png.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			runner, err := infinicanvas.LoadScript(data)
			if err != nil {
				return err
			}
			cfg, b, err := g.setup()
			if err != nil {
				return err
			}
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("create out dir: %w", err)
			}

			s, e, err := newHeadless(cfg, b, width, height)
			if err != nil {
				return err
			}
			defer s.Close()

			hub := infinicanvas.NewInputHub()
			frames := infinicanvas.NewFrameQueue()
			detach := infinicanvas.Attach(e, hub, frames)
			defer detach()

			w := cmd.OutOrStdout()
			banner(w, "replaying "+filepath.Base(args[0]))

			var written []string
			snap := func(label string) error {
				e.DrawFrame()
				if err := s.Err(); err != nil {
					return err
				}
				name := fmt.Sprintf("%02d-%s.png", len(written)+1, safeLabel(label))
				path := filepath.Join(outDir, name)
				if err := s.SavePNG(path); err != nil {
					return err
				}
				written = append(written, path)
				fmt.Fprintf(w, "  %s %s\n", statusIcon(true), path)
				return nil
			}

			n, err := infinicanvas.RunScript(runner, e, hub, frames, snap, 1.0/60, maxScriptFrames)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "\n  %d frames · %d snapshots\n", n, len(written))
			return nil
		},
	}

	cmd.Flags().StringVar(&outDir, "out-dir", "snapshots", "directory for snapshot PNGs")
	cmd.Flags().IntVar(&width, "width", 800, "image width in pixels")
	cmd.Flags().IntVar(&height, "height", 600, "image height in pixels")
	return cmd
}

// safeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "snapshot" for empty labels.
func safeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "snapshot"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

// Command sr3d renders a Wavefront OBJ mesh to a 24-bit BMP file.
//
// Usage:
//
//	sr3d render model.obj --width 800 --height 600 \
//	    --scale 300,300,300 --translate 400,300,0 --out model.bmp
//	sr3d render --config job.toml
//	sr3d verify model.bmp
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "sr3d",
		Short:        "Flat-shaded software rasterizer for OBJ meshes",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			setupLogging(cmd.ErrOrStderr(), level)
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newRenderCmd(), newVerifyCmd())
	return root
}

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/image/bmp"

	"github.com/gogpu/sr3d"
)

var errSizeMismatch = errors.New("file size does not match header")

func newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify file.bmp",
		Short: "Check that a BMP file written by render is well formed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(cmd.OutOrStdout(), args[0])
		},
	}
}

// runVerify decodes the header of a BMP and checks the file length against
// it. Images whose rows need no 4-byte padding are also fully decoded;
// render writes unpadded rows, which standard readers only accept when
// width*3 is a multiple of 4.
func runVerify(out io.Writer, path string) error {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("verify: %w", err)
	}

	cfg, err := bmp.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("verify: %s: %w", path, err)
	}
	if want := sr3d.BMPSize(cfg.Width, cfg.Height); len(data) != want {
		return fmt.Errorf("verify: %s: %w: %d bytes, want %d", path, errSizeMismatch, len(data), want)
	}

	decoded := "header only"
	if cfg.Width*3%4 == 0 {
		if _, err := bmp.Decode(bytes.NewReader(data)); err != nil {
			return fmt.Errorf("verify: %s: %w", path, err)
		}
		decoded = "pixels decoded"
	}

	_, err = fmt.Fprintf(out, "%s: %dx%d, %d bytes, %s\n", path, cfg.Width, cfg.Height, len(data), decoded)
	return err
}

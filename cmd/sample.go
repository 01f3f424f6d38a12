package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/kozaktomas/color-season/internal/sampler"
	"github.com/spf13/cobra"
)

var sampleCmd = &cobra.Command{
	Use:   "sample <image> <x> <y>",
	Short: "Print the color of a single pixel",
	Long: `Read the pixel at (x, y) from an image and print it as "#rrggbb".
Supported formats: png, jpeg, gif, bmp, tiff, webp.

When --display-width and --display-height are set, (x, y) is taken as a
point on the image shown at that size and scaled to the natural size.

Example:
  color-season sample portrait.jpg 120 340
  color-season sample portrait.jpg 60 170 --display-width 400 --display-height 600`,
	Args: cobra.ExactArgs(3),
	RunE: runSample,
}

func init() {
	rootCmd.AddCommand(sampleCmd)

	sampleCmd.Flags().Float64("display-width", 0, "Width the image is displayed at")
	sampleCmd.Flags().Float64("display-height", 0, "Height the image is displayed at")
}

func runSample(cmd *cobra.Command, args []string) error {
	x, err := strconv.ParseFloat(args[1], 64)
	if err != nil || !sampler.ValidCoordinate(x) {
		return fmt.Errorf("invalid x coordinate %q", args[1])
	}
	y, err := strconv.ParseFloat(args[2], 64)
	if err != nil || !sampler.ValidCoordinate(y) {
		return fmt.Errorf("invalid y coordinate %q", args[2])
	}

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening image: %w", err)
	}
	defer f.Close()

	img, _, err := sampler.Decode(f)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", args[0], err)
	}

	p, err := sampler.ScalePoint(x, y, mustGetFloat64(cmd, "display-width"), mustGetFloat64(cmd, "display-height"), img.Bounds())
	if err != nil {
		return err
	}
	c, err := sampler.Canvas{}.SamplePixel(img, p.X, p.Y)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), sampler.Hex(c))
	return nil
}

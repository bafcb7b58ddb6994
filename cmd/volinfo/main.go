// Command volinfo inspects a volume transfer buffer and optionally dumps a
// windowed slice as PNG.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"strings"

	"volview/internal/render"
	"volview/internal/volume"
)

func main() {
	in := flag.String("in", "", "Path to volume transfer buffer")
	orient := flag.String("o", "axial", "Slice orientation (axial, coronal, sagittal)")
	index := flag.Int("i", -1, "Slice index (-1 for middle)")
	center := flag.Float64("c", render.DefaultCenter, "Window center")
	width := flag.Float64("w", render.DefaultWidth, "Window width")
	out := flag.String("png", "", "Write the selected slice to this PNG file")
	flag.Parse()

	if *in == "" {
		fmt.Println("Usage: volinfo -in <buffer> [-o axial|coronal|sagittal] [-i <idx>] [-c <center>] [-w <width>] [-png <file>]")
		os.Exit(1)
	}

	buf, err := os.ReadFile(*in)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	vol, err := volume.Decode(buf)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	d, h, w := vol.Dims()
	stats := volume.ComputeStats(vol)
	autoC, autoW := stats.AutoWindow()

	fmt.Printf("Dimensions:  %d x %d x %d (depth x height x width)\n", d, h, w)
	fmt.Printf("Samples:     %d\n", vol.Len())
	fmt.Printf("Intensity:   min=%.1f max=%.1f p1=%.1f p99=%.1f\n",
		stats.Min, stats.Max, stats.P1, stats.P99)
	fmt.Printf("Auto window: center=%.1f width=%.1f\n", autoC, autoW)

	o, err := parseOrientation(*orient)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	count := volume.SliceCount(vol, o)
	idx := *index
	if idx < 0 {
		idx = count / 2
	}
	idx = volume.ClampIndex(vol, o, idx)
	fmt.Printf("%s slices:  %d (showing %d)\n", o, count, idx)

	if *out == "" {
		return
	}

	plane, pw, ph, err := volume.ExtractSlice(vol, o, idx)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	img := render.Composite(plane, nil, pw, ph, render.NewWindow(*center, *width))
	f, err := os.Create(*out)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s (%dx%d)\n", *out, pw, ph)
}

func parseOrientation(name string) (volume.Orientation, error) {
	for _, o := range volume.Orientations {
		if strings.EqualFold(o.String(), name) {
			return o, nil
		}
	}
	return 0, fmt.Errorf("unknown orientation %q", name)
}

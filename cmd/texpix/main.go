package main

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/DataDog/zstd"
	"github.com/urfave/cli/v2"
	"golang.org/x/image/bmp"

	"github.com/orbitools/texpix/texpix"
)

func main() {
	app := cli.NewApp()

	app.Name = "texpix"
	app.Usage = "decode raw GPU texture payloads to images"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "increase verbosity",
		},
	}

	dimFlags := []cli.Flag{
		&cli.StringFlag{
			Name:     "format",
			Usage:    "pixel format tag (e.g. RGBA32, DXT1, BC7)",
			Required: true,
		},
		&cli.IntFlag{
			Name:     "width",
			Required: true,
		},
		&cli.IntFlag{
			Name:     "height",
			Required: true,
		},
		&cli.IntFlag{
			Name:  "mips",
			Value: 1,
			Usage: "mip level count in the payload",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:      "decode",
			Usage:     "Decode a texture payload into a PNG or BMP image",
			ArgsUsage: "PAYLOAD OUTPUT",
			Flags: append([]cli.Flag{
				&cli.IntFlag{
					Name:  "mip",
					Value: 0,
					Usage: "mip level to decode",
				},
			}, dimFlags...),
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				logger := newLogger(c.Bool("verbose"))

				format, err := texpix.ParseFormat(c.String("format"))
				if err != nil {
					return cli.Exit(err, 1)
				}

				data, err := readPayload(c.Args().Get(0))
				if err != nil {
					return cli.Exit(err, 1)
				}
				logger.Printf("payload: %d bytes of %s", len(data), format)

				src, err := texpix.New(format, data, c.Int("width"), c.Int("height"), c.Int("mips"))
				if err != nil {
					return cli.Exit(err, 1)
				}

				if err := writeImage(src, c.Int("mip"), c.Args().Get(1)); err != nil {
					return cli.Exit(err, 1)
				}
				return nil
			},
		},
		{
			Name:      "info",
			Usage:     "Report per-mip dimensions and the exact payload size",
			ArgsUsage: "",
			Flags:     dimFlags,
			Action: func(c *cli.Context) error {
				format, err := texpix.ParseFormat(c.String("format"))
				if err != nil {
					return cli.Exit(err, 1)
				}

				w, h, mips := c.Int("width"), c.Int("height"), c.Int("mips")
				total, err := texpix.DataSize(format, w, h, mips)
				if err != nil {
					return cli.Exit(err, 1)
				}

				fmt.Printf("%s %dx%d, %d mips: %d bytes\n", format, w, h, mips, total)
				for m := 0; m < mips; m++ {
					mw, mh := w>>m, h>>m
					if mw < 1 {
						mw = 1
					}
					if mh < 1 {
						mh = 1
					}
					fmt.Printf("  mip %d: %dx%d\n", m, mw, mh)
				}
				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newLogger(verbose bool) *log.Logger {
	logger := log.New(io.Discard, "", 0)
	if verbose {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

// readPayload loads a raw texture payload, transparently decompressing
// zstd-packed payloads (asset pipelines commonly ship texture data that way).
func readPayload(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if strings.EqualFold(filepath.Ext(path), ".zst") {
		return zstd.Decompress(nil, data)
	}
	return data, nil
}

func writeImage(src texpix.PixelSource, mip int, path string) error {
	w, h, err := src.MipSize(mip)
	if err != nil {
		return err
	}
	pix, err := src.Pixels32(mip)
	if err != nil {
		return err
	}

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i, c := range pix {
		img.Pix[i*4+0] = c.R
		img.Pix[i*4+1] = c.G
		img.Pix[i*4+2] = c.B
		img.Pix[i*4+3] = c.A
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".bmp":
		return bmp.Encode(f, img)
	default:
		return png.Encode(f, img)
	}
}

package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"log"
	"os"
	"sort"
	"time"

	"github.com/disintegration/imaging"
	"github.com/tristanphease/fun-images/utils"
	"golang.org/x/term"
)

const banner = `
┌─┐┬ ┬┌┐┌  ┬┌┬┐┌─┐┌─┐┌─┐┌─┐
├┤ │ ││││  ││││├─┤│ ┬├┤ └─┐
└  └─┘┘└┘  ┴┴ ┴┴ ┴└─┘└─┘└─┘

Procedural image generators.
    Version: %s
`

// Version indicates the current build version.
var Version string

// result holds either a still image or the frames of an animation.
type result struct {
	still  image.Image
	frames []image.Image
	// summary is logged after a successful run.
	summary string
}

// generator registers its flags and returns the function rendering with them.
type generator struct {
	name       string
	usage      string
	defaultOut string
	setup      func(fs *flag.FlagSet) func() (*result, error)
}

var generators = map[string]generator{}

func register(g generator) {
	generators[g.name] = g
}

func main() {
	log.SetFlags(0)

	if len(os.Args) < 2 {
		usage(os.Stderr)
		os.Exit(2)
	}
	switch os.Args[1] {
	case "-h", "-help", "--help", "help":
		usage(os.Stdout)
		return
	case "-v", "version":
		fmt.Println(Version)
		return
	}

	gen, ok := generators[os.Args[1]]
	if !ok {
		usage(os.Stderr)
		log.Fatalf("Unknown generator: %s", utils.ErrorStyle.Render(os.Args[1]))
	}

	var (
		destination string
		upscale     int
	)
	fs := flag.NewFlagSet(gen.name, flag.ContinueOnError)
	fs.StringVar(&destination, "out", gen.defaultOut, "Destination image, - for stdout")
	fs.IntVar(&upscale, "upscale", 1, "Nearest neighbour upscale factor of the output")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: funimg %s [flags]\n\n%s\n\n", gen.name, gen.usage)
		fs.PrintDefaults()
	}
	render := gen.setup(fs)

	if err := fs.Parse(os.Args[2:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		os.Exit(2)
	}
	if err := checkDestination(destination); err != nil {
		log.Fatalf("Invalid output: %s", utils.ErrorStyle.Render(err.Error()))
	}

	start := time.Now()

	// Progress indicator
	ind := utils.NewProgressIndicator(fmt.Sprintf("Generating %s...", gen.name), time.Millisecond*100)
	ind.Start()

	res, err := render()
	if err != nil {
		ind.Fail("failed")
		log.Fatalf("Generation error: %s", utils.ErrorStyle.Render(err.Error()))
	}
	if err := write(destination, upscale, res); err != nil {
		ind.Fail("failed")
		log.Fatalf("Error writing the output: %s", utils.ErrorStyle.Render(err.Error()))
	}
	ind.Done("finished")

	if res.summary != "" {
		log.Print(utils.MutedStyle.Render(res.summary))
	}
	if destination != utils.PipeName {
		log.Printf("Saved to %s", utils.SuccessStyle.Render(destination))
	}
	log.Printf("Execution time: %s", utils.SuccessStyle.Render(fmt.Sprintf("%.2fs", time.Since(start).Seconds())))
}

// checkDestination rejects writing binary data to an interactive terminal.
func checkDestination(dst string) error {
	if dst == "" {
		return errors.New("missing output destination")
	}
	if dst == utils.PipeName && term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("`-` should be used with a pipe for stdout")
	}
	return nil
}

func write(dst string, upscale int, res *result) error {
	if res.frames != nil {
		frames := make([]image.Image, len(res.frames))
		for i, f := range res.frames {
			frames[i] = utils.Upscale(f, upscale)
		}
		if dst == utils.PipeName {
			return utils.WriteAnimation(os.Stdout, frames)
		}
		return utils.SaveAnimation(dst, frames)
	}

	img := utils.Upscale(res.still, upscale)
	if dst == utils.PipeName {
		return utils.EncodeImage(os.Stdout, img, imaging.PNG)
	}
	return utils.SaveImage(dst, img)
}

func usage(w io.Writer) {
	fmt.Fprint(w, utils.BannerStyle.Render(fmt.Sprintf(banner, Version)))
	fmt.Fprint(w, "\n\nUsage: funimg <generator> [flags]\n\nGenerators:\n")

	names := make([]string, 0, len(generators))
	for name := range generators {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "  %-12s %s\n", name, generators[name].usage)
	}
	fmt.Fprint(w, "\nRun 'funimg <generator> -h' for the generator flags.\n")
}

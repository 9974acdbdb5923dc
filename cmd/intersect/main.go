package main

import (
	"fmt"
	"io"
	"os"

	"deedles.dev/xiter"
	"github.com/charmbracelet/log"
	"github.com/logrusorgru/aurora"
	"github.com/osuushi/intersect/dbg"
	"github.com/osuushi/intersect/scene"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Reports which shapes in a scene file intersect. The scene is an SVG or YAML
// file, chosen by extension, or YAML on stdin when the path is "-".
//
// Every pair is printed with its verdict, unless --hits is given. With --png,
// the scene is drawn with intersecting shapes in red.
var (
	app = kingpin.New("intersect", "Report which shapes in a scene intersect.")

	scenePath = app.Arg("scene", "SVG or YAML scene, or - for YAML on stdin.").Default("-").String()
	hitsOnly  = app.Flag("hits", "Only print intersecting pairs.").Bool()
	matrix    = app.Flag("matrix", "Print the full intersection matrix instead of pairs.").Bool()
	dump      = app.Flag("dump", "Print the scene back out as YAML.").Bool()
	pngPath   = app.Flag("png", "Draw the scene to this PNG file.").String()
	show      = app.Flag("imgcat", "Show the drawing in the terminal (implies --png).").Bool()
	scale     = app.Flag("scale", "Pixels per scene unit in the drawing.").Default("4").Float64()
	verbose   = app.Flag("verbose", "Log more.").Short('v').Bool()
	noColor   = app.Flag("no-color", "Don't color the output.").Bool()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "intersect",
	})
	if *verbose {
		logger.SetLevel(log.DebugLevel)
	}

	if err := run(logger, os.Stdin, os.Stdout); err != nil {
		logger.Error("failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *log.Logger, stdin io.Reader, stdout io.Writer) error {
	s, err := readScene(*scenePath, stdin)
	if err != nil {
		return err
	}
	logger.Debug("loaded scene", "path", *scenePath, "shapes", len(s.Shapes), "bounds", s.Bounds())

	if *dump {
		return s.EncodeYAML(stdout)
	}

	au := aurora.NewAurora(!*noColor)
	if *matrix {
		printMatrix(stdout, au, s)
	} else {
		printPairs(stdout, au, s)
	}

	if *show && *pngPath == "" {
		*pngPath = "intersect.png"
	}
	if *pngPath == "" {
		return nil
	}
	if err := dbg.Draw(*pngPath, s.Shapes, s.Hit(), *scale); err != nil {
		return err
	}
	logger.Info("drew scene", "path", *pngPath)
	if *show {
		return dbg.Show(*pngPath, stdout)
	}
	return nil
}

func readScene(path string, stdin io.Reader) (*scene.Scene, error) {
	if path != "-" {
		return scene.Load(path)
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, errors.Wrap(err, "read stdin")
	}
	return scene.ParseYAML(data)
}

func printPairs(w io.Writer, au aurora.Aurora, s *scene.Scene) {
	hits := 0
	for i, pair := range xiter.Enumerate(s.Pairs()) {
		hit := pair.Intersects()
		if hit {
			hits++
		} else if *hitsOnly {
			continue
		}
		verdict := au.Green("clear")
		if hit {
			verdict = au.Red("hit")
		}
		fmt.Fprintf(w, "%4d  %s %s  %s\n", i, dbg.Label(pair.A), dbg.Label(pair.B), au.Bold(verdict))
	}
	fmt.Fprintf(w, "%d shapes, %d intersecting pairs\n", len(s.Shapes), hits)
}

func printMatrix(w io.Writer, au aurora.Aurora, s *scene.Scene) {
	for i, row := range s.Matrix() {
		fmt.Fprintf(w, "%-20s", dbg.Label(s.Shapes[i]))
		for _, hit := range row {
			if hit {
				fmt.Fprint(w, " ", au.Red("x"))
			} else {
				fmt.Fprint(w, " ", au.Faint("."))
			}
		}
		fmt.Fprintln(w)
	}
}

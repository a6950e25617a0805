package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/alastairdglennie/detect-collisions/internal/demo"
	"github.com/alastairdglennie/detect-collisions/scene"
	"golang.org/x/term"
)

func main() {
	scenePath := flag.String("scene", "", "YAML scene file; random bodies when empty")
	count := flag.Int("bodies", 20, "number of random bodies when no scene is given")
	seed := flag.Int64("seed", 0, "random scene seed; 0 means time-based")
	boxes := flag.Bool("boxes", false, "also draw padded bounding boxes")
	flag.Parse()

	opts := demo.Options{Count: *count, Seed: *seed, ShowBoxes: *boxes}
	if *scenePath != "" {
		bodies, err := scene.Load(*scenePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load scene: %v\n", err)
			os.Exit(1)
		}
		opts.Bodies = bodies
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	reader := bufio.NewReader(os.Stdin)
	if err := demo.Run(reader, os.Stdout, opts); err != nil {
		fmt.Fprintf(os.Stderr, "demo error: %v\n", err)
		os.Exit(1)
	}
}

// Package demo runs an interactive terminal demo of the collision system:
// bodies drift inside a box, the spatial index is refit every frame, and
// colliding pairs are separated and bounced using the overlap normal.
package demo

import (
	"bufio"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	collisions "github.com/alastairdglennie/detect-collisions"
	"github.com/alastairdglennie/detect-collisions/draw"
)

const targetFPS = 30
const targetFrameTime = time.Second / targetFPS

// Logical world dimensions. Bodies use these coordinates; rendering
// scales to the actual terminal size.
const (
	worldWidth  = 120.0
	worldHeight = 80.0
)

// Options configures a demo run.
type Options struct {
	// TermSizeFunc reports terminal dimensions; defaults to reading from
	// stdout. The SSH server passes one fed by PTY window-change events.
	TermSizeFunc draw.TermSizeFunc

	// Bodies to simulate. When empty, a random scene of Count bodies is
	// generated.
	Bodies []collisions.Body

	// Count of random bodies when Bodies is empty. Defaults to 20.
	Count int

	// Seed for the random scene. Zero means time-based.
	Seed int64

	// ShowBoxes also draws each body's padded bounding box.
	ShowBoxes bool
}

// Run starts the demo loop and blocks until the user quits (q, Esc, or
// Ctrl-C) or the reader closes.
func Run(r *bufio.Reader, w io.Writer, opts Options) error {
	sizeFunc := opts.TermSizeFunc
	if sizeFunc == nil {
		sizeFunc = draw.DefaultTermSizeFunc
	}

	bodies := opts.Bodies
	if len(bodies) == 0 {
		count := opts.Count
		if count <= 0 {
			count = 20
		}
		bodies = randomScene(count, opts.Seed)
	}

	system := collisions.NewSystem()
	vel := make(map[collisions.Body]collisions.Vector, len(bodies))
	for _, b := range bodies {
		if err := system.Insert(b); err != nil {
			return err
		}
		vel[b] = randomVelocity(b.ID())
	}

	quit := watchQuit(r)

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)

	termWidth, termHeight, err := sizeFunc()
	if err != nil {
		return err
	}
	canvas := draw.NewCanvas(termWidth, termHeight, worldWidth, worldHeight)

	lastTime := time.Now()
	for !quit.Load() {
		frameStart := time.Now()
		dt := frameStart.Sub(lastTime).Seconds()
		lastTime = frameStart

		if newW, newH, err := sizeFunc(); err == nil && (newW != termWidth || newH != termHeight) {
			termWidth, termHeight = newW, newH
			canvas.Resize(termWidth, termHeight)
		}

		contacts := step(system, vel, dt)

		draw.ClearScreen(w)
		canvas.Clear()
		for _, b := range system.Bodies() {
			draw.Trace(b, canvas)
			if opts.ShowBoxes {
				draw.TraceBBox(b, canvas)
			}
		}
		canvas.Render(w)
		draw.WriteAt(w, 1, 1, fmt.Sprintf("bodies: %d  contacts: %d  [q] quit", system.Count(), contacts/2))

		if elapsed := time.Since(frameStart); elapsed < targetFrameTime {
			time.Sleep(targetFrameTime - elapsed)
		}
	}

	draw.ClearScreen(w)
	return nil
}

// step advances the simulation one frame: integrate, bounce off walls,
// refit the index, then resolve every colliding pair. It returns the
// number of contact reports (each pair counts twice).
func step(system *collisions.System, vel map[collisions.Body]collisions.Vector, dt float64) int {
	for _, b := range system.Bodies() {
		v := vel[b]
		b.Move(v.X*dt, v.Y*dt)

		// Bounce the padded box off the world edges.
		box := b.BBox()
		if box.MinX < 0 && v.X < 0 || box.MaxX > worldWidth && v.X > 0 {
			v.X = -v.X
		}
		if box.MinY < 0 && v.Y < 0 || box.MaxY > worldHeight && v.Y > 0 {
			v.Y = -v.Y
		}
		vel[b] = v
	}

	system.Update()

	contacts := 0
	system.CheckAll(func(resp *collisions.Response) {
		contacts++
		// Each pair is reported from both sides; act on one ordering.
		if resp.A.ID() > resp.B.ID() {
			return
		}
		resolve(resp, vel)
	})
	return contacts
}

// resolve pushes the pair apart along the overlap vector and reflects the
// velocity components that point into the contact.
func resolve(resp *collisions.Response, vel map[collisions.Body]collisions.Vector) {
	half := resp.OverlapV.Scale(0.5)
	resp.A.Move(-half.X, -half.Y)
	resp.B.Move(half.X, half.Y)

	n := resp.OverlapN
	va := vel[resp.A]
	vb := vel[resp.B]

	// Relative velocity along the normal; skip pairs already separating.
	rel := va.Sub(vb).Dot(n)
	if rel <= 0 {
		return
	}
	impulse := n.Scale(rel)
	vel[resp.A] = va.Sub(impulse)
	vel[resp.B] = vb.Add(impulse)
}

// watchQuit reads input in a goroutine and flips the returned flag on
// q, Esc, or Ctrl-C, or when the reader closes.
func watchQuit(r *bufio.Reader) *atomic.Bool {
	quit := new(atomic.Bool)
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				quit.Store(true)
				return
			}
			switch b {
			case 'q', 'Q', 3, 27: // q, Ctrl-C, Esc
				quit.Store(true)
				return
			}
		}
	}()
	return quit
}

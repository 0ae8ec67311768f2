package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"

	"github.com/go-gl/gl/v2.1/gl"
	glfw "github.com/go-gl/glfw/v3.3/glfw"
	imgui "github.com/mmp/imgui-go/v4"

	"github.com/parchview/imgui-glfw/backend"
	"github.com/parchview/imgui-glfw/options"
	"github.com/parchview/imgui-glfw/platform"
	"github.com/parchview/imgui-glfw/renderer"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	opts := &options.DemoOptions{
		Width:  flag.Int("width", 1024, "Window width"),
		Height: flag.Int("height", 768, "Window height"),
		Title:  flag.String("title", "imgui-glfw demo", "Window title"),
		VSync:  flag.Bool("vsync", true, "Enable vertical sync"),
		MSAA:   flag.Bool("msaa", false, "Request a multisampled framebuffer"),
	}
	flag.Parse()

	if err := run(opts); err != nil {
		log.Fatalf("demo failed: %v", err)
	}
}

func run(opts *options.DemoOptions) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize glfw: %w", err)
	}
	defer glfw.Terminate()
	log.Printf("GLFW: %s", glfw.GetVersionString())

	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	if *opts.MSAA {
		glfw.WindowHint(glfw.Samples, 4)
	}
	window, err := glfw.CreateWindow(*opts.Width, *opts.Height, *opts.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	defer window.Destroy()
	window.MakeContextCurrent()
	if *opts.VSync {
		glfw.SwapInterval(1)
	}

	if err := gl.Init(); err != nil {
		return fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	context := imgui.CreateContext(nil)
	defer context.Destroy()

	p, err := platform.New(window)
	if err != nil {
		return err
	}
	defer p.Dispose()

	r, err := renderer.NewOpenGL2(imgui.CurrentIO())
	if err != nil {
		return err
	}
	defer r.Dispose()

	// Forward uncaptured events to application logic: here just Escape to
	// close, so typing into a focused imgui text field never quits.
	p.SetEventHandler(func(ev backend.Event, captured bool) {
		if captured {
			return
		}
		if key, ok := ev.(backend.KeyEvent); ok && key.Key == int(glfw.KeyEscape) && key.Action == backend.Press {
			window.SetShouldClose(true)
		}
	})

	showDemo := true
	counter := 0
	for !p.ShouldStop() {
		p.ProcessEvents()
		p.NewFrame()

		imgui.ShowDemoWindow(&showDemo)

		imgui.Begin("Hello Window")
		imgui.Text("This is some random text")
		if imgui.Button("Count") {
			counter++
		}
		imgui.Text(fmt.Sprintf("count: %d", counter))
		imgui.End()

		imgui.Render()
		r.PreRender([3]float32{0.1, 0.1, 0.1})
		p.SyncCursor()
		r.Render(p.DisplaySize(), p.FramebufferSize(), imgui.RenderedDrawData())
		p.PostRender()
	}
	return nil
}

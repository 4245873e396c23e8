// Command gl21-crane opens a window with an interactive tower crane.
//
//	0        toggle wireframe / solid
//	1 2 3 4  front, top, left and axonometric view
//	w s      raise / lower the hook
//	i k      expand / contract the tower
//	j l      rotate the jib
//	a d      move the cart out / in
//	arrows   turn and tilt the axonometric camera
//	wheel    zoom
//	r        reset the camera
//	space    pause / resume the clock
//	esc      quit
package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/paperboard/crane/crane"
)

var (
	windowWidth  = flag.Int("width", 1024, "initial window width")
	windowHeight = flag.Int("height", 768, "initial window height")
	segments     = flag.Int("segments", crane.DefaultSegments, "cube frames in the lower tower section")
	wireframe    = flag.Bool("wireframe", false, "start in wireframe mode")
)

// titleEvery is how many frames pass between window title updates.
const titleEvery = 30

func init() {
	// glfw must be on main thread
	runtime.LockOSThread()
}

func main() {
	flag.Parse()
	if *segments < 1 {
		log.Fatalln("segments must be positive, got", *segments)
	}

	// initalize glfw
	err := glfw.Init()
	if err != nil {
		log.Fatalln("failed to initialize glfw:", err)
	}
	defer glfw.Terminate()

	// use OpenGL v2.1
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)

	// create window handle
	window, err := glfw.CreateWindow(*windowWidth, *windowHeight, "Crane", nil, nil)
	if err != nil {
		log.Fatalln("failed to create window:", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	// initialize OpenGL
	err = gl.Init()
	if err != nil {
		log.Fatalln("failed to initialize OpenGL:", err)
	}
	fmt.Println("OpenGL version", gl.GoStr(gl.GetString(gl.VERSION)))

	state := crane.NewState(crane.NewDimensions(*segments))
	if *wireframe {
		state.Mode = crane.Wireframe
	}

	raster, err := newGLRasterizer()
	if err != nil {
		log.Fatalln(err)
	}

	setup()

	// input only touches the state; the scene is drawn in the loop below
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if action == glfw.Release {
			return
		}
		if key == glfw.KeyEscape {
			w.SetShouldClose(true)
			return
		}
		k, ok := keyNames[key]
		if !ok || !state.HandleKey(k) {
			return
		}
		if action == glfw.Press {
			log.Printf("key %q: view=%v mode=%v pose=%+v", k, state.View, state.Mode, state.Pose)
		}
	})
	window.SetScrollCallback(func(_ *glfw.Window, _, yoff float64) {
		state.HandleWheel(yoff)
	})

	// pixel dimension and texel dimensions are not the same in high resolution monitors,
	// so the viewport follows the framebuffer size rather than the window size
	window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		resize(state, width, height)
	})
	fbWidth, fbHeight := window.GetFramebufferSize()
	resize(state, fbWidth, fbHeight)

	scene := crane.NewScene()
	frames := 0

	// run gameloop
	for !window.ShouldClose() {

		state.Tick()

		// draw into buffer
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
		raster.begin()
		stats := scene.Render(state, raster)
		raster.end()

		// check for accumulated OpenGL errors
		checkGLError()

		if frames%titleEvery == 0 {
			window.SetTitle(fmt.Sprintf("Crane (t=%.1f, %s, %s, %d draws)", state.Time, state.View, state.Mode, stats.DrawCalls))
		}
		frames++

		// render buffer to screen
		window.SwapBuffers()

		// glfw events?
		glfw.PollEvents()

	}

}

func setup() {

	// cleared background color = black
	gl.ClearColor(0, 0, 0, 1)

	// do not render parts of shapes (pixels) that will
	// anyhow be covered up by higher z-axis shapes (pixels)
	gl.Enable(gl.DEPTH_TEST)

	// if multiple shapes have same z-value, take their
	// draw order in account and show if possible
	gl.DepthFunc(gl.LEQUAL)

}

// on window size change (by OS or user resize) this callback executes
func resize(state *crane.State, width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
	state.Resize(width, height)
}

var keyNames = map[glfw.Key]crane.Key{
	glfw.Key0:     crane.KeyToggleMode,
	glfw.Key1:     crane.KeyFront,
	glfw.Key2:     crane.KeyTop,
	glfw.Key3:     crane.KeyLeft,
	glfw.Key4:     crane.KeyAxonometric,
	glfw.KeyW:     crane.KeyRaise,
	glfw.KeyS:     crane.KeyLower,
	glfw.KeyI:     crane.KeyExpand,
	glfw.KeyK:     crane.KeyContract,
	glfw.KeyJ:     crane.KeyRotateCCW,
	glfw.KeyL:     crane.KeyRotateCW,
	glfw.KeyA:     crane.KeyCartOut,
	glfw.KeyD:     crane.KeyCartIn,
	glfw.KeyR:     crane.KeyReset,
	glfw.KeySpace: crane.KeyAnimation,
	glfw.KeyLeft:  crane.KeyArrowLeft,
	glfw.KeyRight: crane.KeyArrowRight,
	glfw.KeyUp:    crane.KeyArrowUp,
	glfw.KeyDown:  crane.KeyArrowDown,
}

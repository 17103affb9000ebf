package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/fulldump/frustum"
	"github.com/fulldump/frustum/internal/config"
	"github.com/fulldump/frustum/internal/scene"
)

var (
	vertexShaderSource = `
		#version 410
		in vec3 vp;
		uniform mat4 mvp;
		void main() {
			gl_Position = mvp * vec4(vp, 1.0);
		}
	` + "\x00"

	fragmentShaderSource = `
		#version 410
		uniform vec4 colour;
		out vec4 frag_colour;
		void main() {
			frag_colour = colour;
		}
	` + "\x00"
)

var (
	// Unit cube centered on the origin
	cubeVertices = []float32{
		// Front face
		-0.5, -0.5, 0.5,
		0.5, -0.5, 0.5,
		0.5, 0.5, 0.5,
		-0.5, 0.5, 0.5,
		// Back face
		-0.5, -0.5, -0.5,
		0.5, -0.5, -0.5,
		0.5, 0.5, -0.5,
		-0.5, 0.5, -0.5,
	}

	// Indices for drawing cube edges (wireframe)
	cubeIndices = []uint32{
		0, 1, 1, 2, 2, 3, 3, 0, // Front face
		4, 5, 5, 6, 6, 7, 7, 4, // Back face
		0, 4, 1, 5, 2, 6, 3, 7, // Connecting lines
	}

	insideColour  = mgl32.Vec4{1, 1, 0, 1} // Yellow
	partialColour = mgl32.Vec4{1, 0.4, 0, 1}
)

func init() {
	// GLFW event handling must run on the main OS thread
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "TOML config file")
	debug := flag.Bool("debug", false, "log culling stats every second")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize glfw: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("failed to initialize gl: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	slog.Info("opengl ready", "version", version)

	// Compile Shaders
	program, err := newProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return err
	}
	gl.UseProgram(program)

	// Uniforms
	mvpUniform := gl.GetUniformLocation(program, gl.Str("mvp\x00"))
	colourUniform := gl.GetUniformLocation(program, gl.Str("colour\x00"))

	// VAO / VBO / EBO
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(cubeVertices)*4, gl.Ptr(cubeVertices), gl.STATIC_DRAW)

	var ebo uint32
	gl.GenBuffers(1, &ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(cubeIndices)*4, gl.Ptr(cubeIndices), gl.STATIC_DRAW)

	vertAttrib := uint32(gl.GetAttribLocation(program, gl.Str("vp\x00")))
	gl.EnableVertexAttribArray(vertAttrib)
	gl.VertexAttribPointer(vertAttrib, 3, gl.FLOAT, false, 0, gl.PtrOffset(0))

	// Global settings
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(0.1, 0.1, 0.1, 1.0)

	objects := scene.Grid(cfg.Grid.Size, cfg.Grid.Spacing, cfg.Grid.Cube)
	scale := mgl32.Scale3D(cfg.Grid.Cube, cfg.Grid.Cube, cfg.Grid.Cube)
	camera := scene.NewCamera(cfg.Camera)
	projection := scene.Projection(cfg.Camera, cfg.Aspect())
	slog.Info("scene ready", "objects", len(objects), "projection", cfg.Camera.Projection, "spheres", cfg.Culling.Spheres)

	culler := frustum.New(projection.Mul4(camera.View()), cfg.Culling.Normalize)
	var (
		results []frustum.Intersection
		stats   scene.Stats
	)

	lastFrameTime := glfw.GetTime()
	lastFpsTime := glfw.GetTime()
	frameCount := 0

	for !window.ShouldClose() {
		// Calculate Delta Time
		currentTime := glfw.GetTime()
		deltaTime := currentTime - lastFrameTime
		lastFrameTime = currentTime

		camera.Advance(cfg.Camera.OrbitSpeed * float32(deltaTime))
		vp := projection.Mul4(camera.View())
		culler.Update(vp, cfg.Culling.Normalize)
		results, stats = scene.Cull(culler, objects, cfg.Culling.Spheres, results)

		// FPS Counter Update (every 1 second)
		frameCount++
		if currentTime-lastFpsTime >= 1.0 {
			window.SetTitle(fmt.Sprintf("%s | FPS: %d | drawn %d/%d", cfg.Window.Title, frameCount, stats.Visible(), len(objects)))
			slog.Debug("culling", "fps", frameCount, "inside", stats.Inside, "partial", stats.Partial, "outside", stats.Outside)
			frameCount = 0
			lastFpsTime = currentTime
		}

		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		gl.UseProgram(program)
		gl.BindVertexArray(vao)

		for i, o := range objects {
			colour := insideColour
			switch results[i] {
			case frustum.Outside:
				continue
			case frustum.Partial:
				colour = partialColour
			}
			c := o.Box.Center()
			model := mgl32.Translate3D(c[0], c[1], c[2]).Mul4(scale)
			mvp := vp.Mul4(model)
			gl.UniformMatrix4fv(mvpUniform, 1, false, &mvp[0])
			gl.Uniform4fv(colourUniform, 1, &colour[0])
			gl.DrawElements(gl.LINES, int32(len(cubeIndices)), gl.UNSIGNED_INT, gl.PtrOffset(0))
		}

		window.SwapBuffers()
		glfw.PollEvents()
	}
	return nil
}

func newProgram(vertexShaderSource, fragmentShaderSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexShaderSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}

	fragmentShader, err := compileShader(fragmentShaderSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(infoLog))
		gl.DeleteProgram(program)

		return 0, fmt.Errorf("failed to link program: %s", trimInfoLog(infoLog))
	}

	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	return program, nil
}

// trimInfoLog drops the NUL padding of a GL info log buffer.
func trimInfoLog(infoLog string) string {
	return strings.TrimSpace(strings.TrimRight(infoLog, "\x00"))
}

func shaderKind(shaderType uint32) string {
	if shaderType == gl.VERTEX_SHADER {
		return "vertex"
	}
	return "fragment"
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(infoLog))
		gl.DeleteShader(shader)

		return 0, fmt.Errorf("failed to compile %s shader: %s", shaderKind(shaderType), trimInfoLog(infoLog))
	}

	return shader, nil
}

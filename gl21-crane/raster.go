package main

import (
	"fmt"
	"image/color"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/paperboard/crane/crane"
)

// mesh is a geometry uploaded to the GPU.
type mesh struct {
	vbo        uint32 // stores interleaved vertex position and normal
	ibo        uint32 // triangle indices, for solid drawing
	lines      uint32 // edge indices, for wireframe drawing
	indexCount int32
	lineCount  int32
}

func uploadMesh(g *geometry) *mesh {
	m := &mesh{}
	edges := g.edges()

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(g.vertices)*bytesFloat32, gl.Ptr(g.vertices), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	gl.GenBuffers(1, &m.ibo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ibo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(g.indices)*bytesUint16, gl.Ptr(g.indices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &m.lines)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.lines)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(edges)*bytesUint16, gl.Ptr(edges), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)

	m.indexCount = int32(len(g.indices))
	m.lineCount = int32(len(edges))
	return m
}

// glRasterizer draws crane primitives with an OpenGL 2.1 program.
type glRasterizer struct {
	program              uint32
	meshes               map[crane.Primitive]*mesh
	uniformProjection    int32
	uniformModelView     int32
	uniformColor         int32
	attribVertexPosition uint32
	attribVertexNormal   uint32
}

func newGLRasterizer() (*glRasterizer, error) {
	program, err := newProgram(vertexShader, fragmentShader)
	if err != nil {
		return nil, err
	}
	r := &glRasterizer{
		program:              program,
		uniformProjection:    gl.GetUniformLocation(program, gl.Str("projection\x00")),
		uniformModelView:     gl.GetUniformLocation(program, gl.Str("modelView\x00")),
		uniformColor:         gl.GetUniformLocation(program, gl.Str("color\x00")),
		attribVertexPosition: uint32(gl.GetAttribLocation(program, gl.Str("vertexPosition\x00"))),
		attribVertexNormal:   uint32(gl.GetAttribLocation(program, gl.Str("vertexNormal\x00"))),
	}

	// the mesh registry; no rabbit model ships with the program, so
	// the counterweight hangs a sphere in its place
	r.meshes = map[crane.Primitive]*mesh{
		crane.Cube:     uploadMesh(makeCube()),
		crane.Cylinder: uploadMesh(makeCylinder(24)),
		crane.Bunny:    uploadMesh(makeSphere(12, 24)),
	}
	return r, nil
}

// begin binds the program before a frame is drawn.
func (r *glRasterizer) begin() {
	gl.UseProgram(r.program)
	gl.EnableVertexAttribArray(r.attribVertexPosition)
	gl.EnableVertexAttribArray(r.attribVertexNormal)
}

// end unbinds everything begin and DrawPrimitive bound.
func (r *glRasterizer) end() {
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)
	gl.DisableVertexAttribArray(r.attribVertexPosition)
	gl.DisableVertexAttribArray(r.attribVertexNormal)
	gl.UseProgram(0)
}

func (r *glRasterizer) SetProjection(m mgl32.Mat4) {
	gl.UniformMatrix4fv(r.uniformProjection, 1, false, &m[0])
}

func (r *glRasterizer) SetModelView(m mgl32.Mat4) {
	gl.UniformMatrix4fv(r.uniformModelView, 1, false, &m[0])
}

func (r *glRasterizer) SetColor(c color.Color) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	gl.Uniform4f(r.uniformColor, float32(n.R)/255, float32(n.G)/255, float32(n.B)/255, float32(n.A)/255)
}

func (r *glRasterizer) DrawPrimitive(p crane.Primitive, mode crane.DrawMode) {
	m, ok := r.meshes[p]
	if !ok {
		panic(fmt.Sprintf("no mesh registered for %v", p))
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.VertexAttribPointer(r.attribVertexPosition, vertexPositionSize, gl.FLOAT, false, vertexSize*bytesFloat32, gl.PtrOffset(0))
	gl.VertexAttribPointer(r.attribVertexNormal, vertexNormalSize, gl.FLOAT, false, vertexSize*bytesFloat32, gl.PtrOffset(vertexPositionSize*bytesFloat32))

	if mode == crane.Wireframe {
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.lines)
		gl.DrawElements(gl.LINES, m.lineCount, gl.UNSIGNED_SHORT, gl.PtrOffset(0))
		return
	}
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ibo)
	gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_SHORT, gl.PtrOffset(0))
}

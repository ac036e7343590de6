// Package renderer provides OpenGL rendering for the viewer.
package renderer

import (
	"fmt"
	"unsafe"

	"go.uber.org/zap"

	"github.com/Faultbox/bevelbox/internal/engine/lighting"
	"github.com/Faultbox/bevelbox/internal/engine/shader"
	"github.com/Faultbox/bevelbox/internal/logger"
	"github.com/Faultbox/bevelbox/pkg/geom"
	"github.com/Faultbox/bevelbox/pkg/math"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// MeshBuffer is a mesh uploaded to the GPU.
type MeshBuffer struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config Config

	program uint32

	// Uniform locations
	locModel      int32
	locView       int32
	locProjection int32
	locLightPos   int32
	locLightColor int32
	locLightRange int32
	locLightPower int32
	locBaseColor  int32
	locUseTexture int32

	buffers []*MeshBuffer
}

// New creates a new renderer.
// Must be called AFTER the OpenGL context is created.
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.ClearColor(0.1, 0.1, 0.15, 1.0)

	var err error
	r.program, err = shader.CompileProgram(vertexShaderSrc, fragmentShaderSrc)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}

	r.locModel = shader.GetUniform(r.program, "uModel")
	r.locView = shader.GetUniform(r.program, "uView")
	r.locProjection = shader.GetUniform(r.program, "uProjection")
	r.locLightPos = shader.GetUniform(r.program, "uLightPos")
	r.locLightColor = shader.GetUniform(r.program, "uLightColor")
	r.locLightRange = shader.GetUniform(r.program, "uLightRange")
	r.locLightPower = shader.GetUniform(r.program, "uLightPower")
	r.locBaseColor = shader.GetUniform(r.program, "uBaseColor")
	r.locUseTexture = shader.GetUniform(r.program, "uUseTexture")

	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	for _, buf := range r.buffers {
		gl.DeleteVertexArrays(1, &buf.vao)
		gl.DeleteBuffers(1, &buf.vbo)
		gl.DeleteBuffers(1, &buf.ebo)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Aspect returns the current viewport aspect ratio.
func (r *Renderer) Aspect() float32 {
	if r.config.Height == 0 {
		return 1
	}
	return float32(r.config.Width) / float32(r.config.Height)
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.UseProgram(r.program)
}

// UploadMesh uploads mesh data into a VAO/VBO/EBO set.
// The buffer is owned by the renderer and freed on Close.
func (r *Renderer) UploadMesh(mesh *geom.Mesh) *MeshBuffer {
	buf := &MeshBuffer{
		indexCount: int32(len(mesh.Indices)),
	}

	gl.GenVertexArrays(1, &buf.vao)
	gl.BindVertexArray(buf.vao)

	// geom.Vertex is eight packed float32s: position, normal, texcoord
	const stride = 8 * 4
	gl.GenBuffers(1, &buf.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, buf.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh.Vertices)*stride,
		unsafe.Pointer(&mesh.Vertices[0]), gl.STATIC_DRAW)

	gl.GenBuffers(1, &buf.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, buf.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*4,
		unsafe.Pointer(&mesh.Indices[0]), gl.STATIC_DRAW)

	// Position (location = 0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, nil)
	gl.EnableVertexAttribArray(0)
	// Normal (location = 1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(3*4)))
	gl.EnableVertexAttribArray(1)
	// TexCoord (location = 2)
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(6*4)))
	gl.EnableVertexAttribArray(2)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	logger.Debug("mesh uploaded",
		zap.Uint32("vao", buf.vao),
		zap.Int("vertices", len(mesh.Vertices)),
		zap.Int("indices", len(mesh.Indices)),
	)

	r.buffers = append(r.buffers, buf)
	return buf
}

// SetCamera sets the view and projection matrices for this frame.
func (r *Renderer) SetCamera(view, projection math.Mat4) {
	gl.UniformMatrix4fv(r.locView, 1, false, view.Ptr())
	gl.UniformMatrix4fv(r.locProjection, 1, false, projection.Ptr())
}

// SetLight sets the point light for this frame.
func (r *Renderer) SetLight(light lighting.PointLight) {
	gl.Uniform3f(r.locLightPos, light.Position[0], light.Position[1], light.Position[2])
	gl.Uniform3f(r.locLightColor, light.Color[0], light.Color[1], light.Color[2])
	gl.Uniform1f(r.locLightRange, light.Range)
	gl.Uniform1f(r.locLightPower, light.Intensity)
}

// DrawMesh draws an uploaded mesh with the given model matrix.
// When textured is true the bound texture is sampled, otherwise the
// base color is used flat.
func (r *Renderer) DrawMesh(buf *MeshBuffer, model math.Mat4, baseColor [3]float32, textured bool) {
	gl.UniformMatrix4fv(r.locModel, 1, false, model.Ptr())
	gl.Uniform3f(r.locBaseColor, baseColor[0], baseColor[1], baseColor[2])
	if textured {
		gl.Uniform1i(r.locUseTexture, 1)
	} else {
		gl.Uniform1i(r.locUseTexture, 0)
	}

	gl.BindVertexArray(buf.vao)
	gl.DrawElements(gl.TRIANGLES, buf.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// BindTexture binds a 2D texture to unit 0 for subsequent draws.
func (r *Renderer) BindTexture(tex uint32) {
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, tex)
}

const vertexShaderSrc = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;
layout (location = 2) in vec2 aTexCoord;

uniform mat4 uModel;
uniform mat4 uView;
uniform mat4 uProjection;

out vec3 vWorldPos;
out vec3 vNormal;
out vec2 vTexCoord;

void main() {
	vec4 worldPos = uModel * vec4(aPos, 1.0);
	vWorldPos = worldPos.xyz;
	vNormal = mat3(uModel) * aNormal;
	vTexCoord = aTexCoord;
	gl_Position = uProjection * uView * worldPos;
}
`

const fragmentShaderSrc = `
#version 410 core

in vec3 vWorldPos;
in vec3 vNormal;
in vec2 vTexCoord;

uniform sampler2D uTexture;
uniform vec3 uLightPos;
uniform vec3 uLightColor;
uniform float uLightRange;
uniform float uLightPower;
uniform vec3 uBaseColor;
uniform int uUseTexture;

out vec4 FragColor;

void main() {
	vec3 albedo = uBaseColor;
	if (uUseTexture == 1) {
		albedo = texture(uTexture, vTexCoord).rgb;
	}

	vec3 n = normalize(vNormal);
	vec3 toLight = uLightPos - vWorldPos;
	float dist = length(toLight);
	vec3 l = toLight / dist;

	// Inverse-square falloff, cut off smoothly at the light range
	float atten = uLightPower / (4.0 * 3.14159265 * dist * dist);
	float window = clamp(1.0 - pow(dist / uLightRange, 4.0), 0.0, 1.0);
	float diffuse = max(dot(n, l), 0.0) * atten * window;

	vec3 lit = albedo * (0.15 + diffuse * 0.02) * uLightColor;
	FragColor = vec4(min(lit, vec3(1.0)), 1.0);
}
`

package openglhelper

import (
	"github.com/go-gl/gl/v4.6-core/gl"
)

// vertex layout: position (3), normal (3)
const vertexStride = 6 * 4

// instance layout: offset (3), scale (3), color (3)
const (
	InstanceFloats = 9
	instanceStride = InstanceFloats * 4
)

// Mesh is an indexed triangle mesh with an optional per-instance buffer
type Mesh struct {
	vao       *VertexArrayObject
	vbo       *BufferObject
	ebo       *BufferObject
	instances *BufferObject
	count     int32
	indices   int32
}

// NewMesh uploads position/normal vertices and their indices
func NewMesh(vertices []float32, indices []uint32) *Mesh {
	vao := NewVAO()
	vao.Bind()

	vbo := NewVBO(vertices, StaticDraw)
	ebo := NewEBO(indices, StaticDraw)

	vao.SetVertexAttribPointer(0, 3, vertexStride, 0)
	vao.SetVertexAttribPointer(1, 3, vertexStride, 3*4)

	vao.Unbind()

	return &Mesh{
		vao:     vao,
		vbo:     vbo,
		ebo:     ebo,
		indices: int32(len(indices)),
	}
}

// SetInstances uploads one InstanceFloats record per instance. The
// instance attributes live at locations 2, 3 and 4.
func (m *Mesh) SetInstances(data []float32) {
	m.vao.Bind()
	if m.instances == nil {
		m.instances = NewVBO(data, DynamicDraw)
		m.vao.SetInstancedAttribPointer(2, 3, instanceStride, 0)
		m.vao.SetInstancedAttribPointer(3, 3, instanceStride, 3*4)
		m.vao.SetInstancedAttribPointer(4, 3, instanceStride, 6*4)
	} else {
		m.instances.UpdateFloats(data)
	}
	m.vao.Unbind()
	m.count = int32(len(data) / InstanceFloats)
}

// Instances returns the number of uploaded instances
func (m *Mesh) Instances() int {
	return int(m.count)
}

// Draw renders every uploaded instance with the bound shader
func (m *Mesh) Draw() {
	if m.count == 0 {
		return
	}
	m.vao.Bind()
	gl.DrawElementsInstanced(gl.TRIANGLES, m.indices, gl.UNSIGNED_INT, nil, m.count)
	m.vao.Unbind()
}

// Delete releases all resources
func (m *Mesh) Delete() {
	m.vao.Delete()
	m.vbo.Delete()
	m.ebo.Delete()
	if m.instances != nil {
		m.instances.Delete()
	}
}

// NewCube creates a unit cube sitting on y=0, so instance scale.y is its height
func NewCube() *Mesh {
	vertices := []float32{
		// Front face
		-0.5, 0, 0.5, 0, 0, 1,
		0.5, 0, 0.5, 0, 0, 1,
		0.5, 1, 0.5, 0, 0, 1,
		-0.5, 1, 0.5, 0, 0, 1,

		// Back face
		-0.5, 0, -0.5, 0, 0, -1,
		-0.5, 1, -0.5, 0, 0, -1,
		0.5, 1, -0.5, 0, 0, -1,
		0.5, 0, -0.5, 0, 0, -1,

		// Top face
		-0.5, 1, -0.5, 0, 1, 0,
		-0.5, 1, 0.5, 0, 1, 0,
		0.5, 1, 0.5, 0, 1, 0,
		0.5, 1, -0.5, 0, 1, 0,

		// Bottom face
		-0.5, 0, -0.5, 0, -1, 0,
		0.5, 0, -0.5, 0, -1, 0,
		0.5, 0, 0.5, 0, -1, 0,
		-0.5, 0, 0.5, 0, -1, 0,

		// Right face
		0.5, 0, -0.5, 1, 0, 0,
		0.5, 1, -0.5, 1, 0, 0,
		0.5, 1, 0.5, 1, 0, 0,
		0.5, 0, 0.5, 1, 0, 0,

		// Left face
		-0.5, 0, -0.5, -1, 0, 0,
		-0.5, 0, 0.5, -1, 0, 0,
		-0.5, 1, 0.5, -1, 0, 0,
		-0.5, 1, -0.5, -1, 0, 0,
	}

	indices := []uint32{
		0, 1, 2, 2, 3, 0,
		4, 5, 6, 6, 7, 4,
		8, 9, 10, 10, 11, 8,
		12, 13, 14, 14, 15, 12,
		16, 17, 18, 18, 19, 16,
		20, 21, 22, 22, 23, 20,
	}

	return NewMesh(vertices, indices)
}

// NewPlane creates a unit quad on y=0 facing up
func NewPlane() *Mesh {
	vertices := []float32{
		-0.5, 0, -0.5, 0, 1, 0,
		-0.5, 0, 0.5, 0, 1, 0,
		0.5, 0, 0.5, 0, 1, 0,
		0.5, 0, -0.5, 0, 1, 0,
	}
	indices := []uint32{0, 1, 2, 2, 3, 0}
	return NewMesh(vertices, indices)
}

// Package openglhelper wraps the OpenGL calls the city renderer needs in a
// smaller Go API: window and context setup, shader programs and buffers.
package openglhelper

import (
	"github.com/go-gl/gl/v4.6-core/gl"
)

// BufferUsage represents the usage hint passed to glBufferData
type BufferUsage uint32

const (
	// StaticDraw for data uploaded once and drawn many times
	StaticDraw BufferUsage = gl.STATIC_DRAW
	// DynamicDraw for data rewritten every few frames
	DynamicDraw BufferUsage = gl.DYNAMIC_DRAW
	// StreamDraw for data rewritten every frame
	StreamDraw BufferUsage = gl.STREAM_DRAW
)

// BufferObject represents an OpenGL buffer object (VBO, EBO)
type BufferObject struct {
	ID    uint32
	Type  uint32 // GL_ARRAY_BUFFER, GL_ELEMENT_ARRAY_BUFFER
	Size  int    // Size of the buffer in bytes
	Usage uint32
}

// VertexArrayObject stores vertex attribute configuration
type VertexArrayObject struct {
	ID uint32
}

// NewVBO creates an array buffer holding data
func NewVBO(data []float32, usage BufferUsage) *BufferObject {
	bo := newBuffer(gl.ARRAY_BUFFER, usage)
	bo.Size = len(data) * 4
	bo.Bind()
	if len(data) > 0 {
		gl.BufferData(bo.Type, bo.Size, gl.Ptr(data), bo.Usage)
	} else {
		gl.BufferData(bo.Type, 0, nil, bo.Usage)
	}
	return bo
}

// NewEBO creates an element buffer holding indices
func NewEBO(indices []uint32, usage BufferUsage) *BufferObject {
	bo := newBuffer(gl.ELEMENT_ARRAY_BUFFER, usage)
	bo.Size = len(indices) * 4
	bo.Bind()
	gl.BufferData(bo.Type, bo.Size, gl.Ptr(indices), bo.Usage)
	return bo
}

func newBuffer(bufferType uint32, usage BufferUsage) *BufferObject {
	var id uint32
	gl.GenBuffers(1, &id)
	return &BufferObject{
		ID:    id,
		Type:  bufferType,
		Usage: uint32(usage),
	}
}

// Bind binds the buffer object to its type target
func (bo *BufferObject) Bind() {
	gl.BindBuffer(bo.Type, bo.ID)
}

// Unbind unbinds the buffer object from its type target
func (bo *BufferObject) Unbind() {
	gl.BindBuffer(bo.Type, 0)
}

// UpdateFloats replaces the buffer contents, growing the store when needed
func (bo *BufferObject) UpdateFloats(data []float32) {
	bo.Bind()
	size := len(data) * 4
	if size == 0 {
		return
	}
	if size > bo.Size {
		bo.Size = size
		gl.BufferData(bo.Type, size, gl.Ptr(data), bo.Usage)
		return
	}
	gl.BufferSubData(bo.Type, 0, size, gl.Ptr(data))
}

// Delete releases the buffer object
func (bo *BufferObject) Delete() {
	gl.DeleteBuffers(1, &bo.ID)
}

// NewVAO creates a new Vertex Array Object
func NewVAO() *VertexArrayObject {
	var vaoID uint32
	gl.GenVertexArrays(1, &vaoID)
	return &VertexArrayObject{ID: vaoID}
}

// Bind binds the vertex array object
func (vao *VertexArrayObject) Bind() {
	gl.BindVertexArray(vao.ID)
}

// Unbind unbinds the vertex array object
func (vao *VertexArrayObject) Unbind() {
	gl.BindVertexArray(0)
}

// Delete releases the vertex array object
func (vao *VertexArrayObject) Delete() {
	gl.DeleteVertexArrays(1, &vao.ID)
}

// SetVertexAttribPointer sets up and enables a float vertex attribute of the
// currently bound array buffer. offset is in bytes.
func (vao *VertexArrayObject) SetVertexAttribPointer(index uint32, size int32, stride int32, offset int) {
	gl.VertexAttribPointer(index, size, gl.FLOAT, false, stride, gl.PtrOffset(offset))
	gl.EnableVertexAttribArray(index)
}

// SetInstancedAttribPointer is SetVertexAttribPointer for per-instance data
func (vao *VertexArrayObject) SetInstancedAttribPointer(index uint32, size int32, stride int32, offset int) {
	vao.SetVertexAttribPointer(index, size, stride, offset)
	gl.VertexAttribDivisor(index, 1)
}

// Package transform holds the matrix stack used to walk the scene,
// the affine operations pushed onto it and the camera matrices
// (orthographic projection and the named look-at views).
package transform

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl32/matstack"
)

// ErrUnderflow is the error Restore panics with when there is no
// saved matrix left, meaning a drawer popped more than it pushed.
var ErrUnderflow = errors.New("transform: restore without matching save")

// Stack is an OpenGL-style model matrix stack.
//
// The top of the underlying matstack is the current matrix, every
// entry below it is a saved state. A Stack is not safe for concurrent
// use; it belongs to the single render pass that owns it.
type Stack struct {
	ms *matstack.MatStack
}

// NewStack returns a stack whose current matrix is the identity and
// which has nothing saved.
func NewStack() *Stack {
	return &Stack{ms: matstack.NewMatStack()}
}

// Current returns the accumulated model matrix.
func (s *Stack) Current() mgl32.Mat4 { return s.ms.Peek() }

// Depth returns how many matrices are currently saved.
func (s *Stack) Depth() int { return len(*s.ms) - 1 }

// Save pushes a copy of the current matrix.
func (s *Stack) Save() { s.ms.Push() }

// Restore pops the most recently saved matrix back into the current
// register. It panics if nothing was saved.
func (s *Stack) Restore() {
	if err := s.ms.Pop(); err != nil {
		panic(fmt.Errorf("%w (%v)", ErrUnderflow, err))
	}
}

// Apply replaces the current matrix with current * op, so op acts in
// the local frame built up so far.
func (s *Stack) Apply(op mgl32.Mat4) { s.ms.RightMul(op) }

// Load replaces the current matrix with m.
func (s *Stack) Load(m mgl32.Mat4) { s.ms.Load(m) }

// Reset drops every saved matrix and loads the identity.
func (s *Stack) Reset() {
	*s.ms = (*s.ms)[:1]
	s.ms.LoadIdent()
}

// Scope runs fn between a Save and its matching Restore.
func (s *Stack) Scope(fn func()) {
	s.Save()
	fn()
	s.Restore()
}

// With runs fn in a scope whose frame is the current one transformed
// by op.
func (s *Stack) With(op mgl32.Mat4, fn func()) {
	s.Save()
	s.Apply(op)
	fn()
	s.Restore()
}

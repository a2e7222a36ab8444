package repro

import (
	"math"

	"github.com/cogentcore/webgpu/wgpu"
)

// spriteCount is the number of instances the quad pass cycles through.
const spriteCount = 4

// FrameCounter counts rendered frames and saturates at math.MaxUint32.
type FrameCounter struct {
	value uint32
}

func (c FrameCounter) Value() uint32 { return c.value }

// InstanceIndex selects which of the sprite cells the quad pass draws.
func (c FrameCounter) InstanceIndex() uint32 {
	return c.value % spriteCount
}

// LoadOp clears the spritesheet on the first frame and keeps its contents
// afterwards.
func (c FrameCounter) LoadOp() wgpu.LoadOp {
	if c.value == 0 {
		return wgpu.LoadOpClear
	}
	return wgpu.LoadOpLoad
}

func (c *FrameCounter) Advance() {
	if c.value < math.MaxUint32 {
		c.value++
	}
}

package repro

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVertexBufferDescriptor_IsEmpty(t *testing.T) {
	d := vertexBufferDescriptor()
	assert.Equal(t, "vertex_buffer", d.Label)
	assert.Equal(t, uint64(0), d.Size)
	assert.Equal(t, wgpu.BufferUsageVertex, d.Usage)
	assert.False(t, d.MappedAtCreation)
}

func TestVertexLayout(t *testing.T) {
	assert.Equal(t, uint64(0), VertexLayout.ArrayStride)
	assert.Equal(t, wgpu.VertexStepModeVertex, VertexLayout.StepMode)
	assert.Empty(t, VertexLayout.Attributes)
}

func TestQuadPipelineDescriptor(t *testing.T) {
	layout := quadPipelineLayoutDescriptor()
	assert.Equal(t, "quad_pipeline_layout", layout.Label)
	assert.Empty(t, layout.BindGroupLayouts)

	d := quadPipelineDescriptor(nil, nil)
	assert.Equal(t, "quad_pipeline", d.Label)
	assert.Equal(t, "vert_main", d.Vertex.EntryPoint)
	require.Len(t, d.Vertex.Buffers, 1)
	assert.Equal(t, VertexLayout.ArrayStride, d.Vertex.Buffers[0].ArrayStride)
	assert.Nil(t, d.DepthStencil)
	assert.Equal(t, wgpu.PrimitiveTopologyTriangleList, d.Primitive.Topology)
	assert.Equal(t, wgpu.CullModeNone, d.Primitive.CullMode)
	assert.Equal(t, uint32(1), d.Multisample.Count)
	assert.Equal(t, uint32(0xFFFFFFFF), d.Multisample.Mask)

	require.NotNil(t, d.Fragment)
	assert.Equal(t, "frag_main", d.Fragment.EntryPoint)
	require.Len(t, d.Fragment.Targets, 1)
	target := d.Fragment.Targets[0]
	assert.Equal(t, wgpu.TextureFormatRGBA8Unorm, target.Format)
	assert.Equal(t, wgpu.ColorWriteMaskAll, target.WriteMask)
	require.NotNil(t, target.Blend)
	assert.Equal(t, PremultipliedAlphaBlending, *target.Blend)
}

func TestBlitPipelineDescriptor_UsesSurfaceFormat(t *testing.T) {
	d := blitPipelineDescriptor(nil, nil, wgpu.TextureFormatBGRA8UnormSrgb)
	assert.Equal(t, "blit_pipeline", d.Label)
	assert.Equal(t, "blit_vert_main", d.Vertex.EntryPoint)
	assert.Equal(t, "blit_frag_main", d.Fragment.EntryPoint)
	assert.Equal(t, wgpu.TextureFormatBGRA8UnormSrgb, d.Fragment.Targets[0].Format)
	assert.Len(t, d.Vertex.Buffers, 1)
}

func TestBlitBindGroupLayoutDescriptor(t *testing.T) {
	d := blitBindGroupLayoutDescriptor()
	assert.Equal(t, "blit_bind_group_layout", d.Label)
	require.Len(t, d.Entries, 1)
	e := d.Entries[0]
	assert.Equal(t, uint32(0), e.Binding)
	assert.Equal(t, wgpu.ShaderStageFragment, e.Visibility)
	assert.Equal(t, wgpu.TextureSampleTypeUnfilterableFloat, e.Texture.SampleType)
	assert.Equal(t, wgpu.TextureViewDimension2D, e.Texture.ViewDimension)
	assert.False(t, e.Texture.Multisampled)

	layout := blitPipelineLayoutDescriptor(nil)
	assert.Equal(t, "blit_pipeline_layout", layout.Label)
	assert.Len(t, layout.BindGroupLayouts, 1)

	bg := blitBindGroupDescriptor(nil, nil)
	assert.Equal(t, "blit_bind_group", bg.Label)
	require.Len(t, bg.Entries, 1)
	assert.Equal(t, uint32(0), bg.Entries[0].Binding)
}

func TestSpritesheetDescriptor(t *testing.T) {
	d := spritesheetDescriptor()
	assert.Equal(t, "spritesheet", d.Label)
	assert.Equal(t, wgpu.Extent3D{Width: 256, Height: 256, DepthOrArrayLayers: 1}, d.Size)
	assert.Equal(t, uint32(1), d.MipLevelCount)
	assert.Equal(t, uint32(1), d.SampleCount)
	assert.Equal(t, wgpu.TextureDimension2D, d.Dimension)
	assert.Equal(t, wgpu.TextureFormatRGBA8Unorm, d.Format)
	assert.Equal(t, wgpu.TextureUsageRenderAttachment|wgpu.TextureUsageTextureBinding, d.Usage)
}

func TestPassDescriptors(t *testing.T) {
	var c FrameCounter
	first := quadPassDescriptor(nil, c.LoadOp())
	assert.Equal(t, "quad_rpass", first.Label)
	require.Len(t, first.ColorAttachments, 1)
	assert.Equal(t, wgpu.LoadOpClear, first.ColorAttachments[0].LoadOp)
	assert.Equal(t, wgpu.StoreOpStore, first.ColorAttachments[0].StoreOp)
	assert.Equal(t, wgpu.Color{}, first.ColorAttachments[0].ClearValue)

	c.Advance()
	later := quadPassDescriptor(nil, c.LoadOp())
	assert.Equal(t, wgpu.LoadOpLoad, later.ColorAttachments[0].LoadOp)

	blit := blitPassDescriptor(nil)
	assert.Equal(t, "blit_rpass", blit.Label)
	assert.Equal(t, wgpu.LoadOpClear, blit.ColorAttachments[0].LoadOp)
	assert.Equal(t, wgpu.Color{R: 1, G: 1, B: 1, A: 1}, blit.ColorAttachments[0].ClearValue)
}

func TestVariant(t *testing.T) {
	assert.True(t, VariantBlit.usesBlit())
	assert.False(t, VariantQuad.usesBlit())
	assert.Equal(t, "blit", VariantBlit.String())
	assert.Equal(t, "quad", VariantQuad.String())
	assert.Equal(t, "unknown", Variant(9).String())
}

func TestExample_ReleaseWithoutInit(t *testing.T) {
	e := &Example{}
	assert.NotPanics(t, e.Release)
	assert.Equal(t, uint32(0), e.Counter())
}

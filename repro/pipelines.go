package repro

import (
	"github.com/cogentcore/webgpu/wgpu"
)

const SpritesheetResolution = 256

// SpritesheetFormat is the format of the render target the quad pass draws
// into.
const SpritesheetFormat = wgpu.TextureFormatRGBA8Unorm

const (
	quadVertexEntry = "vert_main"
	quadFragEntry   = "frag_main"
	blitVertexEntry = "blit_vert_main"
	blitFragEntry   = "blit_frag_main"

	// both passes draw one quad as two triangles
	quadVertexCount = 6
)

// VertexLayout describes a vertex buffer with no attributes and zero stride.
// Both pipelines bind it; every vertex input comes from builtins.
var VertexLayout = wgpu.VertexBufferLayout{
	ArrayStride: 0,
	StepMode:    wgpu.VertexStepModeVertex,
	Attributes:  []wgpu.VertexAttribute{},
}

// PremultipliedAlphaBlending is src + dst*(1-src.a) for colour and alpha.
var PremultipliedAlphaBlending = wgpu.BlendState{
	Color: wgpu.BlendComponent{
		SrcFactor: wgpu.BlendFactorOne,
		DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
		Operation: wgpu.BlendOperationAdd,
	},
	Alpha: wgpu.BlendComponent{
		SrcFactor: wgpu.BlendFactorOne,
		DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
		Operation: wgpu.BlendOperationAdd,
	},
}

func defaultPrimitive() wgpu.PrimitiveState {
	return wgpu.PrimitiveState{
		Topology:  wgpu.PrimitiveTopologyTriangleList,
		FrontFace: wgpu.FrontFaceCCW,
		CullMode:  wgpu.CullModeNone,
	}
}

func defaultMultisample() wgpu.MultisampleState {
	return wgpu.MultisampleState{
		Count: 1,
		Mask:  0xFFFFFFFF,
	}
}

func vertexBufferDescriptor() *wgpu.BufferDescriptor {
	return &wgpu.BufferDescriptor{
		Label:            "vertex_buffer",
		Size:             0,
		Usage:            wgpu.BufferUsageVertex,
		MappedAtCreation: false,
	}
}

func quadPipelineLayoutDescriptor() *wgpu.PipelineLayoutDescriptor {
	return &wgpu.PipelineLayoutDescriptor{
		Label:            "quad_pipeline_layout",
		BindGroupLayouts: []*wgpu.BindGroupLayout{},
	}
}

func renderPipelineDescriptor(label string, layout *wgpu.PipelineLayout, module *wgpu.ShaderModule, vertexEntry, fragEntry string, format wgpu.TextureFormat) *wgpu.RenderPipelineDescriptor {
	return &wgpu.RenderPipelineDescriptor{
		Label:  label,
		Layout: layout,
		Vertex: wgpu.VertexState{
			Module:     module,
			EntryPoint: vertexEntry,
			Buffers:    []wgpu.VertexBufferLayout{VertexLayout},
		},
		Primitive:    defaultPrimitive(),
		DepthStencil: nil,
		Multisample:  defaultMultisample(),
		Fragment: &wgpu.FragmentState{
			Module:     module,
			EntryPoint: fragEntry,
			Targets: []wgpu.ColorTargetState{{
				Format:    format,
				Blend:     &PremultipliedAlphaBlending,
				WriteMask: wgpu.ColorWriteMaskAll,
			}},
		},
	}
}

func quadPipelineDescriptor(layout *wgpu.PipelineLayout, module *wgpu.ShaderModule) *wgpu.RenderPipelineDescriptor {
	return renderPipelineDescriptor("quad_pipeline", layout, module, quadVertexEntry, quadFragEntry, SpritesheetFormat)
}

func blitBindGroupLayoutDescriptor() *wgpu.BindGroupLayoutDescriptor {
	return &wgpu.BindGroupLayoutDescriptor{
		Label: "blit_bind_group_layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageFragment,
				Texture: wgpu.TextureBindingLayout{
					SampleType:    wgpu.TextureSampleTypeUnfilterableFloat,
					ViewDimension: wgpu.TextureViewDimension2D,
					Multisampled:  false,
				},
			},
		},
	}
}

func blitPipelineLayoutDescriptor(bgl *wgpu.BindGroupLayout) *wgpu.PipelineLayoutDescriptor {
	return &wgpu.PipelineLayoutDescriptor{
		Label:            "blit_pipeline_layout",
		BindGroupLayouts: []*wgpu.BindGroupLayout{bgl},
	}
}

// blitPipelineDescriptor targets the surface, so its format follows the
// surface configuration.
func blitPipelineDescriptor(layout *wgpu.PipelineLayout, module *wgpu.ShaderModule, surfaceFormat wgpu.TextureFormat) *wgpu.RenderPipelineDescriptor {
	return renderPipelineDescriptor("blit_pipeline", layout, module, blitVertexEntry, blitFragEntry, surfaceFormat)
}

func spritesheetDescriptor() *wgpu.TextureDescriptor {
	return &wgpu.TextureDescriptor{
		Label: "spritesheet",
		Size: wgpu.Extent3D{
			Width:              SpritesheetResolution,
			Height:             SpritesheetResolution,
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension2D,
		Format:        SpritesheetFormat,
		Usage:         wgpu.TextureUsageRenderAttachment | wgpu.TextureUsageTextureBinding,
	}
}

func blitBindGroupDescriptor(layout *wgpu.BindGroupLayout, spritesheet *wgpu.TextureView) *wgpu.BindGroupDescriptor {
	return &wgpu.BindGroupDescriptor{
		Label:  "blit_bind_group",
		Layout: layout,
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, TextureView: spritesheet},
		},
	}
}

var (
	colorTransparent = wgpu.Color{R: 0, G: 0, B: 0, A: 0}
	colorWhite       = wgpu.Color{R: 1, G: 1, B: 1, A: 1}
)

// quadPassDescriptor draws into the spritesheet; load is Clear only on the
// first frame.
func quadPassDescriptor(spritesheet *wgpu.TextureView, load wgpu.LoadOp) *wgpu.RenderPassDescriptor {
	return &wgpu.RenderPassDescriptor{
		Label: "quad_rpass",
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:       spritesheet,
			LoadOp:     load,
			StoreOp:    wgpu.StoreOpStore,
			ClearValue: colorTransparent,
		}},
	}
}

func blitPassDescriptor(surface *wgpu.TextureView) *wgpu.RenderPassDescriptor {
	return &wgpu.RenderPassDescriptor{
		Label: "blit_rpass",
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:       surface,
			LoadOp:     wgpu.LoadOpClear,
			StoreOp:    wgpu.StoreOpStore,
			ClearValue: colorWhite,
		}},
	}
}

package shaders

import (
	_ "embed"
)

//go:embed shaders.wgsl
var WGSL string

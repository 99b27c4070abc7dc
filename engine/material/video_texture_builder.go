package material

import (
	"github.com/rinsyan0518/stereo360/common"
)

// VideoTextureBuilderOption is a functional option for configuring a VideoTexture during construction.
type VideoTextureBuilderOption func(*videoTexture)

// WithTextureName sets the texture identifier.
//
// Parameters:
//   - name: the texture name
//
// Returns:
//   - VideoTextureBuilderOption: functional option to set the name
func WithTextureName(name string) VideoTextureBuilderOption {
	return func(t *videoTexture) {
		t.name = name
	}
}

// WithSampler overrides the sampler configuration staged for this texture.
//
// Parameters:
//   - s: the sampler configuration
//
// Returns:
//   - VideoTextureBuilderOption: functional option to set the sampler
func WithSampler(s common.SamplerStagingData) VideoTextureBuilderOption {
	return func(t *videoTexture) {
		t.sampler = s
	}
}

// WithStagingWorkers sets the number of workers converting queued frames to
// RGBA. Values below 1 are treated as 1.
//
// Parameters:
//   - workers: the worker count
//
// Returns:
//   - VideoTextureBuilderOption: functional option to set the worker count
func WithStagingWorkers(workers int) VideoTextureBuilderOption {
	return func(t *videoTexture) {
		t.stagingWorkers = max(workers, 1)
	}
}

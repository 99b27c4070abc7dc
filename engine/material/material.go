// package material provides materials for video-backed meshes. A material
// pairs an identifier with a VideoTexture whose frames arrive decoded from
// the host's playback pipeline and are staged here for GPU upload.
package material

import (
	"sync"
)

type materialImpl struct {
	mu *sync.RWMutex

	name    string
	texture VideoTexture
}

// Material defines the surface appearance of a mesh. For spherical video
// playback the only configurable aspect is the video texture; color and
// lighting properties are host concerns.
type Material interface {
	// Name returns the material identifier.
	//
	// Returns:
	//   - string: the material name
	Name() string

	// Texture returns the material's video texture, or nil if none is set.
	//
	// Returns:
	//   - VideoTexture: the texture or nil
	Texture() VideoTexture

	// SetTexture replaces the material's video texture.
	//
	// Parameters:
	//   - t: the texture to set, or nil to detach
	SetTexture(t VideoTexture)
}

var _ Material = &materialImpl{}

// NewMaterial creates a new Material with the given options.
//
// Parameters:
//   - options: functional options to configure the material
//
// Returns:
//   - Material: the newly created material
func NewMaterial(options ...MaterialBuilderOption) Material {
	m := &materialImpl{
		mu:   &sync.RWMutex{},
		name: "material",
	}
	for _, option := range options {
		option(m)
	}
	return m
}

func (m *materialImpl) Name() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.name
}

func (m *materialImpl) Texture() VideoTexture {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.texture
}

func (m *materialImpl) SetTexture(t VideoTexture) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.texture = t
}

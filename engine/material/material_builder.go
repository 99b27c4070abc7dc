package material

// MaterialBuilderOption is a functional option for configuring a Material during construction.
type MaterialBuilderOption func(*materialImpl)

// WithName sets the material identifier.
//
// Parameters:
//   - name: the material name
//
// Returns:
//   - MaterialBuilderOption: functional option to set the name
func WithName(name string) MaterialBuilderOption {
	return func(m *materialImpl) {
		m.name = name
	}
}

// WithTexture sets the material's video texture.
//
// Parameters:
//   - t: the texture to attach
//
// Returns:
//   - MaterialBuilderOption: functional option to set the texture
func WithTexture(t VideoTexture) MaterialBuilderOption {
	return func(m *materialImpl) {
		m.texture = t
	}
}

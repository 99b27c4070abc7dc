// package common contains common types that are used throughout this library. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/cogentcore/webgpu/wgpu"
)

// FrameStagingData holds RGBA pixel data for a single video or poster frame pending GPU upload.
// This is the staging format produced by the material package's frame conversion and consumed by a host renderer's texture uploader.
type FrameStagingData struct {
	// Pixels is the byte slice representing the actual pixel data for the frame. It should be in RGBA format, with 4 bytes per pixel.
	Pixels []byte
	// Width is the width of the frame in pixels. This is required to correctly create the GPU texture and interpret the pixel data.
	Width uint32
	// Height is the height of the frame in pixels. This is required to correctly create the GPU texture and interpret the pixel data.
	Height uint32
}

// SamplerStagingData holds the configuration for a sampler binding pending GPU creation.
// Video textures stage their sampler parameters here so a host renderer can create the GPU sampler without re-deriving settings.
type SamplerStagingData struct {
	// AddressModeU, AddressModeV, AddressModeW specify the addressing mode for texture coordinates outside the [0, 1] range in each dimension (U, V, W).
	AddressModeU, AddressModeV, AddressModeW wgpu.AddressMode
	// MagFilter and MinFilter specify the filtering mode for magnification and minification.
	MagFilter, MinFilter wgpu.FilterMode
	// MipmapFilter specifies the filtering mode for mipmap level selection.
	MipmapFilter wgpu.MipmapFilterMode
	// LodMinClamp and LodMaxClamp specify the minimum and maximum level of detail (LOD) for mipmapping.
	LodMinClamp, LodMaxClamp float32
	// Compare specifies the comparison function for comparison samplers. Unused for video sampling and left at the zero value.
	Compare wgpu.CompareFunction
	// MaxAnisotropy specifies the maximum anisotropy level for anisotropic filtering.
	MaxAnisotropy uint16
}

// VideoSamplerStaging returns the sampler configuration used for spherical video
// textures: clamp-to-edge addressing (half-frame UV ranges must never wrap into
// the other eye's half) with linear filtering and no mipmapping.
//
// Returns:
//   - SamplerStagingData: the video sampler configuration
func VideoSamplerStaging() SamplerStagingData {
	return SamplerStagingData{
		AddressModeU:  wgpu.AddressModeClampToEdge,
		AddressModeV:  wgpu.AddressModeClampToEdge,
		AddressModeW:  wgpu.AddressModeClampToEdge,
		MagFilter:     wgpu.FilterModeLinear,
		MinFilter:     wgpu.FilterModeLinear,
		MipmapFilter:  wgpu.MipmapFilterModeNearest,
		LodMinClamp:   0,
		LodMaxClamp:   0,
		MaxAnisotropy: 1,
	}
}

// PosterImage represents a still image shown on the video sphere before playback starts.
// For embedded posters the Data field contains raw image bytes; otherwise Path points at a file on disk.
type PosterImage struct {
	// Name is an identifier for this image (e.g., "poster").
	Name string

	// Path is the file path for on-disk images (empty for embedded).
	Path string

	// Data contains raw image bytes for embedded images (PNG/JPEG).
	Data []byte

	// Width is the image width in pixels (populated after Decode).
	Width int

	// Height is the image height in pixels (populated after Decode).
	Height int
}

// Decode decodes the poster image to raw RGBA pixel data.
// Uses either embedded Data bytes or loads from Path on disk.
// Supports PNG and JPEG formats.
// Reference: https://pkg.go.dev/image
//
// Returns:
//   - []byte: raw RGBA pixel data (4 bytes per pixel, row-major order)
//   - uint32: image width in pixels
//   - uint32: image height in pixels
//   - error: error if decoding fails
func (p *PosterImage) Decode() ([]byte, uint32, uint32, error) {
	if p == nil {
		return nil, 0, 0, fmt.Errorf("poster image is nil")
	}

	var img image.Image
	var err error

	if len(p.Data) > 0 {
		img, _, err = image.Decode(bytes.NewReader(p.Data))
		if err != nil {
			return nil, 0, 0, fmt.Errorf("failed to decode embedded image: %w", err)
		}
	} else if p.Path != "" {
		file, fileErr := os.Open(p.Path)
		if fileErr != nil {
			return nil, 0, 0, fmt.Errorf("failed to open image file %s: %w", p.Path, fileErr)
		}
		defer file.Close()

		img, _, err = image.Decode(file)
		if err != nil {
			return nil, 0, 0, fmt.Errorf("failed to decode image file %s: %w", p.Path, err)
		}
	} else {
		return nil, 0, 0, fmt.Errorf("poster image has neither data nor path")
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	rgba := image.NewRGBA(bounds)
	draw.Draw(rgba, bounds, img, bounds.Min, draw.Src)

	p.Width = width
	p.Height = height

	return rgba.Pix, uint32(width), uint32(height), nil
}

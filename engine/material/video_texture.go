package material

import (
	"image"
	"image/draw"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"

	"github.com/rinsyan0518/stereo360/common"
)

type videoTexture struct {
	mu *sync.RWMutex

	name    string
	sampler common.SamplerStagingData

	frame        common.FrameStagingData
	hasFrame     bool
	publishedSeq uint64

	generation atomic.Uint64
	pushSeq    atomic.Uint64
	taskID     atomic.Int64

	// stagingPool converts queued frames to RGBA off the scene tick thread.
	// Workers are reused across frames, mirroring how the engine handles
	// per-frame CPU prep elsewhere.
	stagingPool    worker.DynamicWorkerPool
	stagingWorkers int
}

// VideoTexture stages decoded video frames (and an optional poster image) as
// RGBA pixel data for GPU upload. Frames pushed as image.Image are converted
// to RGBA on a background worker pool; frames that finish conversion out of
// order are dropped rather than published stale. The Generation counter lets
// a host uploader detect when a newer frame is available without comparing
// pixel data.
type VideoTexture interface {
	// Name returns the texture identifier.
	//
	// Returns:
	//   - string: the texture name
	Name() string

	// SamplerStaging returns the sampler configuration a host renderer should
	// create for this texture.
	//
	// Returns:
	//   - common.SamplerStagingData: the sampler configuration
	SamplerStaging() common.SamplerStagingData

	// CurrentFrame returns the most recently published frame.
	//
	// Returns:
	//   - common.FrameStagingData: the staged frame (zero value if none)
	//   - bool: true if a frame has been published
	CurrentFrame() (common.FrameStagingData, bool)

	// Generation returns the publish counter. It increments each time a new
	// frame becomes current.
	//
	// Returns:
	//   - uint64: the current generation
	Generation() uint64

	// PushRGBA publishes a frame that is already in RGBA form. The pixel
	// slice is retained; callers must not modify it afterwards.
	//
	// Parameters:
	//   - pixels: RGBA pixel data, 4 bytes per pixel, row-major
	//   - width: frame width in pixels
	//   - height: frame height in pixels
	PushRGBA(pixels []byte, width, height uint32)

	// PushFrame queues a decoded frame for RGBA conversion on the staging
	// pool. If an older frame finishes conversion after a newer one has been
	// published, the older frame is dropped.
	//
	// Parameters:
	//   - img: the decoded frame
	PushFrame(img image.Image)

	// SetPoster decodes the poster image synchronously and publishes it as
	// the current frame. Intended for the pre-playback still.
	//
	// Parameters:
	//   - p: the poster image to decode
	//
	// Returns:
	//   - error: error if decoding fails
	SetPoster(p *common.PosterImage) error

	// Wait blocks until all queued frame conversions have completed.
	Wait()
}

var _ VideoTexture = &videoTexture{}

// NewVideoTexture creates a new VideoTexture with the given options.
// The sampler defaults to the clamp-to-edge video configuration and the
// staging pool to two workers.
//
// Parameters:
//   - options: functional options to configure the texture
//
// Returns:
//   - VideoTexture: the newly created texture
func NewVideoTexture(options ...VideoTextureBuilderOption) VideoTexture {
	t := &videoTexture{
		mu:             &sync.RWMutex{},
		name:           "video",
		sampler:        common.VideoSamplerStaging(),
		stagingWorkers: 2,
	}
	for _, option := range options {
		option(t)
	}
	// Queue size of 16 covers a playback pipeline a few frames ahead of upload.
	t.stagingPool = worker.NewDynamicWorkerPool(t.stagingWorkers, 16, 1*time.Second)
	return t
}

func (t *videoTexture) Name() string {
	return t.name
}

func (t *videoTexture) SamplerStaging() common.SamplerStagingData {
	return t.sampler
}

func (t *videoTexture) CurrentFrame() (common.FrameStagingData, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.frame, t.hasFrame
}

func (t *videoTexture) Generation() uint64 {
	return t.generation.Load()
}

func (t *videoTexture) PushRGBA(pixels []byte, width, height uint32) {
	seq := t.pushSeq.Add(1)
	t.publish(seq, common.FrameStagingData{Pixels: pixels, Width: width, Height: height})
}

func (t *videoTexture) PushFrame(img image.Image) {
	if img == nil {
		return
	}
	seq := t.pushSeq.Add(1)
	t.stagingPool.SubmitTask(worker.Task{
		ID: int(t.taskID.Add(1)),
		Do: func() (any, error) {
			bounds := img.Bounds()
			rgba := image.NewRGBA(bounds)
			draw.Draw(rgba, bounds, img, bounds.Min, draw.Src)
			t.publish(seq, common.FrameStagingData{
				Pixels: rgba.Pix,
				Width:  uint32(bounds.Dx()),
				Height: uint32(bounds.Dy()),
			})
			return nil, nil
		},
	})
}

func (t *videoTexture) SetPoster(p *common.PosterImage) error {
	pixels, width, height, err := p.Decode()
	if err != nil {
		return err
	}
	t.PushRGBA(pixels, width, height)
	return nil
}

func (t *videoTexture) Wait() {
	t.stagingPool.Wait()
}

// publish makes the frame current if no newer frame has been published yet.
func (t *videoTexture) publish(seq uint64, frame common.FrameStagingData) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if seq <= t.publishedSeq {
		return
	}
	t.publishedSeq = seq
	t.frame = frame
	t.hasFrame = true
	t.generation.Add(1)
}

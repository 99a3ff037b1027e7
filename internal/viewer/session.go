// Package viewer implements the interactive parallax viewer: a session
// lifecycle state machine over asynchronously loaded mesh and texture
// assets, and the pointer-driven rotation smoothing consumed each frame.
package viewer

import (
	"context"
	"errors"
	"fmt"
	"image"
	"sync"

	"go.uber.org/zap"

	"github.com/relievo/relievo/internal/logger"
	"github.com/relievo/relievo/internal/mesh"
	"github.com/relievo/relievo/pkg/math"
)

// State is a session lifecycle state.
type State int

// Lifecycle states. Error is terminal; a failed session is torn down and
// recreated rather than retried.
const (
	StateIdle State = iota
	StateLoading
	StateReady
	StateError
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateError:
		return "error"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// Config holds session collaborators and tuning.
type Config struct {
	FetchMesh    func() (*mesh.Data, error)
	FetchTexture func() (image.Image, error)
	Renderer     Renderer

	Sensitivity float32 // Pointer offset to target rotation; 0 means default
	Smoothing   float32 // Per-frame blend toward the target; 0 means default

	Width  int
	Height int
}

// Reference interaction constants.
const (
	defaultSensitivity = 0.001
	defaultSmoothing   = 0.05
)

// Session is one viewer lifetime: created per run, never persisted.
// All render-facing mutation happens on the caller's frame loop; pointer
// and resize events only overwrite their latest values.
type Session struct {
	cfg Config

	mu      sync.Mutex
	state   State
	errMsg  string
	pointer math.Vec2
	current math.Vec2
	target  math.Vec2
	width   int
	height  int

	meshData *mesh.Data
	texture  image.Image
}

// NewSession creates a session in the Idle state.
func NewSession(cfg Config) (*Session, error) {
	if cfg.FetchMesh == nil || cfg.FetchTexture == nil {
		return nil, errors.New("viewer: both fetchers are required")
	}
	if cfg.Renderer == nil {
		return nil, errors.New("viewer: renderer is required")
	}
	if cfg.Sensitivity == 0 {
		cfg.Sensitivity = defaultSensitivity
	}
	if cfg.Smoothing == 0 {
		cfg.Smoothing = defaultSmoothing
	}

	return &Session{
		cfg:    cfg,
		state:  StateIdle,
		width:  cfg.Width,
		height: cfg.Height,
	}, nil
}

// Start moves Idle -> Loading, fetches the mesh and texture concurrently,
// and on success uploads both to the renderer and moves to Ready. Any
// failure short-circuits to the terminal Error state: no partial scene.
// A cancelled context counts as a load failure.
func (s *Session) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.state != StateIdle {
		state := s.state
		s.mu.Unlock()
		return fmt.Errorf("viewer: Start from state %s", state)
	}
	s.state = StateLoading
	s.mu.Unlock()

	logger.Debug("session loading")

	type meshResult struct {
		data *mesh.Data
		err  error
	}
	type texResult struct {
		img image.Image
		err error
	}

	meshCh := make(chan meshResult, 1)
	texCh := make(chan texResult, 1)

	go func() {
		d, err := s.cfg.FetchMesh()
		meshCh <- meshResult{d, err}
	}()
	go func() {
		img, err := s.cfg.FetchTexture()
		texCh <- texResult{img, err}
	}()

	// Join both fetches, failing fast on the first error.
	var md *mesh.Data
	var tex image.Image
	for md == nil || tex == nil {
		select {
		case r := <-meshCh:
			if r.err != nil {
				return s.fail("failed to load mesh data", r.err)
			}
			if r.data == nil {
				return s.fail("failed to load mesh data", errors.New("fetcher returned no data"))
			}
			md = r.data
		case r := <-texCh:
			if r.err != nil {
				return s.fail("failed to load texture", r.err)
			}
			if r.img == nil {
				return s.fail("failed to load texture", errors.New("fetcher returned no image"))
			}
			tex = r.img
		case <-ctx.Done():
			return s.fail("loading cancelled", ctx.Err())
		}
	}

	// Geometry must be sound before the render loop may consume it.
	if err := md.Validate(); err != nil {
		return s.fail("failed to load mesh data", err)
	}

	if err := s.cfg.Renderer.Upload(md, tex); err != nil {
		return s.fail("failed to create render resources", err)
	}

	s.mu.Lock()
	s.meshData = md
	s.texture = tex
	s.state = StateReady
	s.mu.Unlock()

	logger.Info("session ready",
		zap.Int("vertices", len(md.Vertices)),
		zap.Int("faces", len(md.Faces)))
	return nil
}

// fail moves the session to the terminal Error state. The stored message
// is the user-facing one; the log entry keeps the error taxonomy.
func (s *Session) fail(msg string, err error) error {
	s.mu.Lock()
	s.state = StateError
	s.errMsg = msg
	s.mu.Unlock()

	logger.Error("session failed",
		zap.String("class", classify(err)),
		zap.Error(err))
	return fmt.Errorf("%s: %w", msg, err)
}

// classify maps an error to its diagnostic taxonomy bucket.
func classify(err error) string {
	switch {
	case errors.Is(err, mesh.ErrMalformedMesh):
		return "decode"
	case errors.Is(err, mesh.ErrShapeMismatch), errors.Is(err, mesh.ErrInvalidParameter):
		return "invalid-parameter"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "cancelled"
	default:
		return "io"
	}
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// ErrorMessage returns the user-facing message after a failure.
func (s *Session) ErrorMessage() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

// SetPointer records the latest raw pointer offset from the viewport
// center. Last value wins; there is no event queue.
func (s *Session) SetPointer(x, y float32) {
	s.mu.Lock()
	s.pointer = math.Vec2{X: x, Y: y}
	s.mu.Unlock()
}

// Resize records new viewport dimensions and forwards them to the
// renderer so it can recompute the projection aspect. Rotation state is
// untouched; a resize mid-animation must not cause a visible jump.
func (s *Session) Resize(width, height int) {
	s.mu.Lock()
	s.width = width
	s.height = height
	s.mu.Unlock()
	s.cfg.Renderer.Resize(width, height)
}

// Update advances the animation by one frame: derive the target rotation
// from the latest pointer offset and blend the current rotation toward it.
// Horizontal offset drives yaw; vertical offset drives pitch with the sign
// inverted so moving the pointer up tilts the mesh upward. Only a Ready
// session animates.
func (s *Session) Update() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateReady {
		return
	}

	s.target = math.Vec2{
		X: -s.pointer.Y * s.cfg.Sensitivity, // pitch
		Y: s.pointer.X * s.cfg.Sensitivity,  // yaw
	}
	s.current = s.current.Lerp(s.target, s.cfg.Smoothing)
}

// Render draws one frame with the current rotation. Only valid in Ready.
func (s *Session) Render() error {
	s.mu.Lock()
	if s.state != StateReady {
		s.mu.Unlock()
		return fmt.Errorf("viewer: Render in state %s", s.state)
	}
	rot := s.current
	s.mu.Unlock()

	return s.cfg.Renderer.Draw(rot.X, rot.Y)
}

// Rotation returns the current smoothed rotation (pitch, yaw).
func (s *Session) Rotation() math.Vec2 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Mesh returns the loaded mesh data, or nil before Ready.
func (s *Session) Mesh() *mesh.Data {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.meshData
}

// Texture returns the loaded texture, or nil before Ready.
func (s *Session) Texture() image.Image {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.texture
}

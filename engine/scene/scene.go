// package scene provides the node registry and the host-driven lifecycle
// dispatch for behaviors: attach once at binding time, reconfigure after
// attribute changes, and tick once per update cycle, all on the caller's
// goroutine in deterministic attach order.
package scene

import (
	"fmt"
	"sync"

	"github.com/rinsyan0518/stereo360/engine/behavior"
	"github.com/rinsyan0518/stereo360/engine/node"
	"github.com/rinsyan0518/stereo360/engine/render_object"
)

// attachment binds one behavior instance to one node.
type attachment struct {
	nodeID   uint64
	name     string
	instance behavior.Behavior
}

// Scene manages a registry of SceneNodes and the behaviors attached to them,
// with an optional camera for visibility queries. Behavior callbacks run
// synchronously on the goroutine calling Tick/SetNodeAttribute, in the order
// the behaviors were attached. Scenes can be hot-swapped via the Active flag.
// Thread-safe for concurrent access.
type Scene interface {
	// Name returns the scene's identifier.
	Name() string

	// SetName sets the scene's identifier.
	SetName(name string)

	// Active returns whether this scene is currently active for ticking.
	Active() bool

	// SetActive sets whether this scene is active for ticking.
	SetActive(active bool)

	// Camera returns the scene's camera, or nil if none is set.
	Camera() render_object.PerspectiveCamera

	// SetCamera replaces the scene's camera.
	//
	// Parameters:
	//   - cam: the new camera
	SetCamera(cam render_object.PerspectiveCamera)

	// AddNode registers a node in the scene and assigns it an ID.
	//
	// Panics if the node is nil.
	//
	// Parameters:
	//   - n: the node to register
	//
	// Returns:
	//   - uint64: the assigned node ID
	AddNode(n node.SceneNode) uint64

	// Node retrieves a registered node by its ID.
	// Returns nil if not found.
	//
	// Parameters:
	//   - id: the node's unique ID
	//
	// Returns:
	//   - node.SceneNode: the node or nil
	Node(id uint64) node.SceneNode

	// RemoveNode removes a node and all its behavior attachments from the scene.
	//
	// Parameters:
	//   - id: the node's unique ID
	RemoveNode(id uint64)

	// Count returns the number of registered nodes.
	//
	// Returns:
	//   - int: the node count
	Count() int

	// Attach binds a fresh instance of the named behavior to the given node
	// and invokes its Attach callback. Attach always precedes Reconfigure and
	// Tick for the attachment.
	//
	// Parameters:
	//   - nodeID: the target node's ID
	//   - behaviorName: the registered behavior name
	//
	// Returns:
	//   - error: error if the node does not exist or the behavior is unknown
	Attach(nodeID uint64, behaviorName string) error

	// SetNodeAttribute changes an attribute on a registered node and invokes
	// Reconfigure on each of the node's attachments, passing the attribute
	// values from before the change.
	//
	// Parameters:
	//   - nodeID: the target node's ID
	//   - name: the attribute name
	//   - value: the new attribute value
	//
	// Returns:
	//   - error: error if the node does not exist
	SetNodeAttribute(nodeID uint64, name, value string) error

	// Tick invokes the Tick callback of every attachment in attach order.
	// Called by the host loop once per update cycle.
	//
	// Parameters:
	//   - deltaTime: elapsed time since the last tick in seconds
	Tick(deltaTime float32)

	// VisibleObjects returns the render objects of all registered nodes whose
	// layer membership is enabled on the scene camera, in node registration
	// order. Camera objects are skipped. Returns nil if no camera is set.
	//
	// Returns:
	//   - []render_object.RenderObject: the visible objects
	VisibleObjects() []render_object.RenderObject
}

type sceneImpl struct {
	mu *sync.RWMutex

	name   string
	active bool

	registry map[uint64]node.SceneNode
	order    []uint64 // node IDs in registration order, for deterministic queries
	nextID   uint64

	attachments []attachment

	cam render_object.PerspectiveCamera
}

var _ Scene = &sceneImpl{}

// NewScene creates a new Scene with the given name and options.
//
// Parameters:
//   - name: the name of the scene
//   - options: functional options to further configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(name string, options ...SceneBuilderOption) Scene {
	s := &sceneImpl{
		mu:       &sync.RWMutex{},
		name:     name,
		active:   false,
		registry: make(map[uint64]node.SceneNode),
		nextID:   1,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *sceneImpl) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

func (s *sceneImpl) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
}

func (s *sceneImpl) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

func (s *sceneImpl) SetActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = active
}

func (s *sceneImpl) Camera() render_object.PerspectiveCamera {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cam
}

func (s *sceneImpl) SetCamera(cam render_object.PerspectiveCamera) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cam = cam
}

func (s *sceneImpl) AddNode(n node.SceneNode) uint64 {
	if n == nil {
		panic("scene: AddNode requires a non-nil node")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	n.SetID(id)
	s.registry[id] = n
	s.order = append(s.order, id)
	return id
}

func (s *sceneImpl) Node(id uint64) node.SceneNode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.registry[id]
}

func (s *sceneImpl) RemoveNode(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.registry[id]; !ok {
		return
	}
	delete(s.registry, id)
	for i, nid := range s.order {
		if nid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	kept := s.attachments[:0]
	for _, a := range s.attachments {
		if a.nodeID != id {
			kept = append(kept, a)
		}
	}
	s.attachments = kept
}

func (s *sceneImpl) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.registry)
}

func (s *sceneImpl) Attach(nodeID uint64, behaviorName string) error {
	s.mu.Lock()
	n, ok := s.registry[nodeID]
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("scene: no node with ID %d", nodeID)
	}
	inst, err := behavior.New(behaviorName)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.attachments = append(s.attachments, attachment{
		nodeID:   nodeID,
		name:     behaviorName,
		instance: inst,
	})
	s.mu.Unlock()

	// Callbacks run outside the scene lock so behaviors can freely mutate
	// their node without ordering constraints against other scene calls.
	inst.Attach(n)
	return nil
}

func (s *sceneImpl) SetNodeAttribute(nodeID uint64, name, value string) error {
	s.mu.RLock()
	n, ok := s.registry[nodeID]
	if !ok {
		s.mu.RUnlock()
		return fmt.Errorf("scene: no node with ID %d", nodeID)
	}
	targets := make([]attachment, 0, len(s.attachments))
	for _, a := range s.attachments {
		if a.nodeID == nodeID {
			targets = append(targets, a)
		}
	}
	s.mu.RUnlock()

	old := n.Snapshot()
	n.SetAttribute(name, value)
	for _, a := range targets {
		a.instance.Reconfigure(n, old)
	}
	return nil
}

func (s *sceneImpl) Tick(deltaTime float32) {
	s.mu.RLock()
	targets := make([]attachment, len(s.attachments))
	copy(targets, s.attachments)
	nodes := make(map[uint64]node.SceneNode, len(targets))
	for _, a := range targets {
		nodes[a.nodeID] = s.registry[a.nodeID]
	}
	s.mu.RUnlock()

	for _, a := range targets {
		if n := nodes[a.nodeID]; n != nil {
			a.instance.Tick(n, deltaTime)
		}
	}
}

func (s *sceneImpl) VisibleObjects() []render_object.RenderObject {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.cam == nil {
		return nil
	}
	var visible []render_object.RenderObject
	for _, id := range s.order {
		n := s.registry[id]
		for _, obj := range n.Objects() {
			if obj.TypeTag() == render_object.TypeTagPerspectiveCamera {
				continue
			}
			if s.cam.Sees(obj) {
				visible = append(visible, obj)
			}
		}
	}
	return visible
}

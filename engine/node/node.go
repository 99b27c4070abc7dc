// package node provides the scene-graph node behaviors attach to: a named
// set of declarative string attributes plus the child render objects the node
// owns. Node lifecycle is driven by the scene; behaviors only read and mutate
// attributes and children of nodes they are attached to.
package node

import (
	"strconv"
	"sync"

	"github.com/rinsyan0518/stereo360/engine/render_object"
)

// AttributeSnapshot is a point-in-time copy of a node's attribute values,
// handed to behaviors on reconfiguration so they can compare old and new
// configuration.
type AttributeSnapshot map[string]string

type sceneNode struct {
	mu *sync.RWMutex

	id      uint64
	name    string
	attrs   map[string]string
	objects []render_object.RenderObject
}

// SceneNode is a node in the scene graph. Attributes are declarative strings
// with typed read helpers; children are the render objects (meshes, cameras)
// the node owns. Behaviors discover their configuration through the typed
// attribute reads, which apply defaults and enumerated-choice validation.
type SceneNode interface {
	// ID returns the node's scene-assigned identifier (0 before registration).
	//
	// Returns:
	//   - uint64: the node ID
	ID() uint64

	// SetID sets the node's identifier. Called by the scene on registration.
	//
	// Parameters:
	//   - id: the ID to assign
	SetID(id uint64)

	// Name returns the node's identifier string.
	//
	// Returns:
	//   - string: the node name
	Name() string

	// HasAttribute reports whether the named attribute is declared on the node.
	//
	// Parameters:
	//   - name: the attribute name
	//
	// Returns:
	//   - bool: true if the attribute is present
	HasAttribute(name string) bool

	// Attribute returns the raw value of the named attribute.
	//
	// Parameters:
	//   - name: the attribute name
	//
	// Returns:
	//   - string: the attribute value ("" if absent)
	//   - bool: true if the attribute is present
	Attribute(name string) (string, bool)

	// SetAttribute declares or replaces the named attribute.
	//
	// Parameters:
	//   - name: the attribute name
	//   - value: the value to set
	SetAttribute(name, value string)

	// AttrString reads the named attribute as a string with a default and an
	// optional set of enumerated choices. If the attribute is absent, or
	// choices are given and the value is not among them, the default is
	// returned.
	//
	// Parameters:
	//   - name: the attribute name
	//   - def: the default value
	//   - choices: permitted values (empty = any value allowed)
	//
	// Returns:
	//   - string: the attribute value or the default
	AttrString(name, def string, choices ...string) string

	// AttrFloat reads the named attribute as a float32. The default is
	// returned if the attribute is absent or does not parse.
	//
	// Parameters:
	//   - name: the attribute name
	//   - def: the default value
	//
	// Returns:
	//   - float32: the parsed value or the default
	AttrFloat(name string, def float32) float32

	// AttrInt reads the named attribute as an int. The default is returned
	// if the attribute is absent or does not parse.
	//
	// Parameters:
	//   - name: the attribute name
	//   - def: the default value
	//
	// Returns:
	//   - int: the parsed value or the default
	AttrInt(name string, def int) int

	// Snapshot returns a copy of all attribute values.
	//
	// Returns:
	//   - AttributeSnapshot: the copied attributes
	Snapshot() AttributeSnapshot

	// Objects returns a copy of the node's immediate child render objects in
	// insertion order.
	//
	// Returns:
	//   - []render_object.RenderObject: the child objects
	Objects() []render_object.RenderObject

	// AddObject appends a child render object to the node.
	//
	// Parameters:
	//   - obj: the render object to add
	AddObject(obj render_object.RenderObject)

	// FirstObject returns the node's first child render object, or nil if
	// the node has no children.
	//
	// Returns:
	//   - render_object.RenderObject: the first child or nil
	FirstObject() render_object.RenderObject

	// FindObjectByTypeTag returns the first immediate child whose type tag
	// matches, or nil if none does.
	//
	// Parameters:
	//   - tag: the type tag to match (e.g. render_object.TypeTagPerspectiveCamera)
	//
	// Returns:
	//   - render_object.RenderObject: the matching child or nil
	FindObjectByTypeTag(tag string) render_object.RenderObject
}

var _ SceneNode = &sceneNode{}

// NewSceneNode creates a new SceneNode configured with the given options.
//
// Parameters:
//   - options: functional options to configure the node
//
// Returns:
//   - SceneNode: the newly created node
func NewSceneNode(options ...SceneNodeBuilderOption) SceneNode {
	n := &sceneNode{
		mu:    &sync.RWMutex{},
		name:  "node",
		attrs: make(map[string]string),
	}
	for _, option := range options {
		option(n)
	}
	return n
}

func (n *sceneNode) ID() uint64 {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.id
}

func (n *sceneNode) SetID(id uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.id = id
}

func (n *sceneNode) Name() string {
	return n.name
}

func (n *sceneNode) HasAttribute(name string) bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	_, ok := n.attrs[name]
	return ok
}

func (n *sceneNode) Attribute(name string) (string, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	v, ok := n.attrs[name]
	return v, ok
}

func (n *sceneNode) SetAttribute(name, value string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.attrs[name] = value
}

func (n *sceneNode) AttrString(name, def string, choices ...string) string {
	v, ok := n.Attribute(name)
	if !ok {
		return def
	}
	if len(choices) == 0 {
		return v
	}
	for _, c := range choices {
		if v == c {
			return v
		}
	}
	return def
}

func (n *sceneNode) AttrFloat(name string, def float32) float32 {
	v, ok := n.Attribute(name)
	if !ok {
		return def
	}
	f, err := strconv.ParseFloat(v, 32)
	if err != nil {
		return def
	}
	return float32(f)
}

func (n *sceneNode) AttrInt(name string, def int) int {
	v, ok := n.Attribute(name)
	if !ok {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

func (n *sceneNode) Snapshot() AttributeSnapshot {
	n.mu.RLock()
	defer n.mu.RUnlock()
	snap := make(AttributeSnapshot, len(n.attrs))
	for k, v := range n.attrs {
		snap[k] = v
	}
	return snap
}

func (n *sceneNode) Objects() []render_object.RenderObject {
	n.mu.RLock()
	defer n.mu.RUnlock()
	objs := make([]render_object.RenderObject, len(n.objects))
	copy(objs, n.objects)
	return objs
}

func (n *sceneNode) AddObject(obj render_object.RenderObject) {
	if obj == nil {
		return
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	n.objects = append(n.objects, obj)
}

func (n *sceneNode) FirstObject() render_object.RenderObject {
	n.mu.RLock()
	defer n.mu.RUnlock()
	if len(n.objects) == 0 {
		return nil
	}
	return n.objects[0]
}

func (n *sceneNode) FindObjectByTypeTag(tag string) render_object.RenderObject {
	n.mu.RLock()
	defer n.mu.RUnlock()
	for _, obj := range n.objects {
		if obj.TypeTag() == tag {
			return obj
		}
	}
	return nil
}

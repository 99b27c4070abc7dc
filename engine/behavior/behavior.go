// package behavior defines the lifecycle contract for node behaviors and a
// registry of named behavior factories. Each attachment of a behavior to a
// node gets its own instance, so per-attachment state lives on the instance
// rather than in globals.
package behavior

import (
	"github.com/rinsyan0518/stereo360/engine/node"
)

// Behavior is a unit of logic attached to a single SceneNode. The scene
// drives the lifecycle: Attach is called exactly once when the behavior is
// bound to its node, Reconfigure after any of the node's attributes change,
// and Tick once per scene update cycle. Attach always precedes Reconfigure
// and Tick for the same node.
//
// Behaviors never return errors: unmet preconditions (missing attributes,
// unrecognized geometry, missing children) are silent no-ops, keeping
// attachments tolerant of host scene graphs whose shape varies by version.
type Behavior interface {
	// Attach is called once when the behavior is bound to its node.
	//
	// Parameters:
	//   - n: the node this behavior instance is attached to
	Attach(n node.SceneNode)

	// Reconfigure is called after one of the node's attributes has changed.
	//
	// Parameters:
	//   - n: the attached node, already carrying the new attribute values
	//   - old: the node's attribute values before the change
	Reconfigure(n node.SceneNode, old node.AttributeSnapshot)

	// Tick is called once per scene update cycle.
	//
	// Parameters:
	//   - n: the attached node
	//   - deltaTime: elapsed time since the previous tick in seconds
	Tick(n node.SceneNode, deltaTime float32)
}

// Factory produces a fresh Behavior instance for one attachment.
type Factory func() Behavior

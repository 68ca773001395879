package infinicanvas

// PointerEvent is a pointer sample reduced to what the canvas needs.
type PointerEvent struct {
	Kind   PointerKind
	Button MouseButton
	// Local is the pointer position relative to the canvas top-left.
	Local Vec2
	// Client is the absolute pointer position as reported by the host.
	// Hosts without a separate frame may set it equal to Local.
	Client Vec2
	// Target is the ID of the node under Local, or "" for none. The
	// PointerController fills it in before reducing; callers driving
	// ReducePointer directly set it themselves.
	Target string
}

// InteractionMode is the current pan/drag gesture.
type InteractionMode uint8

const (
	ModeIdle         InteractionMode = iota // no gesture in progress
	ModePanning                             // dragging the empty canvas
	ModeDraggingNode                        // dragging a node
)

func (m InteractionMode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModePanning:
		return "panning"
	case ModeDraggingNode:
		return "dragging-node"
	default:
		return "unknown"
	}
}

// PointerState is the state of the pan/drag machine between events.
type PointerState struct {
	Mode InteractionMode
	// Last is the previous pointer sample of the active gesture: client
	// coordinates while panning, local coordinates while dragging.
	Last Vec2
	// NodeID is the node being dragged.
	NodeID string
	// Hovered is the last hover target reported through an effect.
	Hovered string
}

// EffectKind identifies what an Effect asks the engine to do.
type EffectKind uint8

const (
	EffectPan      EffectKind = iota // pan the camera by Delta (screen units)
	EffectMoveNode                   // move NodeID by Delta (screen units)
	EffectSelect                     // select NodeID; "" clears
	EffectHover                      // hover NodeID; "" clears
)

func (k EffectKind) String() string {
	switch k {
	case EffectPan:
		return "pan"
	case EffectMoveNode:
		return "move-node"
	case EffectSelect:
		return "select"
	case EffectHover:
		return "hover"
	default:
		return "unknown"
	}
}

// Effect is a side effect produced by ReducePointer.
type Effect struct {
	Kind   EffectKind
	NodeID string
	Delta  Vec2
}

// ReducePointer advances the pan/drag machine by one event and returns the
// new state plus the effects to apply, in order. It has no side effects.
//
// Only the primary button starts or ends a gesture. Pointer-up and
// pointer-leave always return to idle and clear the selection. Hover is
// tracked only while idle.
func ReducePointer(state PointerState, ev PointerEvent) (PointerState, []Effect) {
	switch ev.Kind {
	case PointerDown:
		if ev.Button != MouseButtonLeft || state.Mode != ModeIdle {
			return state, nil
		}
		if ev.Target != "" {
			state.Mode = ModeDraggingNode
			state.NodeID = ev.Target
			state.Last = ev.Local
			return state, []Effect{{Kind: EffectSelect, NodeID: ev.Target}}
		}
		state.Mode = ModePanning
		state.NodeID = ""
		state.Last = ev.Client
		return state, nil

	case PointerMove:
		switch state.Mode {
		case ModePanning:
			delta := ev.Client.Sub(state.Last)
			state.Last = ev.Client
			if delta == (Vec2{}) {
				return state, nil
			}
			return state, []Effect{{Kind: EffectPan, Delta: delta}}
		case ModeDraggingNode:
			delta := ev.Local.Sub(state.Last)
			state.Last = ev.Local
			if delta == (Vec2{}) {
				return state, nil
			}
			return state, []Effect{{Kind: EffectMoveNode, NodeID: state.NodeID, Delta: delta}}
		default:
			if ev.Target == state.Hovered {
				return state, nil
			}
			state.Hovered = ev.Target
			return state, []Effect{{Kind: EffectHover, NodeID: ev.Target}}
		}

	case PointerUp:
		if ev.Button != MouseButtonLeft {
			return state, nil
		}
		return endGesture(state), []Effect{{Kind: EffectSelect}}

	case PointerLeave:
		effects := []Effect{{Kind: EffectSelect}}
		if state.Hovered != "" {
			effects = append(effects, Effect{Kind: EffectHover})
		}
		state = endGesture(state)
		state.Hovered = ""
		return state, effects
	}
	return state, nil
}

func endGesture(state PointerState) PointerState {
	state.Mode = ModeIdle
	state.Last = Vec2{}
	state.NodeID = ""
	return state
}

// PointerController runs the pan/drag machine against an Engine: it
// resolves hit tests, reduces each event and applies the effects.
type PointerController struct {
	engine *Engine
	state  PointerState
}

// NewPointerController creates an idle controller for e.
func NewPointerController(e *Engine) *PointerController {
	return &PointerController{engine: e}
}

// State returns the current machine state.
func (c *PointerController) State() PointerState {
	return c.state
}

// HandlePointer feeds one pointer event through the machine.
func (c *PointerController) HandlePointer(ev PointerEvent) {
	if ev.Kind == PointerDown || (ev.Kind == PointerMove && c.state.Mode == ModeIdle) {
		ev.Target = ""
		if n, ok := c.engine.HitTestNodeAtScreenPoint(ev.Local); ok {
			ev.Target = n.ID
		}
	}
	prev := c.state.Mode
	var effects []Effect
	c.state, effects = ReducePointer(c.state, ev)
	if c.state.Mode != prev {
		Logger().Debug("pointer mode",
			"from", prev.String(),
			"to", c.state.Mode.String(),
			"node", c.state.NodeID,
		)
	}
	c.apply(effects)
}

func (c *PointerController) apply(effects []Effect) {
	for _, fx := range effects {
		switch fx.Kind {
		case EffectPan:
			c.engine.PanByScreenDelta(fx.Delta)
		case EffectMoveNode:
			c.engine.MoveNodeByScreenDelta(fx.NodeID, fx.Delta)
		case EffectSelect:
			c.engine.SelectNode(fx.NodeID)
		case EffectHover:
			c.engine.HoverNode(fx.NodeID)
		}
	}
}

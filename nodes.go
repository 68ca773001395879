package infinicanvas

// Node is a labeled ellipse positioned in world space.
type Node struct {
	// ID is assigned by the caller. Lookups match the first node with the
	// given ID; duplicates are a caller error.
	ID string
	// Center is the ellipse center in world space.
	Center Vec2
	// Radius holds the world-space half-extents along X and Y.
	Radius Vec2
	Label  string
}

// NodeUpdate is a partial update applied by NodeLayer.UpdateNode. Nil fields
// are left unchanged.
type NodeUpdate struct {
	Center *Vec2
	Radius *Vec2
	Label  *string
}

// NodeStyle is the fill and outline used to draw a node in one state.
type NodeStyle struct {
	Fill      Color
	Stroke    Color
	LineWidth float64
}

// DefaultFontSize is the label size in screen units at scale 1.
const DefaultFontSize = 16.0

// NodeLayer stores the ellipse nodes in insertion order and renders them.
// It also tracks which node is selected and which is hovered; either may name
// an ID that no longer exists, in which case it simply matches nothing.
type NodeLayer struct {
	Default  NodeStyle
	Hovered  NodeStyle
	Selected NodeStyle

	TextColor    Color
	BaseFontSize float64

	// CullEnabled skips nodes whose screen bounds miss the viewport.
	CullEnabled bool

	nodes    []Node
	selected string
	hovered  string
}

// NewNodeLayer creates an empty node layer with the default styles.
func NewNodeLayer() *NodeLayer {
	return &NodeLayer{
		Default:      NodeStyle{Fill: ColorWhite, Stroke: ColorNodeStroke, LineWidth: 2},
		Hovered:      NodeStyle{Fill: ColorHoverFill, Stroke: ColorHovered, LineWidth: 2},
		Selected:     NodeStyle{Fill: ColorWhite, Stroke: ColorSelected, LineWidth: 3},
		TextColor:    ColorNodeText,
		BaseFontSize: DefaultFontSize,
		CullEnabled:  true,
	}
}

// --- Store ---

// SetNodes replaces the whole collection. The slice is copied.
func (l *NodeLayer) SetNodes(nodes []Node) {
	l.nodes = append(l.nodes[:0:0], nodes...)
}

// AddNode appends a node after all existing nodes.
func (l *NodeLayer) AddNode(n Node) {
	l.nodes = append(l.nodes, n)
}

// index returns the position of the first node with the given ID, or -1.
func (l *NodeLayer) index(id string) int {
	for i := range l.nodes {
		if l.nodes[i].ID == id {
			return i
		}
	}
	return -1
}

// UpdateNode applies a partial update. Reports whether a node matched.
func (l *NodeLayer) UpdateNode(id string, u NodeUpdate) bool {
	i := l.index(id)
	if i < 0 {
		return false
	}
	n := &l.nodes[i]
	if u.Center != nil {
		n.Center = *u.Center
	}
	if u.Radius != nil {
		n.Radius = *u.Radius
	}
	if u.Label != nil {
		n.Label = *u.Label
	}
	return true
}

// MoveNode adds deltaWorld to the node's center. Unknown IDs are ignored.
func (l *NodeLayer) MoveNode(id string, deltaWorld Vec2) bool {
	i := l.index(id)
	if i < 0 {
		return false
	}
	l.nodes[i].Center = l.nodes[i].Center.Add(deltaWorld)
	return true
}

// ResizeNode replaces the node's world-space radius.
func (l *NodeLayer) ResizeNode(id string, radius Vec2) bool {
	return l.UpdateNode(id, NodeUpdate{Radius: &radius})
}

// SetLabel replaces the node's label.
func (l *NodeLayer) SetLabel(id, label string) bool {
	return l.UpdateNode(id, NodeUpdate{Label: &label})
}

// RemoveNode deletes the first node with the given ID, preserving the order
// of the rest. Selection and hover state are left alone.
func (l *NodeLayer) RemoveNode(id string) bool {
	i := l.index(id)
	if i < 0 {
		return false
	}
	copy(l.nodes[i:], l.nodes[i+1:])
	l.nodes[len(l.nodes)-1] = Node{}
	l.nodes = l.nodes[:len(l.nodes)-1]
	return true
}

// --- Query ---

// Nodes returns a copy of the collection in storage order.
func (l *NodeLayer) Nodes() []Node {
	return append([]Node(nil), l.nodes...)
}

// Len returns the number of stored nodes.
func (l *NodeLayer) Len() int {
	return len(l.nodes)
}

// Node returns the first node with the given ID.
func (l *NodeLayer) Node(id string) (Node, bool) {
	i := l.index(id)
	if i < 0 {
		return Node{}, false
	}
	return l.nodes[i], true
}

// SetSelected marks id as selected. An empty id clears the selection.
func (l *NodeLayer) SetSelected(id string) {
	l.selected = id
}

// SetHovered marks id as hovered. An empty id clears the hover.
func (l *NodeLayer) SetHovered(id string) {
	l.hovered = id
}

// SelectedID returns the selected ID, or "" when nothing is selected.
func (l *NodeLayer) SelectedID() string {
	return l.selected
}

// HoveredID returns the hovered ID, or "" when nothing is hovered.
func (l *NodeLayer) HoveredID() string {
	return l.hovered
}

// SelectedNode returns the selected node, if the selected ID still matches one.
func (l *NodeLayer) SelectedNode() (Node, bool) {
	if l.selected == "" {
		return Node{}, false
	}
	return l.Node(l.selected)
}

// HoveredNode returns the hovered node, if the hovered ID still matches one.
func (l *NodeLayer) HoveredNode() (Node, bool) {
	if l.hovered == "" {
		return Node{}, false
	}
	return l.Node(l.hovered)
}

// Bounds returns the world-space bounding rectangle of every node's ellipse.
// Reports false when the layer is empty.
func (l *NodeLayer) Bounds() (Rect, bool) {
	if len(l.nodes) == 0 {
		return Rect{}, false
	}
	n := l.nodes[0]
	minX, minY := n.Center.X-n.Radius.X, n.Center.Y-n.Radius.Y
	maxX, maxY := n.Center.X+n.Radius.X, n.Center.Y+n.Radius.Y
	for _, n := range l.nodes[1:] {
		minX = min(minX, n.Center.X-n.Radius.X)
		minY = min(minY, n.Center.Y-n.Radius.Y)
		maxX = max(maxX, n.Center.X+n.Radius.X)
		maxY = max(maxY, n.Center.Y+n.Radius.Y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}, true
}

// --- Hit testing ---

// insideEllipse reports whether offset p from an ellipse center lies inside
// or on an ellipse with half-extents r.
func insideEllipse(p, r Vec2) bool {
	return (p.X*p.X)/(r.X*r.X)+(p.Y*p.Y)/(r.Y*r.Y) <= 1
}

// HitTest returns the first node, in storage order, whose screen-projected
// ellipse contains screenPoint. Points on the boundary count as inside.
func (l *NodeLayer) HitTest(screenPoint Vec2, cam *Camera, vp ViewportSize) (Node, bool) {
	for i := range l.nodes {
		n := &l.nodes[i]
		center := cam.WorldToScreen(n.Center, vp)
		if insideEllipse(screenPoint.Sub(center), n.Radius.Scale(cam.Scale)) {
			return *n, true
		}
	}
	return Node{}, false
}

// --- Rendering ---

// styleFor picks the node's style with precedence selected > hovered > default.
func (l *NodeLayer) styleFor(id string) NodeStyle {
	switch {
	case l.selected != "" && id == l.selected:
		return l.Selected
	case l.hovered != "" && id == l.hovered:
		return l.Hovered
	default:
		return l.Default
	}
}

// Draw renders every node as a filled and outlined ellipse with its label
// centered inside. Label size follows the camera scale.
func (l *NodeLayer) Draw(dst Surface, cam *Camera, vp ViewportSize) {
	if vp.Empty() {
		return
	}
	fontSize := l.BaseFontSize * cam.Scale
	screen := Rect{Width: vp.Width, Height: vp.Height}

	for i := range l.nodes {
		n := &l.nodes[i]
		c := cam.WorldToScreen(n.Center, vp)
		r := n.Radius.Scale(cam.Scale)

		if l.CullEnabled && !screen.Intersects(Rect{X: c.X - r.X, Y: c.Y - r.Y, Width: 2 * r.X, Height: 2 * r.Y}) {
			continue
		}

		style := l.styleFor(n.ID)
		dst.FillEllipse(c.X, c.Y, r.X, r.Y, style.Fill)
		dst.StrokeEllipse(c.X, c.Y, r.X, r.Y, style.LineWidth, style.Stroke)
		if n.Label != "" {
			dst.DrawText(n.Label, c.X, c.Y, fontSize, l.TextColor)
		}
	}
}

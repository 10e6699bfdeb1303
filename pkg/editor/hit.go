package editor

// Class names the host puts on its nodes so [Resolve] can classify them.
const (
	ClassItem       = "item-handler"
	ClassResize     = "resize-handler"
	ClassScrollbarX = "sb-x-handler"
	ClassScrollbarY = "sb-y-handler"
)

// Data attribute names read by [Resolve].
const (
	DataKey  = "key"
	DataMode = "mode"
)

// Node is a minimal view of a host widget tree: parent links, class
// membership and string data attributes.
type Node interface {
	Parent() Node
	HasClass(class string) bool
	Data(name string) string
}

// HasAncestor reports whether n or any of its ancestors carries class.
func HasAncestor(n Node, class string) bool {
	return Ancestor(n, class) != nil
}

// Ancestor returns the closest node, starting at n itself, that carries
// class, or nil.
func Ancestor(n Node, class string) Node {
	for ; n != nil; n = n.Parent() {
		if n.HasClass(class) {
			return n
		}
	}
	return nil
}

// IsAncestor reports whether ancestor is n or one of its ancestors.
func IsAncestor(n, ancestor Node) bool {
	for ; n != nil; n = n.Parent() {
		if n == ancestor {
			return true
		}
	}
	return false
}

// Resolve classifies the node under the pointer. Handles and items are
// recognized through their item ancestor; a resize handle outside any item
// resolves to [HitNone]. Every other node is empty canvas.
func Resolve(n Node) HitTarget {
	if n == nil {
		return HitTarget{Kind: HitNone}
	}
	if n.HasClass(ClassResize) {
		item := Ancestor(n, ClassItem)
		if item == nil {
			return HitTarget{Kind: HitNone}
		}
		return OnHandle(item.Data(DataKey), Direction(n.Data(DataMode)))
	}
	if item := Ancestor(n, ClassItem); item != nil {
		return OnItem(item.Data(DataKey))
	}
	switch {
	case n.HasClass(ClassScrollbarX):
		return HitTarget{Kind: HitScrollbarX}
	case n.HasClass(ClassScrollbarY):
		return HitTarget{Kind: HitScrollbarY}
	}
	return HitTarget{Kind: HitCanvas}
}

// Element is a simple [Node] implementation for hosts without a widget tree
// of their own, and for tests.
type Element struct {
	Classes []string
	Dataset map[string]string
	Up      *Element
}

// Parent implements [Node].
func (e *Element) Parent() Node {
	if e == nil || e.Up == nil {
		return nil
	}
	return e.Up
}

// HasClass implements [Node].
func (e *Element) HasClass(class string) bool {
	if e == nil {
		return false
	}
	for _, c := range e.Classes {
		if c == class {
			return true
		}
	}
	return false
}

// Data implements [Node].
func (e *Element) Data(name string) string {
	if e == nil {
		return ""
	}
	return e.Dataset[name]
}

package collisions

import "fmt"

// nullNode marks an empty arena slot reference.
const nullNode int32 = -1

// treeNode is one slot in the tree's node arena. A leaf owns exactly one
// body; an internal node owns exactly two children and a box equal to the
// union of their boxes. Free slots are chained through parentOrNext.
type treeNode struct {
	box          Box
	parentOrNext int32 // parent when allocated, next free slot otherwise
	child1       int32
	child2       int32
	body         Body // non-nil for leaves
}

func (n *treeNode) isLeaf() bool { return n.child1 == nullNode }

// Tree is a dynamic bounding-volume tree over body bounding boxes: the
// broad phase. Nodes live in an indexable arena with a free list; each
// indexed body holds a non-owning handle to its leaf slot for O(1)
// removal, invalidated when the body leaves the tree.
//
// Insert, remove, and refit are amortized O(log n); queries are
// O(log n + k) for k overlapping leaves. Insertion uses a best-fit
// descent with no rebalancing, so query cost degrades gracefully (never
// catastrophically) as insertion order worsens tree quality.
//
// Not safe for concurrent use.
type Tree struct {
	root     int32
	nodes    []treeNode
	freeList int32
	count    int     // leaves
	stack    []int32 // reused query traversal stack
}

// NewTree creates an empty tree.
func NewTree() *Tree {
	t := &Tree{root: nullNode, freeList: nullNode}
	t.grow(16)
	return t
}

// Count returns the number of indexed bodies.
func (t *Tree) Count() int { return t.count }

// grow appends n free slots to the arena.
func (t *Tree) grow(n int) {
	base := int32(len(t.nodes))
	t.nodes = append(t.nodes, make([]treeNode, n)...)
	for i := base; i < base+int32(n); i++ {
		t.nodes[i].parentOrNext = i + 1
		t.nodes[i].child1 = nullNode
	}
	t.nodes[base+int32(n)-1].parentOrNext = t.freeList
	t.freeList = base
}

func (t *Tree) allocNode() int32 {
	if t.freeList == nullNode {
		t.grow(len(t.nodes))
	}
	i := t.freeList
	t.freeList = t.nodes[i].parentOrNext
	t.nodes[i] = treeNode{parentOrNext: nullNode, child1: nullNode, child2: nullNode}
	return i
}

func (t *Tree) freeNode(i int32) {
	t.nodes[i] = treeNode{parentOrNext: t.freeList, child1: nullNode, child2: nullNode}
	t.freeList = i
}

// Insert adds a body to the tree under its current padded bounding box.
// A body may be indexed at most once; inserting an already-indexed body
// returns ErrAlreadyIndexed and leaves the tree unchanged.
func (t *Tree) Insert(b Body) error {
	if b.leaf() != nullNode {
		return fmt.Errorf("body %d: %w", b.ID(), ErrAlreadyIndexed)
	}
	leaf := t.allocNode()
	t.nodes[leaf].box = b.BBox()
	t.nodes[leaf].body = b
	b.setLeaf(leaf)
	t.insertLeaf(leaf)
	t.count++
	return nil
}

// insertLeaf descends from the root choosing at each internal node the
// child whose box grows least (by merged area) to include the leaf, with
// box proximity as the tie-break, then splices a new internal node in at
// the chosen position and refits every ancestor box.
func (t *Tree) insertLeaf(leaf int32) {
	if t.root == nullNode {
		t.root = leaf
		t.nodes[leaf].parentOrNext = nullNode
		return
	}

	leafBox := t.nodes[leaf].box
	index := t.root
	for !t.nodes[index].isLeaf() {
		c1 := t.nodes[index].child1
		c2 := t.nodes[index].child2
		box1 := t.nodes[c1].box
		box2 := t.nodes[c2].box

		cost1 := box2.Area() + box1.Union(leafBox).Area()
		cost2 := box1.Area() + box2.Union(leafBox).Area()
		if cost1 == cost2 {
			cost1 = proximity(box1, leafBox)
			cost2 = proximity(box2, leafBox)
		}
		if cost2 < cost1 {
			index = c2
		} else {
			index = c1
		}
	}

	sibling := index
	oldParent := t.nodes[sibling].parentOrNext
	newParent := t.allocNode()
	t.nodes[newParent].parentOrNext = oldParent
	t.nodes[newParent].box = leafBox.Union(t.nodes[sibling].box)
	t.nodes[newParent].child1 = sibling
	t.nodes[newParent].child2 = leaf
	t.nodes[sibling].parentOrNext = newParent
	t.nodes[leaf].parentOrNext = newParent

	if oldParent == nullNode {
		t.root = newParent
	} else if t.nodes[oldParent].child1 == sibling {
		t.nodes[oldParent].child1 = newParent
	} else {
		t.nodes[oldParent].child2 = newParent
	}

	t.refitAncestors(oldParent)
}

// refitAncestors walks from index to the root recomputing box unions.
func (t *Tree) refitAncestors(index int32) {
	for index != nullNode {
		n := &t.nodes[index]
		n.box = t.nodes[n.child1].box.Union(t.nodes[n.child2].box)
		index = n.parentOrNext
	}
}

// proximity measures how close two boxes sit: the L1 distance between
// their center-sums. Used only to break cost ties during descent.
func proximity(a, b Box) float64 {
	dx := (a.MinX + a.MaxX) - (b.MinX + b.MaxX)
	dy := (a.MinY + a.MaxY) - (b.MinY + b.MaxY)
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// Remove takes a body out of the tree via its leaf handle. Removing a
// body that is not indexed returns ErrNotIndexed and never corrupts the
// tree.
func (t *Tree) Remove(b Body) error {
	leaf := b.leaf()
	if leaf == nullNode {
		return fmt.Errorf("body %d: %w", b.ID(), ErrNotIndexed)
	}
	b.setLeaf(nullNode)
	t.removeLeaf(leaf)
	t.freeNode(leaf)
	t.count--
	return nil
}

// removeLeaf detaches a leaf: its sibling is promoted into the parent's
// slot and every remaining ancestor box is refit. The leaf slot itself is
// not freed, so refits can reuse it.
func (t *Tree) removeLeaf(leaf int32) {
	if leaf == t.root {
		t.root = nullNode
		return
	}

	parent := t.nodes[leaf].parentOrNext
	grand := t.nodes[parent].parentOrNext
	var sibling int32
	if t.nodes[parent].child1 == leaf {
		sibling = t.nodes[parent].child2
	} else {
		sibling = t.nodes[parent].child1
	}

	if grand == nullNode {
		t.root = sibling
		t.nodes[sibling].parentOrNext = nullNode
	} else {
		if t.nodes[grand].child1 == parent {
			t.nodes[grand].child1 = sibling
		} else {
			t.nodes[grand].child2 = sibling
		}
		t.nodes[sibling].parentOrNext = grand
		t.refitAncestors(grand)
	}
	t.freeNode(parent)
}

// Refit reindexes the body if its current unpadded extent no longer fits
// inside the box it was indexed under. Small motions stay within the fat
// box and cost nothing. Reports whether the body was reindexed.
func (t *Tree) Refit(b Body) (bool, error) {
	leaf := b.leaf()
	if leaf == nullNode {
		return false, fmt.Errorf("body %d: %w", b.ID(), ErrNotIndexed)
	}
	if t.nodes[leaf].box.Contains(b.extent()) {
		return false, nil
	}
	t.removeLeaf(leaf)
	t.nodes[leaf].box = b.BBox()
	t.insertLeaf(leaf)
	return true, nil
}

// Query calls fn for every indexed body whose box intersects the given
// box. Each leaf is visited at most once; order is unspecified. fn
// returning false stops the traversal early.
func (t *Tree) Query(box Box, fn func(b Body) bool) {
	if t.root == nullNode {
		return
	}
	stack := t.stack[:0]
	stack = append(stack, t.root)
	for len(stack) > 0 {
		index := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := &t.nodes[index]
		if !n.box.Intersects(box) {
			continue
		}
		if n.isLeaf() {
			if !fn(n.body) {
				break
			}
			continue
		}
		stack = append(stack, n.child1, n.child2)
	}
	t.stack = stack[:0]
}

// Potentials returns the bodies whose boxes overlap b's box, excluding b
// itself: the broad-phase candidate set. The result is a superset of the
// bodies that truly overlap b, has no duplicates, and is unordered.
func (t *Tree) Potentials(b Body) []Body {
	var out []Body
	t.Query(b.BBox(), func(other Body) bool {
		if other != b {
			out = append(out, other)
		}
		return true
	})
	return out
}

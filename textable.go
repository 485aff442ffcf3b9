package pica

import "github.com/gogpu/pica/driver"

// TextureID is a public texture identifier handed out by LoadTexture.
// Valid ids are >= 1; 0 is the failure sentinel.
type TextureID uint32

// texNode pairs a public id with the native handle it maps to.
type texNode struct {
	id     TextureID
	handle driver.TextureHandle
}

// texTable is a sparse id-to-native-handle table. Nodes are kept sorted
// ascending by id so allocation can hand out the smallest unused
// positive id: freed ids become reusable, and the id sequence is stable
// for callers that depend on it.
//
// The table is small (one node per live texture) and single-threaded,
// like the rest of the pipeline; linear scans are fine.
type texTable struct {
	nodes []texNode
}

// allocate inserts a node for the given native handle under the
// smallest currently-unused positive id and returns that id.
func (t *texTable) allocate(h driver.TextureHandle) TextureID {
	id := TextureID(1)
	at := len(t.nodes)
	for i, n := range t.nodes {
		if id < n.id {
			at = i
			break
		}
		id = n.id + 1
	}
	t.nodes = append(t.nodes, texNode{})
	copy(t.nodes[at+1:], t.nodes[at:])
	t.nodes[at] = texNode{id: id, handle: h}
	return id
}

// lookup returns the native handle mapped to id.
func (t *texTable) lookup(id TextureID) (driver.TextureHandle, bool) {
	for _, n := range t.nodes {
		if n.id == id {
			return n.handle, true
		}
	}
	return 0, false
}

// remove unlinks the node with the given id, making the id reusable.
// It reports whether the id was present.
func (t *texTable) remove(id TextureID) bool {
	for i, n := range t.nodes {
		if n.id == id {
			t.nodes = append(t.nodes[:i], t.nodes[i+1:]...)
			return true
		}
	}
	return false
}

// size returns the number of live entries.
func (t *texTable) size() int { return len(t.nodes) }

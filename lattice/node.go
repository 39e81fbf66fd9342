package lattice

// NodeClass classifies lattice nodes by their origin.
type NodeClass uint8

// The node classes.
const (
	Dummy   NodeClass = iota // BOS/EOS sentinels and extended-mode splits
	Known                    // system dictionary entry
	Unknown                  // synthesized unknown word
	User                     // user dictionary entry
)

func (c NodeClass) String() string {
	switch c {
	case Dummy:
		return "DUMMY"
	case Known:
		return "KNOWN"
	case Unknown:
		return "UNKNOWN"
	case User:
		return "USER"
	}
	return "INVALID"
}

// BosEosID is the morpheme ID of the BOS and EOS sentinel nodes.
const BosEosID = -1

// UnmappedID is the morpheme ID of unknown nodes whose character
// category has no entry in the unknown-word dictionary. Such nodes
// exist only to keep the lattice connected.
const UnmappedID = -2

// nilRef marks the absence of a predecessor.
const nilRef = int32(-1)

// Node is one lattice node. Nodes live in the arena of their lattice;
// the prev back-reference is an arena index, bounded by the lattice's
// lifetime.
type Node struct {
	ID       int32
	Position int32 // byte offset into the input
	Start    int32 // character offset into the input
	Class    NodeClass
	Cost     int32
	Left     int16
	Right    int16
	Weight   int16
	Surface  string

	prev int32
}

// IsBosEos reports whether the node is a BOS/EOS sentinel.
func (n *Node) IsBosEos() bool {
	return n.ID == BosEosID
}

package dict

import (
	"fmt"
	"sort"
)

type idxBuildNode struct {
	children map[byte]*idxBuildNode
	id       int32 // valid for terminator leaves only
}

// BuildIndexTable constructs a double-array trie over the given keys.
// ids[i] is the morpheme ID registered for keys[i]. Repeated keys must
// carry consecutive IDs; the extra IDs are recorded in the Dup map.
// Empty keys are rejected.
//
// The builder is used for the built-in fallback dictionary and for
// user dictionaries; system dictionaries arrive with a prebuilt index.
func BuildIndexTable(keys []string, ids []int32) (*IndexTable, error) {
	if len(keys) != len(ids) {
		return nil, fmt.Errorf("dict: build index: %d keys but %d ids", len(keys), len(ids))
	}
	root := &idxBuildNode{children: make(map[byte]*idxBuildNode)}
	dup := make(map[int32]int32)
	for i, key := range keys {
		if key == "" {
			return nil, fmt.Errorf("dict: build index: empty key at %d", i)
		}
		n := root
		for j := 0; j < len(key); j++ {
			b := key[j]
			if b == 0 {
				return nil, fmt.Errorf("dict: build index: NUL byte in key %q", key)
			}
			child := n.children[b]
			if child == nil {
				child = &idxBuildNode{children: make(map[byte]*idxBuildNode)}
				n.children[b] = child
			}
			n = child
		}
		term := n.children[0]
		if term == nil {
			n.children[0] = &idxBuildNode{id: ids[i]}
			continue
		}
		// homograph: same surface, one more consecutive ID
		if ids[i] != term.id+dup[term.id]+1 {
			return nil, fmt.Errorf("dict: build index: non-consecutive IDs for key %q", key)
		}
		dup[term.id]++
	}

	t := &IndexTable{Dup: dup}
	t.Da = make([]DANode, 1, 256)
	t.Da[0] = DANode{Base: 0, Check: -1}

	type queued struct {
		node  *idxBuildNode
		state int32
	}
	queue := []queued{{node: root, state: 0}}
	for qi := 0; qi < len(queue); qi++ {
		n, state := queue[qi].node, queue[qi].state
		if len(n.children) == 0 {
			continue
		}
		labels := make([]byte, 0, len(n.children))
		for b := range n.children {
			labels = append(labels, b)
		}
		sort.Slice(labels, func(i, j int) bool { return labels[i] < labels[j] })
		base := t.findBase(labels)
		t.Da[state].Base = base
		for _, b := range labels {
			s := base + int32(b)
			t.ensure(s)
			child := n.children[b]
			t.Da[s].Check = state
			if b == 0 {
				t.Da[s].Base = -child.id
				continue
			}
			queue = append(queue, queued{node: child, state: s})
		}
	}
	return t, nil
}

// findBase locates the lowest base so that base+label is free for
// every child label.
func (t *IndexTable) findBase(labels []byte) int32 {
	for base := int32(1); ; base++ {
		ok := true
		for _, b := range labels {
			s := base + int32(b)
			if s < int32(len(t.Da)) && t.Da[s].Check != -1 {
				ok = false
				break
			}
		}
		if ok {
			t.ensure(base + int32(labels[len(labels)-1]))
			return base
		}
	}
}

func (t *IndexTable) ensure(idx int32) {
	for int32(len(t.Da)) <= idx {
		t.Da = append(t.Da, DANode{Base: 0, Check: -1})
	}
}

package dfgraph

import "golang.org/x/exp/slices"

// Interval is a closed bit range [From, To] associated with the node
// that currently defines it.
type Interval struct {
	From int
	To   int
	Node *Node
}

func (iv Interval) intersects(from, to int) bool {
	return !(iv.To < from || iv.From > to)
}

// IntervalMap is an ordered, non-overlapping set of Intervals over a
// shared register file's bit space. It is a bare sorted slice rather
// than a self-balancing tree: the register files in play here have at
// most a few dozen live intervals at once, so a slice kept sorted by
// From and searched with golang.org/x/exp/slices gives the same
// floor/ceil access pattern at a fraction of the complexity of a tree,
// and the queue-driven split/merge algorithm below does not care which
// ordered container backs it.
type IntervalMap struct {
	items []Interval
}

// NewIntervalMap returns an empty interval map.
func NewIntervalMap() *IntervalMap {
	return &IntervalMap{}
}

func (m *IntervalMap) indexOfIntersecting(from, to int) int {
	return slices.IndexFunc(m.items, func(iv Interval) bool {
		return iv.intersects(from, to)
	})
}

func (m *IntervalMap) insert(iv Interval) {
	i, _ := slices.BinarySearchFunc(m.items, iv, func(a, b Interval) int {
		return a.From - b.From
	})
	m.items = slices.Insert(m.items, i, iv)
}

func (m *IntervalMap) removeAt(i int) {
	m.items = slices.Delete(m.items, i, i+1)
}

// Write replaces every bit in [from, to] with a single new interval
// bound to node, splitting or shrinking any intervals that currently
// overlap [from, to] via a work queue of still-unresolved ranges.
func (m *IntervalMap) Write(from, to int, node *Node) {
	type rng struct{ from, to int }
	queue := []rng{{from, to}}
	for len(queue) > 0 {
		w := queue[0]
		queue = queue[1:]

		i := m.indexOfIntersecting(w.from, w.to)
		if i < 0 {
			continue // disjoint: w is not yet in the map
		}
		v := m.items[i]

		switch {
		case v.From == w.from && v.To == w.to:
			m.removeAt(i)

		case v.From < w.from && w.to < v.To:
			// v strictly contains w: split into v1, v2, both keep v.Node.
			v1 := Interval{From: v.From, To: w.from - 1, Node: v.Node}
			v2 := Interval{From: w.to + 1, To: v.To, Node: v.Node}
			m.items[i] = v1
			m.insert(v2)

		case w.from < v.From && v.To < w.to:
			// w strictly contains v: drop v, requeue both leftover pieces.
			m.removeAt(i)
			queue = append(queue, rng{w.from, v.From - 1}, rng{v.To + 1, w.to})

		case w.from == v.From && v.To < w.to:
			m.removeAt(i)
			queue = append(queue, rng{v.To + 1, w.to})

		case w.to == v.To && w.from < v.From:
			m.removeAt(i)
			queue = append(queue, rng{w.from, v.From - 1})

		case v.From < w.from:
			// v starts before w, ends inside or at w: shrink v.To, and
			// requeue w for any further interval it still overlaps.
			v.To = w.from - 1
			m.items[i] = v
			queue = append(queue, w)

		default:
			// v starts inside w, ends at or beyond w: shrink v.From, and
			// requeue w for any further interval it still overlaps.
			v.From = w.to + 1
			m.items[i] = v
			queue = append(queue, w)
		}
	}
	m.insert(Interval{From: from, To: to, Node: node})
}

// Read gathers the nodes that currently define each sub-range of
// [from, to]. origin is invoked (at most once per register, by the
// caller's own memoization) to lazily materialize the register's
// origin node whenever a gap is found. Read never returns duplicate
// adjacent parts collapsed; the caller decides how to combine them.
func (m *IntervalMap) Read(from, to int, origin func() *Node) []*Node {
	type rng struct{ from, to int }
	var parts []*Node
	queue := []rng{{from, to}}
	for len(queue) > 0 {
		w := queue[0]
		queue = queue[1:]

		i := m.indexOfIntersecting(w.from, w.to)
		if i < 0 {
			node := origin()
			m.insert(Interval{From: w.from, To: w.to, Node: node})
			parts = append(parts, node)
			continue
		}
		v := m.items[i]

		switch {
		case v.From <= w.from && w.to <= v.To:
			// v fully contains w.
			parts = append(parts, v.Node)

		case w.from < v.From && v.To < w.to:
			// w strictly contains v: record it, requeue both gaps.
			parts = append(parts, v.Node)
			queue = append(queue, rng{w.from, v.From - 1}, rng{v.To + 1, w.to})

		case v.From <= w.from:
			// left-aligned or v starts before w, ends inside w.
			parts = append(parts, v.Node)
			queue = append(queue, rng{v.To + 1, w.to})

		default:
			// v starts inside w, ends at or beyond w.to.
			parts = append(parts, v.Node)
			queue = append(queue, rng{w.from, v.From - 1})
		}
	}
	return parts
}

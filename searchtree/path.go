package searchtree

// NodeToPath follows parent handles from id back to the root and returns
// the collected states reversed, so the path runs start→id inclusive.
// A root-only chain yields a single-element path.
func NodeToPath[S comparable](t *Tree[S], id NodeID) ([]S, error) {
	n, err := t.At(id)
	if err != nil {
		return nil, err
	}
	path := []S{n.State}
	for !n.IsRoot() {
		n = t.nodes[n.Parent]
		path = append(path, n.State)
	}
	// reverse to get start → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// Depth returns the number of edges between id and the root.
func Depth[S comparable](t *Tree[S], id NodeID) (int, error) {
	n, err := t.At(id)
	if err != nil {
		return 0, err
	}
	d := 0
	for !n.IsRoot() {
		n = t.nodes[n.Parent]
		d++
	}

	return d, nil
}

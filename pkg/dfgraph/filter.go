package dfgraph

import "strings"

// filter reconstructs a reduced postfix expression computing root's
// symbolic value: reverse-DFS from root, collect GENERATIVE nodes in
// creation order and a results[name] -> generator map from RESULT
// nodes' single incoming edge (operator nodes that also carry the
// Result tag are not collected themselves; their text reaches the
// output only by substitution), then resolve every generative node's
// content by recursively substituting intermediate-result references,
// concatenate, and collapse the comma runs the substitution leaves
// behind.
func filter(store *GraphStore, root *Node) string {
	var genOrder []*Node
	seenGen := make(map[int64]bool)
	results := make(map[string]*Node)

	store.ReverseDFS(root, func(n *Node) {
		if n.kind.Has(Generative) && !n.kind.Any(Result) && !seenGen[n.ID()] {
			seenGen[n.ID()] = true
			genOrder = append(genOrder, n)
		}
		if n.kind.Any(Result) {
			if preds := store.Incoming(n); len(preds) > 0 {
				results[n.content] = preds[0]
			}
		}
	})

	// Creation order is not guaranteed by the traversal itself, so
	// sort explicitly by idx.
	for i := 1; i < len(genOrder); i++ {
		for j := i; j > 0 && genOrder[j-1].idx > genOrder[j].idx; j-- {
			genOrder[j-1], genOrder[j] = genOrder[j], genOrder[j-1]
		}
	}

	var resolved []string
	for _, g := range genOrder {
		resolved = append(resolved, resolveContent(g.content, results))
	}
	// Ordinary generative content already begins with a comma (the
	// ",op1,op2,...,OP" shape), but merge and flag content does not,
	// so fragments are joined with an explicit comma rather than
	// concatenated bare; the double-comma collapse below absorbs the
	// resulting run wherever a fragment's own leading comma meets the
	// join separator.
	out := strings.Join(resolved, ",")

	for strings.Contains(out, ",,") {
		out = strings.ReplaceAll(out, ",,", ",")
	}
	return strings.TrimPrefix(out, ",")
}

// resolveContent tokenizes a generative node's content by commas and
// splices in the resolved content of any token that names a live
// intermediate result; an unbound intermediate-result token is simply
// emitted literally, never an error. The trailing token, the operator,
// is always emitted literally, without attempting recursion.
func resolveContent(content string, results map[string]*Node) string {
	tokens := strings.Split(content, ",")
	out := make([]string, len(tokens))
	for i, t := range tokens {
		if i == len(tokens)-1 {
			out[i] = t
			continue
		}
		if gen, ok := results[t]; ok {
			out[i] = resolveContent(gen.content, results)
			continue
		}
		out[i] = t
	}
	return strings.Join(out, ",")
}

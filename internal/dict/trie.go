package dict

// trie is a rune-keyed prefix tree mapping surface forms to lemma slices.
// Lookups walk one node per rune. A node can be an entry, an internal
// prefix of longer entries, or both.
type trie struct {
	root *trieNode
	size int
}

type trieNode struct {
	lemmas   []Lemma
	terminal bool
	children map[rune]*trieNode
}

func newTrie() *trie {
	return &trie{root: &trieNode{children: map[rune]*trieNode{}}}
}

// insert adds lemmas for a surface form, appending to any already stored.
// The empty form is ignored.
func (t *trie) insert(form string, lemmas []Lemma) {
	cur := t.root
	for _, r := range form {
		next, ok := cur.children[r]
		if !ok {
			next = &trieNode{children: map[rune]*trieNode{}}
			cur.children[r] = next
		}
		cur = next
	}
	if cur == t.root {
		return
	}
	if !cur.terminal {
		cur.terminal = true
		t.size++
	}
	cur.lemmas = append(cur.lemmas, lemmas...)
}

// lookup returns the lemmas stored for form, whether form is a strict
// prefix of longer entries, and whether form itself is an entry.
func (t *trie) lookup(form string) (lemmas []Lemma, isPrefix, exists bool) {
	cur := t.root
	for _, r := range form {
		next, ok := cur.children[r]
		if !ok {
			return nil, false, false
		}
		cur = next
	}
	return cur.lemmas, len(cur.children) > 0, cur.terminal
}

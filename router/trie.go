package router

import (
	"strings"

	"github.com/weaverhttp/weaver/weavererr"
)

// node is one segment of the path trie. Each node may have any number of
// literal children (keyed by exact segment text) plus at most one capture
// child (`{name}`); literal children are always tried before the capture
// child at the same depth, per the router's tie-break rule, with
// backtracking into the capture child if every literal path beneath this
// node fails to reach a terminal.
type node[H any] struct {
	literal map[string]*node[H]

	capture     *node[H]
	captureName string

	bucket    bucket[H]
	isTerminal bool // true once some pattern ends exactly at this node
}

func newNode[H any]() *node[H] {
	return &node[H]{literal: make(map[string]*node[H])}
}

// splitPath breaks "/a/{b}/c" into ["a", "{b}", "c"]. A bare "/" yields no
// segments (the root pattern).
func splitPath(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}

func isCaptureSegment(seg string) bool {
	return len(seg) >= 2 && seg[0] == '{' && seg[len(seg)-1] == '}'
}

func captureName(seg string) string {
	return seg[1 : len(seg)-1]
}

// insert walks/creates pattern's path in the trie and registers handler
// under method at the terminal bucket. It enforces InvalidPath (malformed
// pattern, duplicate capture name) and RouteOccupied (same pattern+method
// registered twice).
func (n *node[H]) insert(pattern, method string, handler H) error {
	if !strings.HasPrefix(pattern, "/") {
		return weavererr.Fmt(weavererr.InvalidPath, "path pattern %q must begin with '/'", pattern)
	}
	segs := splitPath(pattern)

	seen := make(map[string]bool)
	cur := n
	for _, seg := range segs {
		if seg == "" {
			return weavererr.Fmt(weavererr.InvalidPath, "path pattern %q has an empty segment", pattern)
		}
		if isCaptureSegment(seg) {
			name := captureName(seg)
			if name == "" {
				return weavererr.Fmt(weavererr.InvalidPath, "path pattern %q has an unnamed capture", pattern)
			}
			if seen[name] {
				return weavererr.Fmt(weavererr.InvalidPath, "path pattern %q reuses capture name %q", pattern, name)
			}
			seen[name] = true
			if cur.capture == nil {
				cur.capture = newNode[H]()
				cur.capture.captureName = name
			} else if cur.capture.captureName != name {
				return weavererr.Fmt(weavererr.InvalidPath,
					"path pattern %q capture name %q conflicts with existing capture %q at the same depth",
					pattern, name, cur.capture.captureName)
			}
			cur = cur.capture
		} else {
			child, ok := cur.literal[seg]
			if !ok {
				child = newNode[H]()
				cur.literal[seg] = child
			}
			cur = child
		}
	}

	if cur.isTerminal && cur.bucket.has(method) {
		return weavererr.Fmt(weavererr.RouteOccupied, "route already registered: %s %s", method, pattern)
	}
	cur.isTerminal = true
	cur.bucket.set(method, handler)
	return nil
}

// matchResult is returned by at() on success.
type matchResult[H any] struct {
	bucket *bucket[H]
	params map[string]string
}

// at resolves path against the trie, backtracking from literal into
// capture children when a literal-first descent fails to reach a
// terminal node. Returns (nil result, false) when no pattern matches at
// all — the caller maps that to NotFound.
func (n *node[H]) at(path string) (matchResult[H], bool) {
	segs := splitPath(path)
	params := map[string]string{}
	leaf, ok := n.descend(segs, params)
	if !ok || !leaf.isTerminal {
		return matchResult[H]{}, false
	}
	return matchResult[H]{bucket: &leaf.bucket, params: params}, true
}

func (n *node[H]) descend(segs []string, params map[string]string) (*node[H], bool) {
	if len(segs) == 0 {
		if n.isTerminal {
			return n, true
		}
		return nil, false
	}
	seg, rest := segs[0], segs[1:]

	if child, ok := n.literal[seg]; ok {
		if leaf, ok := child.descend(rest, params); ok {
			return leaf, true
		}
	}
	if n.capture != nil {
		// try the capture branch without polluting params on failure
		trial := make(map[string]string, len(params)+1)
		for k, v := range params {
			trial[k] = v
		}
		trial[n.capture.captureName] = seg
		if leaf, ok := n.capture.descend(rest, trial); ok {
			for k, v := range trial {
				params[k] = v
			}
			return leaf, true
		}
	}
	return nil, false
}

// collect walks every terminal node beneath n, appending one "METHOD
// /path" string per registered method to out. Used for introspection
// (weaveradmin's route listing).
func (n *node[H]) collect(prefix string, out *[]string) {
	if n.isTerminal {
		display := prefix
		if display == "" {
			display = "/"
		}
		for _, m := range n.bucket.methods() {
			*out = append(*out, m+" "+display)
		}
	}
	for seg, child := range n.literal {
		child.collect(prefix+"/"+seg, out)
	}
	if n.capture != nil {
		n.capture.collect(prefix+"/{"+n.capture.captureName+"}", out)
	}
}

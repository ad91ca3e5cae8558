// Package ast provides the concrete syntax-tree type produced by the
// grammar compiler, plus fold/apply helpers that let a grammar be
// composed without the caller ever writing a callback.
package ast

import (
	"strings"

	"github.com/oleiade/parsekit"
)

// Node is a syntax-tree node: a tag (a "|"-separated hierarchical label,
// e.g. "expr|number|regex"), contents (present on leaves, normally empty
// on internal nodes) and an ordered list of children.
type Node struct {
	Tag      string
	Contents string
	Children []*Node
}

// New allocates a leaf node.
func New(tag, contents string) *Node {
	return &Node{Tag: tag, Contents: contents}
}

// AddChild appends child to parent's children and returns parent, for
// chaining.
func AddChild(parent, child *Node) *Node {
	parent.Children = append(parent.Children, child)
	return parent
}

// InsertRoot wraps node in a synthetic root whose tag is ">" and contents
// is empty, used to present a single top-level result.
func InsertRoot(node *Node) *Node {
	return &Node{Tag: ">", Children: []*Node{node}}
}

// Equal reports whether a and b are structurally identical: same tag,
// same contents, and pairwise-equal children in the same order.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Tag != b.Tag || a.Contents != b.Contents {
		return false
	}
	if len(a.Children) != len(b.Children) {
		return false
	}
	for i := range a.Children {
		if !Equal(a.Children[i], b.Children[i]) {
			return false
		}
	}
	return true
}

// Specific returns the rightmost "|"-separated segment of tag, the most
// specific label in a hierarchical tag.
func (n *Node) Specific() string {
	segs := strings.Split(n.Tag, "|")
	return segs[len(segs)-1]
}

// Fold is the AST-aware accumulator used by Repeat/Repeat1: the first
// element becomes the accumulator itself, every subsequent element is
// added as its child.
func Fold(acc *Node, x *Node) *Node {
	if acc == nil {
		return x
	}
	AddChild(acc, x)
	return acc
}

// AFold allocates an internal node tagged tag and adds every non-nil
// element of xs as a child, in order. Used by Concat to combine a
// sequence's values into a single node. A nil element (the zero value
// parsekit.Maybe produces for an absent optional) is omitted rather than
// added as a nil child.
func AFold(tag string, xs []*Node) *Node {
	n := &Node{Tag: tag}
	for _, x := range xs {
		if x == nil {
			continue
		}
		AddChild(n, x)
	}
	return n
}

// Leaf returns a Map callback that wraps a matched string in a leaf node
// tagged tag — the AST-aware counterpart to a raw string result.
func Leaf(tag string) func(string) (*Node, error) {
	return func(s string) (*Node, error) {
		return New(tag, s), nil
	}
}

// Concat sequences parsers and combines their values into a single
// internal node tagged tag, via AFold. This is the AST-aware counterpart
// to parsekit.Sequence/And.
func Concat(tag string, parsers ...parsekit.Parser[*Node]) parsekit.Parser[*Node] {
	return parsekit.And(func(xs []*Node) *Node { return AFold(tag, xs) }, parsers...)
}

// Alt is parsekit.Or specialized to *Node values: each alternative is
// expected to already tag its own result, so Alt is a pass-through
// (committed-choice, same semantics as parsekit.Or).
func Alt(parsers ...parsekit.Parser[*Node]) parsekit.Parser[*Node] {
	return parsekit.Or(parsers...)
}

// Repeat is parsekit.Many with Fold as its accumulator: zero matches
// yields a nil *Node, one match yields that node, more than one yields
// the first node with the rest appended as its children.
func Repeat(p parsekit.Parser[*Node]) parsekit.Parser[*Node] {
	return parsekit.Many(p, Fold)
}

// Repeat1 is Repeat, but fails if p cannot match at least once.
func Repeat1(p parsekit.Parser[*Node]) parsekit.Parser[*Node] {
	return parsekit.Many1(p, Fold)
}

// Print writes the authoritative indented textual form of n to a string:
// two spaces per depth, leaf lines "<tag> 'contents'", internal lines
// "<tag>" followed by newline-indented children. This is the round-trip
// format tests compare against.
func (n *Node) Print() string {
	var b strings.Builder
	n.print(&b, 0)
	return b.String()
}

// String is Print, satisfying fmt.Stringer.
func (n *Node) String() string {
	return n.Print()
}

func (n *Node) print(b *strings.Builder, depth int) {
	indent := strings.Repeat("  ", depth)
	b.WriteString(indent)
	if len(n.Children) == 0 {
		b.WriteString(n.Tag)
		b.WriteString(" '")
		b.WriteString(n.Contents)
		b.WriteString("'")
		return
	}
	b.WriteString(n.Tag)
	for _, c := range n.Children {
		b.WriteString("\n")
		c.print(b, depth+1)
	}
}

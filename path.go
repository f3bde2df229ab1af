package rx

import (
	"strconv"
	"strings"
)

// Segment is one step of a Path: a mapping key or a sequence index.
type Segment struct {
	Key     string
	Index   int
	IsIndex bool
}

// Path identifies a location in the data tree. The empty Path is the
// root, rendered as "$data". Field and Index copy-append so derived
// paths never alias their parent.
type Path []Segment

// Field returns p extended by a mapping key.
func (p Path) Field(name string) Path {
	np := make(Path, len(p), len(p)+1)
	copy(np, p)
	return append(np, Segment{Key: name})
}

// Index returns p extended by a sequence index.
func (p Path) Index(i int) Path {
	np := make(Path, len(p), len(p)+1)
	copy(np, p)
	return append(np, Segment{Index: i, IsIndex: true})
}

// String renders the path in the Rx notation, e.g.
// $data->{items}->[2]->{price}.
func (p Path) String() string { return p.render("$data") }

func (p Path) render(root string) string {
	if len(p) == 0 {
		return root
	}
	b := &strings.Builder{}
	b.WriteString(root)
	for _, s := range p {
		if s.IsIndex {
			b.WriteString("->[")
			b.WriteString(strconv.Itoa(s.Index))
			b.WriteString("]")
			continue
		}
		b.WriteString("->{")
		b.WriteString(s.Key)
		b.WriteString("}")
	}
	return b.String()
}

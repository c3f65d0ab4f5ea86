package svgdoc

import (
	"github.com/beevik/etree"
)

// Path addresses an element by the child-element indices leading to it from
// the document root. Paths recorded on a template stay valid on its clones.
type Path []int

// Node is one labelled element recorded in an Index.
type Node struct {
	Path      Path
	Namespace string
	Tag       string
	Label     string
}

// Index maps Inkscape labels to every element carrying them, in document
// order.
type Index struct {
	labels map[string][]Node
}

// BuildIndex walks d once and records every labelled element.
func BuildIndex(d *Document) Index {
	idx := Index{labels: make(map[string][]Node)}
	root := d.Root()
	if root == nil {
		return idx
	}
	walk(root, nil, func(e *etree.Element, path Path) {
		label, ok := Label(e)
		if !ok {
			return
		}
		idx.labels[label] = append(idx.labels[label], Node{
			Path:      path,
			Namespace: ElementNamespace(e),
			Tag:       e.Tag,
			Label:     label,
		})
	})
	return idx
}

// Lookup returns the SVG elements of kind tag labelled label.
func (idx Index) Lookup(label, tag string) []Node {
	var out []Node
	for _, node := range idx.labels[label] {
		if node.Tag == tag && node.Namespace == NamespaceSVG {
			out = append(out, node)
		}
	}
	return out
}

// Labels returns the number of distinct labels recorded.
func (idx Index) Labels() int {
	return len(idx.labels)
}

// Resolve follows p from the root of d.
func (d *Document) Resolve(p Path) (*etree.Element, bool) {
	cur := d.Root()
	if cur == nil {
		return nil, false
	}
	for _, i := range p {
		children := cur.ChildElements()
		if i < 0 || i >= len(children) {
			return nil, false
		}
		cur = children[i]
	}
	return cur, true
}

func walk(e *etree.Element, path Path, visit func(*etree.Element, Path)) {
	visit(e, path)
	for i, child := range e.ChildElements() {
		childPath := make(Path, len(path)+1)
		copy(childPath, path)
		childPath[len(path)] = i
		walk(child, childPath, visit)
	}
}

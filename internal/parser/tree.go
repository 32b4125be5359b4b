package parser

import (
	"strconv"

	"github.com/dastanaron/bookmark-exporter/internal/models"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

// Node is an entry of a Chrome bookmark tree: either a *Folder or a *Leaf
type Node interface {
	node()
}

// Folder is a node with a non-empty children array
type Folder struct {
	Name     string
	Path     string
	Children []Node
}

// Leaf is any node that is not a folder. Name and URL are nil when the
// member is absent or not a string.
type Leaf struct {
	Type string
	Name *string
	URL  *string
	Path string
}

func (*Folder) node() {}
func (*Leaf) node()   {}

// decodeNode converts one element of a children array into a Node
func decodeNode(r gjson.Result, path string) (Node, error) {
	if !r.IsObject() {
		return nil, errors.Wrapf(models.ErrParse, "%s: expected an object", path)
	}

	children, err := decodeChildren(r, path)
	if err != nil {
		return nil, err
	}
	if len(children) > 0 {
		return &Folder{Name: r.Get("name").String(), Path: path, Children: children}, nil
	}

	leaf := &Leaf{Type: r.Get("type").String(), Path: path}
	if name := r.Get("name"); name.Type == gjson.String {
		s := name.String()
		leaf.Name = &s
	}
	if u := r.Get("url"); u.Type == gjson.String {
		s := u.String()
		leaf.URL = &s
	}
	return leaf, nil
}

// decodeChildren decodes the children member of r. An absent member yields
// no children; a member that is not an array is malformed.
func decodeChildren(r gjson.Result, path string) ([]Node, error) {
	c := r.Get("children")
	if !c.Exists() {
		return nil, nil
	}
	if !c.IsArray() {
		return nil, errors.Wrapf(models.ErrParse, "%s.children: expected an array", path)
	}

	var nodes []Node
	for i, el := range c.Array() {
		n, err := decodeNode(el, path+".children."+strconv.Itoa(i))
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

// flatten appends the leaves below f in pre-order
func flatten(f *Folder, out []*Leaf) []*Leaf {
	for _, child := range f.Children {
		switch n := child.(type) {
		case *Folder:
			out = flatten(n, out)
		case *Leaf:
			out = append(out, n)
		}
	}
	return out
}

// emit turns url leaves into records. A url leaf without a string name or
// url is malformed; one whose name or url is empty is left out.
func emit(leaves []*Leaf) ([]models.Record, error) {
	var records []models.Record
	for _, l := range leaves {
		if l.Type != "url" {
			continue
		}
		if l.Name == nil || l.URL == nil {
			return nil, errors.Wrapf(models.ErrParse, "%s: url entry needs string name and url", l.Path)
		}
		r := models.Record{Title: *l.Name, URL: *l.URL}
		if !r.Valid() {
			continue
		}
		records = append(records, r)
	}
	return records, nil
}

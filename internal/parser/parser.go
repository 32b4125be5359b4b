package parser

import (
	"context"
	"os"

	"github.com/dastanaron/bookmark-exporter/internal/models"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

// DefaultRoots are flattened in this order when no roots are configured
var DefaultRoots = []string{"bookmark_bar", "other"}

// Parser flattens Chrome bookmark documents
type Parser struct {
	roots []string
}

// NewParser creates a parser visiting roots in the given order.
// With no roots it uses DefaultRoots.
func NewParser(roots ...string) *Parser {
	if len(roots) == 0 {
		roots = DefaultRoots
	}
	return &Parser{roots: roots}
}

// Roots returns the root keys visited, in order
func (p *Parser) Roots() []string {
	return p.roots
}

// Tree decodes the configured roots of doc. A root that is absent or not an
// object is returned as an empty folder.
func (p *Parser) Tree(ctx context.Context, doc []byte) ([]*Folder, error) {
	if !gjson.ValidBytes(doc) {
		return nil, errors.Wrap(models.ErrParse, "invalid JSON")
	}
	top := gjson.ParseBytes(doc)
	if !top.IsObject() {
		return nil, errors.Wrap(models.ErrParse, "top level is not an object")
	}

	roots := top.Get("roots")
	folders := make([]*Folder, 0, len(p.roots))
	for _, name := range p.roots {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrapf(models.ErrCanceled, "before %s: %v", name, err)
		}

		path := "roots." + name
		f := &Folder{Name: name, Path: path}
		if r := roots.Get(gjsonKey(name)); r.IsObject() {
			children, err := decodeChildren(r, path)
			if err != nil {
				return nil, err
			}
			f.Children = children
		}
		folders = append(folders, f)
	}
	return folders, nil
}

// Parse flattens doc into records: roots in order, each walked pre-order,
// keeping only url leaves.
func (p *Parser) Parse(ctx context.Context, doc []byte) ([]models.Record, error) {
	roots, err := p.Tree(ctx, doc)
	if err != nil {
		return nil, err
	}

	var leaves []*Leaf
	for _, root := range roots {
		leaves = flatten(root, leaves)
	}
	return emit(leaves)
}

// ParseFile reads and flattens the bookmarks document at path
func (p *Parser) ParseFile(ctx context.Context, path string) ([]models.Record, error) {
	doc, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(models.ErrStoreOpen, "%s: %v", path, err)
	}

	records, err := p.Parse(ctx, doc)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	return records, nil
}

// gjsonKey escapes the path metacharacters of a literal object key
func gjsonKey(key string) string {
	var out []byte
	for i := 0; i < len(key); i++ {
		switch key[i] {
		case '.', '*', '?', '|', '#', '@', '\\':
			out = append(out, '\\')
		}
		out = append(out, key[i])
	}
	return string(out)
}

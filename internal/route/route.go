// Package route maps navigation paths to views and keeps the
// navigation history.
package route

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrNotFound is returned by Parse for paths with no matching route.
var ErrNotFound = errors.New("no route matches path")

// Kind identifies which view a route shows.
type Kind int

const (
	KindCatalog Kind = iota
	KindDetail
)

func (k Kind) String() string {
	switch k {
	case KindCatalog:
		return "catalog"
	case KindDetail:
		return "detail"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Route is a parsed navigation location.
type Route struct {
	Kind Kind
	ID   string // volume identifier, set for KindDetail
}

// Home is the catalog route at "/".
var Home = Route{Kind: KindCatalog}

// Book returns the detail route for a volume identifier.
func Book(id string) Route {
	return Route{Kind: KindDetail, ID: id}
}

// Path formats the route back into its path form.
func (r Route) Path() string {
	if r.Kind == KindDetail {
		return "/book/" + url.PathEscape(r.ID)
	}
	return "/"
}

func (r Route) String() string {
	return r.Path()
}

// Parse resolves a path against the route table:
//
//	/            catalog
//	/book/{id}   detail for id
func Parse(path string) (Route, error) {
	if path == "" || path == "/" {
		return Home, nil
	}

	rest, ok := strings.CutPrefix(path, "/book/")
	if !ok {
		return Route{}, fmt.Errorf("%w: %q", ErrNotFound, path)
	}
	rest = strings.TrimSuffix(rest, "/")
	if rest == "" || strings.Contains(rest, "/") {
		return Route{}, fmt.Errorf("%w: %q", ErrNotFound, path)
	}

	id, err := url.PathUnescape(rest)
	if err != nil {
		return Route{}, fmt.Errorf("%w: %q: %v", ErrNotFound, path, err)
	}
	return Book(id), nil
}

package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"
)

// ErrInvalidRoute is wrapped by every route table validation error.
var ErrInvalidRoute = errors.New("invalid route")

// DefaultPaths are served when no route file is given.
var DefaultPaths = []string{"/common", "/average", "/rare"}

// Payload is the JSON body returned for a matched route.
type Payload struct {
	Route string `json:"route"`
}

// Route is a single static GET route and its pre-encoded response body.
type Route struct {
	Path string
	Body []byte
}

// RouteTable is an immutable, ordered set of static routes.
type RouteTable struct {
	routes []Route
}

// NewRouteTable validates paths and encodes the response body for each of them.
// Paths are matched literally, so wildcard syntax and whitespace are rejected.
func NewRouteTable(paths []string) (*RouteTable, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: route table is empty", ErrInvalidRoute)
	}

	seen := make(map[string]struct{}, len(paths))
	routes := make([]Route, 0, len(paths))
	for _, p := range paths {
		if err := validatePath(p); err != nil {
			return nil, err
		}
		// the mux matches on unescaped segments, so /ab and /a%62 collide
		key, err := url.PathUnescape(p)
		if err != nil {
			return nil, fmt.Errorf("%w: path %q: %v", ErrInvalidRoute, p, err)
		}
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("%w: duplicate path %q", ErrInvalidRoute, p)
		}
		seen[key] = struct{}{}

		body, err := encodePayload(p)
		if err != nil {
			return nil, fmt.Errorf("encoding payload for %q: %w", p, err)
		}
		routes = append(routes, Route{Path: p, Body: body})
	}

	return &RouteTable{routes: routes}, nil
}

// DefaultRouteTable returns the built-in /common, /average, /rare table.
func DefaultRouteTable() *RouteTable {
	t, err := NewRouteTable(DefaultPaths)
	if err != nil {
		panic(err)
	}
	return t
}

// Routes returns a copy of the routes in declaration order.
func (t *RouteTable) Routes() []Route {
	out := make([]Route, len(t.routes))
	copy(out, t.routes)
	return out
}

// Len returns the number of routes.
func (t *RouteTable) Len() int {
	return len(t.routes)
}

// Paths returns the route paths in declaration order.
func (t *RouteTable) Paths() []string {
	out := make([]string, len(t.routes))
	for i, r := range t.routes {
		out[i] = r.Path
	}
	return out
}

func validatePath(p string) error {
	if p == "" {
		return fmt.Errorf("%w: empty path", ErrInvalidRoute)
	}
	if !strings.HasPrefix(p, "/") {
		return fmt.Errorf("%w: path %q must start with /", ErrInvalidRoute, p)
	}
	if strings.ContainsAny(p, "{} \t\r\n") {
		return fmt.Errorf("%w: path %q must be a literal path", ErrInvalidRoute, p)
	}
	// a trailing slash is kept, anything else must already be clean
	clean := path.Clean(p)
	if strings.HasSuffix(p, "/") && clean != "/" {
		clean += "/"
	}
	if p != clean {
		return fmt.Errorf("%w: path %q is not clean, want %q", ErrInvalidRoute, p, clean)
	}
	return nil
}

// encodePayload writes the path verbatim, without HTML escaping.
func encodePayload(p string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(Payload{Route: p}); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

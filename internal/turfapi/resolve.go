package turfapi

import "strings"

// Resolver turns stored image references into absolute URLs a browser can
// fetch. The backend stores three shapes: fully absolute URLs, host-relative
// API paths, and bare file names from its older upload endpoint.
type Resolver struct {
	host string
}

func NewResolver(host string) *Resolver {
	return &Resolver{host: strings.TrimRight(host, "/")}
}

// Resolve maps a stored reference to a displayable URL.
//
//	https://cdn.example.com/a.jpg -> unchanged
//	/api/files/a.jpg              -> host + /api/files/a.jpg
//	a.jpg                         -> host + /api/files/a.jpg
func (r *Resolver) Resolve(ref string) string {
	if ref == "" {
		return ""
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	if strings.HasPrefix(ref, "/api") {
		return r.host + ref
	}
	return r.host + "/api/files/" + strings.TrimPrefix(ref, "/")
}

// ResolveAll maps every reference, preserving order.
func (r *Resolver) ResolveAll(refs []string) []string {
	if len(refs) == 0 {
		return nil
	}
	out := make([]string, len(refs))
	for i, ref := range refs {
		out[i] = r.Resolve(ref)
	}
	return out
}

package urlbuild

import (
	"strconv"
	"strings"
)

const (
	// DefaultScheme is the scheme Build falls back to when Scheme was never called.
	DefaultScheme = "https"
)

// param is a single query key/value pair. Pairs keep their call order and
// duplicate keys are preserved.
type param struct {
	key   string
	value string
}

// Builder accumulates URL components and assembles them into a string.
//
// Components are supplied through chained setter calls and rendered by Build.
// Values are used exactly as given: no validation, escaping, or deduplication
// is performed at any point, so callers bear full responsibility for input
// sanitation.
//
// The zero value is ready to use:
//
//	var b urlbuild.Builder
//	u := b.Host("example.com").Build()
//	// Returns: "https://example.com"
type Builder struct {
	scheme      string
	schemeSet   bool
	userinfo    string
	userinfoSet bool
	subdomains  []string
	host        string
	port        int
	portSet     bool
	subdirs     []string
	params      []param
	fragment    string
	fragmentSet bool
}

// New creates an empty Builder.
func New() *Builder {
	return &Builder{}
}

// Scheme sets the scheme, overwriting any previous value. Build renders it
// followed by "://". The empty string is a valid explicit value meaning "no
// scheme": it suppresses the scheme and the "://" separator. When Scheme is
// never called, Build uses DefaultScheme.
func (b *Builder) Scheme(scheme string) *Builder {
	b.scheme = scheme
	b.schemeSet = true
	return b
}

// Userinfo sets the userinfo component, overwriting any previous value.
// Build renders it followed by "@" ahead of the host portion.
func (b *Builder) Userinfo(userinfo string) *Builder {
	b.userinfo = userinfo
	b.userinfoSet = true
	return b
}

// Subdomain appends one label to the subdomain sequence. Labels appear left
// to right in call order, joined by "." and placed before the host:
//
//	urlbuild.New().Subdomain("api").Subdomain("v2").Host("example.com").Build()
//	// Returns: "https://api.v2.example.com"
func (b *Builder) Subdomain(subdomain string) *Builder {
	b.subdomains = append(b.subdomains, subdomain)
	return b
}

// Host sets the host, overwriting any previous value. The host closes the
// host line, after any subdomain labels; supplying a full domain through Host
// is equivalent to supplying it through a single Subdomain call. An empty
// host contributes nothing, and no "." follows the subdomains.
func (b *Builder) Host(host string) *Builder {
	b.host = host
	return b
}

// Port sets the port, overwriting any previous value. Build renders it in
// decimal, prefixed with ":" after the host portion. The value is not
// range-checked; zero and negative values propagate into the output as given.
func (b *Builder) Port(port int) *Builder {
	b.port = port
	b.portSet = true
	return b
}

// Subdir appends one path segment. Build renders each segment prefixed with
// "/", in call order.
func (b *Builder) Subdir(subdir string) *Builder {
	b.subdirs = append(b.subdirs, subdir)
	return b
}

// Param appends one query key/value pair. Build renders the first pair
// prefixed with "?" and each following pair separated by "&", as "key=value".
// Pairs keep call order and repeated pairs are all kept; nothing is
// deduplicated or sorted.
func (b *Builder) Param(key, value string) *Builder {
	b.params = append(b.params, param{key: key, value: value})
	return b
}

// Fragment sets the fragment, overwriting any previous value. Build renders
// it prefixed with "#".
func (b *Builder) Fragment(fragment string) *Builder {
	b.fragment = fragment
	b.fragmentSet = true
	return b
}

// Build assembles the accumulated components into the final URL string.
//
// Components render in a fixed order: scheme, userinfo, subdomains and host,
// port, path segments, query parameters, fragment. An absent component
// contributes nothing, including its delimiter. Build cannot fail; it is a
// pure read of the current state, so it may be called repeatedly and the
// builder may keep accumulating components between calls.
func (b *Builder) Build() string {
	var out strings.Builder

	scheme := DefaultScheme
	if b.schemeSet {
		scheme = b.scheme
	}
	if scheme != "" {
		out.WriteString(scheme)
		out.WriteString("://")
	}

	if b.userinfoSet {
		out.WriteString(b.userinfo)
		out.WriteByte('@')
	}

	out.WriteString(strings.Join(b.subdomains, "."))
	if len(b.subdomains) > 0 && b.host != "" {
		out.WriteByte('.')
	}
	out.WriteString(b.host)

	if b.portSet {
		out.WriteByte(':')
		out.WriteString(strconv.Itoa(b.port))
	}

	for _, subdir := range b.subdirs {
		out.WriteByte('/')
		out.WriteString(subdir)
	}

	for i, p := range b.params {
		if i == 0 {
			out.WriteByte('?')
		} else {
			out.WriteByte('&')
		}
		out.WriteString(p.key)
		out.WriteByte('=')
		out.WriteString(p.value)
	}

	if b.fragmentSet {
		out.WriteByte('#')
		out.WriteString(b.fragment)
	}

	return out.String()
}

// String renders the URL exactly like Build, making *Builder a fmt.Stringer.
func (b *Builder) String() string {
	return b.Build()
}

// Clone returns an independent copy of the builder. The copy and the original
// can keep accumulating components without affecting each other, which makes
// a builder usable as a shared base:
//
//	base := urlbuild.New().Subdomain("api").Host("example.com")
//	users := base.Clone().Subdir("users").Build()
//	teams := base.Clone().Subdir("teams").Build()
func (b *Builder) Clone() *Builder {
	c := *b
	c.subdomains = append([]string(nil), b.subdomains...)
	c.subdirs = append([]string(nil), b.subdirs...)
	c.params = append([]param(nil), b.params...)
	return &c
}

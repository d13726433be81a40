package trello

import (
	"net/url"
	"strings"
)

// DefaultBaseURL is the public Trello REST API root.
const DefaultBaseURL = "https://api.trello.com/1/"

// ApiURL is a prepared request template for one resource. The application
// key and the fixed field-selection params are baked in; only the entity id
// and the guild token vary per request. Safe for concurrent use.
type ApiURL struct {
	base     string
	resource string
	key      string
	params   string
}

// Instantiate fills in the entity id and guild token and returns the
// concrete request URL.
func (u *ApiURL) Instantiate(id, token string) string {
	return u.base + u.resource + "/" + url.PathEscape(id) +
		"?key=" + url.QueryEscape(u.key) + "&token=" + url.QueryEscape(token) + u.params
}

// Resource returns the API resource this template addresses, for logging.
func (u *ApiURL) Resource() string {
	return u.resource
}

// URLBuilder assembles ApiURL templates one resource at a time.
type URLBuilder struct {
	base     string
	key      string
	resource string
	params   []string
}

// NewURLBuilder creates a builder for the given API root and application
// key. An empty base selects the public Trello API.
func NewURLBuilder(base, appKey string) *URLBuilder {
	if base == "" {
		base = DefaultBaseURL
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return &URLBuilder{base: base, key: appKey}
}

// Create starts a fresh template for the given resource path.
func (b *URLBuilder) Create(resource string) *URLBuilder {
	b.resource = resource
	b.params = nil
	return b
}

// AddParam appends a fixed query parameter. Parameters keep the order they
// were added in.
func (b *URLBuilder) AddParam(key, value string) *URLBuilder {
	b.params = append(b.params, key+"="+url.QueryEscape(value))
	return b
}

// Build finalizes the template.
func (b *URLBuilder) Build() *ApiURL {
	u := &ApiURL{base: b.base, resource: b.resource, key: b.key}
	if len(b.params) > 0 {
		u.params = "&" + strings.Join(b.params, "&")
	}
	return u
}

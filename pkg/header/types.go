package header

import (
	"fmt"
	"strings"
	"time"
)

var (
	// APIVersionDomain is the API group used for plateforge resources.
	APIVersionDomain = "plateforge.io"

	// APIVersionV1 is the current schema version.
	APIVersionV1 = "v1"
)

// Option is a functional option for configuring Header instances.
type Option func(*Header)

// WithMetadata returns an Option that adds a metadata key-value pair to the Header.
// If the Metadata map is nil, it will be initialized.
func WithMetadata(key, value string) Option {
	return func(h *Header) {
		if h.Metadata == nil {
			h.Metadata = make(map[string]string)
		}
		h.Metadata[key] = value
	}
}

// WithKind returns an Option that sets the Kind field of the Header.
// Kind represents the type of the resource (e.g., "ValidationReport", "BuildPlan").
func WithKind(kind string) Option {
	return func(h *Header) {
		h.Kind = kind
	}
}

// WithAPIVersion returns an Option that sets the APIVersion field of the Header.
// The APIVersion identifies the schema version for the resource.
func WithAPIVersion(version string) Option {
	return func(h *Header) {
		h.APIVersion = version
	}
}

// New creates a new Header instance with the provided functional options.
// The Metadata map is initialized automatically.
func New(opts ...Option) *Header {
	h := &Header{
		Metadata: make(map[string]string),
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// Header carries kind, schema version, and metadata for plateforge resources.
// It follows Kubernetes-style resource conventions so reports and plans can be
// identified when loaded back from files.
type Header struct {
	// Kind is the type of the resource.
	Kind string `json:"kind,omitempty" yaml:"kind,omitempty"`

	// APIVersion is the API version of the resource.
	APIVersion string `json:"apiVersion,omitempty" yaml:"apiVersion,omitempty"`

	// Metadata contains key-value pairs with metadata about the resource.
	Metadata map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Set initializes the Header fields with the provided kind.
// It constructs the APIVersion as "<kind>.plateforge.io/v1" and stamps the
// Metadata with a creation timestamp.
func (h *Header) Set(kind string) {
	h.Kind = kind
	h.APIVersion = fmt.Sprintf("%s.%s/%s", strings.ToLower(kind), APIVersionDomain, APIVersionV1)
	h.Metadata = make(map[string]string)
	h.Metadata["created-timestamp"] = time.Now().UTC().Format(time.RFC3339)
}

// Init initializes the header with kind and stamps the generating tool version.
func (h *Header) Init(kind, toolVersion string) {
	h.Set(kind)
	if toolVersion != "" {
		h.Metadata["tool-version"] = toolVersion
	}
}

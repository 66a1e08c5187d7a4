package server

import (
	"net/http"
	"regexp"
)

// DefaultAPIVersion is served when the client does not negotiate one.
const DefaultAPIVersion = "v1"

// supportedAPIVersions lists the schema versions this server speaks.
var supportedAPIVersions = map[string]bool{
	"v1": true,
}

// vendorAcceptPattern matches vendor media types of the form
// application/vnd.plateforge.v1+json.
var vendorAcceptPattern = regexp.MustCompile(`^application/vnd\.plateforge\.(v\d+)\+json$`)

// negotiateAPIVersion picks an API version from the Accept header.
// Missing, non-vendor, or unsupported versions fall back to the
// default.
func negotiateAPIVersion(r *http.Request) string {
	accept := r.Header.Get("Accept")
	m := vendorAcceptPattern.FindStringSubmatch(accept)
	if m == nil {
		return DefaultAPIVersion
	}
	if !isValidAPIVersion(m[1]) {
		return DefaultAPIVersion
	}
	return m[1]
}

// isValidAPIVersion reports whether the server supports the version.
func isValidAPIVersion(version string) bool {
	return supportedAPIVersions[version]
}

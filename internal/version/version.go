package version

// Version is the released version of the SDK and the nanctl CLI.
var Version = "1.0.0"

const (
	// APIVersion is the remote API revision this client targets.
	APIVersion = "v1"

	// userAgentPrefix identifies this SDK in the User-Agent header.
	userAgentPrefix = "NewNanManager-Go-SDK/"
)

// UserAgent returns the default User-Agent header value.
func UserAgent() string {
	return userAgentPrefix + Version
}

// pkg/version/constants.go
package version

const (
	// HeaderName is the descriptor shipped in the runtime's include directory
	HeaderName = "ChakraCoreVersion.h"

	majorMarker = "CHAKRA_CORE_MAJOR_VERSION"
	minorMarker = "CHAKRA_CORE_MINOR_VERSION"
	patchMarker = "CHAKRA_CORE_PATCH_VERSION"

	// Upper bound on how much of a descriptor is read
	maxDescriptorSize = 1 << 20
)

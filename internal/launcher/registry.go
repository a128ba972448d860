package launcher

import (
	"sort"

	"github.com/kyso-io/kyso-launcher/internal/platform"
)

// binaryRegistry maps platform -> companion binary shipped next to the launcher.
// Platforms missing here are unsupported; there is no fallback binary.
var binaryRegistry = map[platform.ID]string{
	platform.Darwin:  "kyso-macos",
	platform.Linux:   "kyso-linux",
	platform.Windows: "kyso-win.exe",
}

// BinaryName returns the companion binary name for a platform
func BinaryName(id platform.ID) (string, bool) {
	name, ok := binaryRegistry[id]
	return name, ok
}

// Platforms returns the supported platforms in sorted order
func Platforms() []platform.ID {
	ids := make([]platform.ID, 0, len(binaryRegistry))
	for id := range binaryRegistry {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Package platform holds the per-OS build policy. A Policy is selected once
// from the target tag and answers every OS-specific question the build asks:
// artifact file names, how the asset tree is linked into the release
// directory, how running processes are listed, and which companion shared
// libraries ship next to the driver.
package platform

package updater

import "strings"

// productToken identifies our own installer among release assets.
const productToken = "quickrun"

// FindInstallerAsset picks the installer download URL from a release's
// asset list. Two case-insensitive passes over the list, in the order
// the release API returned it:
//
//  1. an asset naming the product, ending in .exe and not a portable
//     build (the NSIS setup artifact);
//  2. any non-portable .exe.
//
// Matching is on display names with no format contract from the release
// host; when nothing matches the caller falls back to the release page.
func FindInstallerAsset(assets []Asset) string {
	for _, asset := range assets {
		name := strings.ToLower(asset.Name)
		if strings.Contains(name, productToken) && strings.HasSuffix(name, ".exe") && !strings.Contains(name, "portable") {
			return asset.BrowserDownloadURL
		}
	}

	for _, asset := range assets {
		name := strings.ToLower(asset.Name)
		if strings.HasSuffix(name, ".exe") && !strings.Contains(name, "portable") {
			return asset.BrowserDownloadURL
		}
	}

	return ""
}

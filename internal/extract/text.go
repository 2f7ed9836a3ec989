// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import "os"

// extractRaw returns the file content unchanged. TXT and MD sources are
// already in their target form, so extraction is the identity function.
func extractRaw(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// extractRawFull matches the full-mode handler signature; plain text and
// Markdown carry no embedded images, so it is extractRaw.
func extractRawFull(path string, _ *imageSink) (string, error) {
	return extractRaw(path)
}

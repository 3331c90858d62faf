package serialize

import (
	"path/filepath"
	"strconv"
	"strings"
)

// ParseImageFilename extracts the image id from filename under the
// <name>_<id>.dat / <id>.dat grammar: split the stem (filename minus the
// .dat extension) on "_"; one part is the id itself, two parts take the
// second as the id. A stem with more than two parts is rejected, exactly
// as original_source/MDBPE/src/io.cc's read_folder rejects it.
func ParseImageFilename(filename string) (stem string, id int32, ok bool) {
	ext := filepath.Ext(filename)
	if ext != ".dat" {
		return "", 0, false
	}
	stem = strings.TrimSuffix(filename, ext)

	parts := strings.Split(stem, "_")
	if len(parts) > 2 {
		return "", 0, false
	}
	n, err := strconv.ParseInt(parts[len(parts)-1], 10, 32)
	if err != nil {
		return "", 0, false
	}
	return stem, int32(n), true
}

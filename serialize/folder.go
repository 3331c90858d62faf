package serialize

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/DaiDaiLoh/mdbpe/grid"
	"github.com/DaiDaiLoh/mdbpe/shard"
)

// LoadFolder reads every *.dat grid file in dir into an Image, skipping
// -- with a log line, not an error -- directories, non-regular entries,
// the wrong extension, or an unparsable filename, mirroring
// original_source/MDBPE/src/io.cc's read_folder. A dimension mismatch on
// a file that is otherwise well-formed is a hard failure (spec §7).
func LoadFolder(dir string, wantW, wantH int32) ([]*grid.Image, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("serialize: read folder %s: %w", dir, err)
	}

	var images []*grid.Image
	for _, e := range entries {
		name := e.Name()
		if !e.Type().IsRegular() {
			log.Printf("serialize: skipping non-regular entry: %s", name)
			continue
		}
		if filepath.Ext(name) != ".dat" {
			log.Printf("serialize: skipping non-.dat file: %s", name)
			continue
		}
		stem, id, ok := ParseImageFilename(name)
		if !ok {
			log.Printf("serialize: skipping file with unexpected name: %s", name)
			continue
		}
		plane, err := ReadGridFile(filepath.Join(dir, name), wantW, wantH)
		if err != nil {
			return nil, fmt.Errorf("serialize: %s: %w", name, err)
		}
		img, err := grid.NewImage(id, stem, plane)
		if err != nil {
			return nil, fmt.Errorf("serialize: %s: %w", name, err)
		}
		images = append(images, img)
	}
	return images, nil
}

// MakeOutputDirs creates the "<out>/transcribed_data/<bucket>/<id>"
// directory tree for every id, mirroring the reference implementation's
// directory-creation pass ahead of writing sequence files.
func MakeOutputDirs(outputDir string, modulus int, ids []int32) error {
	for _, id := range ids {
		dir := filepath.Join(outputDir, "transcribed_data", shard.Path(int(id), modulus))
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return nil
}

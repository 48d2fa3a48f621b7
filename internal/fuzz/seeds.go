package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10
	maxFuzzInput = 1 << 16
)

var inlineSeeds = []string{
	"",
	"#version 450\nvoid main() {}\n",
	"#version 460 core\nout vec4 c;\nvoid main() { c = vec4(1.0, 0.0, 0.0, 1.0); }\n",
	"#version 450\nvoid main() { int a = 1, b = a; a += b; a = (a, b); }\n",
	"#version 450\nlayout(location = 2) flat in int id;\nvoid main() { gl_Position = vec4(float(id)); }\n",
	"#version 450\nvoid main() { { { } } }\n",
	"#version 330\n",
	"#version 450\nvoid main() { x = 1; }\n",
	"#version 450\nvoid main( { ",
	"/* unterminated",
	"0x 1e 1.5lf 7u @",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range inlineSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

// addTestdataSeeds adds every shader under testdata/shaders.
func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata", "shaders")
	if _, err := os.Stat(root); err != nil {
		return
	}
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() {
			return nil
		}
		// #nosec G304 -- path comes from the repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clamp(src, maxSeedBytes))
		return nil
	})
}

func clamp(src []byte, limit int) []byte {
	if len(src) > limit {
		src = src[:limit]
	}
	return append([]byte(nil), src...)
}

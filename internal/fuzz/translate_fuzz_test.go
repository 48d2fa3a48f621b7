package fuzztests

import (
	"errors"
	"testing"
	"time"

	"glslfront/internal/diag"
	"glslfront/internal/glsl"
	"glslfront/internal/lexer"
	"glslfront/internal/source"
)

// translateTimeout bounds one input; running longer points at a loop that
// never consumes a token.
const translateTimeout = 5 * time.Second

func FuzzTranslate(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clamp(input, maxFuzzInput)

		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.vert", input))
		lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: diag.NewBag(16)}})

		done := make(chan struct{})
		var (
			prog *glsl.Program
			err  error
		)
		go func() {
			defer close(done)
			prog, err = glsl.Translate(lx, glsl.Options{Stage: glsl.StageVertex, MaxDepth: 64})
		}()
		select {
		case <-done:
		case <-time.After(translateTimeout):
			t.Fatalf("translation did not finish within %v", translateTimeout)
		}

		if err != nil {
			var gerr *glsl.Error
			if !errors.As(err, &gerr) {
				t.Fatalf("error %v is not a *glsl.Error", err)
			}
			if prog != nil {
				t.Fatal("failed translation returned a program")
			}
			return
		}
		if prog == nil || prog.Module == nil {
			t.Fatal("successful translation without a module")
		}
		if prog.Version == 0 {
			t.Fatal("program translated without a #version")
		}
	})
}

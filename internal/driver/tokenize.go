package driver

import (
	"glslfront/internal/diag"
	"glslfront/internal/lexer"
	"glslfront/internal/source"
	"glslfront/internal/token"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize loads path and lexes it to EOF.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)
	bag := diag.NewBag(maxDiagnostics)
	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  lexFile(file, bag),
		Bag:     bag,
	}, nil
}

func lexFile(file *source.File, bag *diag.Bag) []token.Token {
	lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	return lx.All()
}

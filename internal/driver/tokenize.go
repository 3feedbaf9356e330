package driver

import (
	"fmt"

	"sgspell/internal/diag"
	"sgspell/internal/lexer"
	"sgspell/internal/source"
	"sgspell/internal/syntax"
	"sgspell/internal/token"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize lexes the file at path without building a tree.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  lx.All(),
		Bag:     bag,
	}, nil
}

type TreeResult struct {
	TokenizeResult
	Tree *syntax.Tree
}

// BuildTree lexes the file at path and groups its tokens into a syntax tree.
func BuildTree(path string, maxDiagnostics int) (*TreeResult, error) {
	tr, err := Tokenize(path, maxDiagnostics)
	if err != nil {
		return nil, err
	}
	tree := syntax.Build(tr.File, tr.Tokens, diag.BagReporter{Bag: tr.Bag})
	return &TreeResult{TokenizeResult: *tr, Tree: tree}, nil
}

package plan

import (
	"path/filepath"
	"strings"
)

// StdinSentinel is the input reference meaning "read the primary source
// language from standard input."
const StdinSentinel = "-"

// InputFile pairs a file reference (an absolute path, a working-directory-
// relative path, or StdinSentinel) with its classification.
type InputFile struct {
	Reference string
	Type      FileType
}

// extensionTypes maps a lowercase file extension (without the dot) to the
// FileType the driver infers for it.  Extensions absent from this table
// default to FileObject.
var extensionTypes = map[string]FileType{
	"loom": FileSource,
	"o":    FileObject,
	"s":    FileAssembly,
	"sil":  FileSIL,
	"sib":  FileSIB,
	"ll":   FileLLVMIR,
	"bc":   FileBitcode,
	"loommodule": FileModule,
	"loomdeps":   FileSwiftDeps,
	"pch":        FilePCH,
}

// ClassifyInput derives the InputFile for one positional argument (or the
// stdin sentinel) in argv order.
func ClassifyInput(reference string) InputFile {
	if reference == StdinSentinel {
		return InputFile{Reference: reference, Type: FileSource}
	}

	ext := strings.TrimPrefix(filepath.Ext(reference), ".")
	if t, ok := extensionTypes[strings.ToLower(ext)]; ok {
		return InputFile{Reference: reference, Type: t}
	}
	return InputFile{Reference: reference, Type: FileObject}
}

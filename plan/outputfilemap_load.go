package plan

import (
	"encoding/json"
	"fmt"
	"os"
)

// outputTypeSpellings maps the on-disk JSON key for each output kind to
// its FileType. These are a fixed external wire vocabulary (the file map
// is produced by a build system, not by this driver) and are distinct
// from the file-extension table ClassifyInput uses.
var outputTypeSpellings = map[string]FileType{
	"object":            FileObject,
	"assembly":          FileAssembly,
	"sil":               FileSIL,
	"sib":               FileSIB,
	"llvm-ir":           FileLLVMIR,
	"llvm-bc":           FileBitcode,
	"loommodule":        FileModule,
	"loom-dependencies": FileSwiftDeps,
	"pch":               FilePCH,
}

// LoadOutputFileMap reads the JSON-encoded output file map at path. The
// top-level object maps an input reference (or WholeModuleKey for
// whole-module outputs) to an object of output-kind spellings to paths.
// An entry naming an output kind this driver doesn't recognize is
// ignored rather than rejected, so a file map produced for a newer
// driver still loads.
func LoadOutputFileMap(path string) (*OutputFileMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unreadable output file map: %w", err)
	}

	var raw map[string]map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("malformed output file map: %w", err)
	}

	ofm := &OutputFileMap{}
	for input, outputs := range raw {
		for kind, outPath := range outputs {
			typ, ok := outputTypeSpellings[kind]
			if !ok {
				continue
			}
			ofm.Set(input, typ, outPath)
		}
	}
	return ofm, nil
}

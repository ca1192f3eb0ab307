package openapi

import "path/filepath"

// fileSource names an on-disk OpenAPI document.
type fileSource struct {
	path string
}

func (s fileSource) Location() string {
	return s.path
}

func (s fileSource) Kind() SourceKind {
	return SourceKindFile
}

// SourceFromFile returns a Source naming a file path.
func SourceFromFile(path string) Source {
	return fileSource{path: filepath.Clean(path)}
}

// memorySource names a document that was built or embedded in memory.
type memorySource struct {
	name string
}

func (s memorySource) Location() string {
	return s.name
}

func (s memorySource) Kind() SourceKind {
	return SourceKindMemory
}

// SourceFromMemory returns a Source for in-memory payloads such as embedded
// fixtures or request bodies.
func SourceFromMemory(name string) Source {
	return memorySource{name: name}
}

// Package model defines the data structures shared by the crusher packages.
package model

// Path represents a file system path.
type Path string

// File represents a source code file.
type File struct {
	Path Path
	Hash string
}

// Source is one input file selected for crushing.
type Source struct {
	Origin *File
}

// NewSource builds a Source for path with an unknown hash.
func NewSource(path Path) Source {
	return Source{Origin: &File{Path: path}}
}

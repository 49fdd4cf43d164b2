// Package store keeps palettes as JSON files in a directory, one
// <name>.palette file per palette.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/mmuldo/chromatic/color"
	"github.com/mmuldo/chromatic/format"
	"github.com/mmuldo/chromatic/palette"
)

// Ext is the file extension of stored palettes.
const Ext = ".palette"

const (
	kindPalette = "palette"
	kindStack   = "stack"
)

var (
	ErrNotFound    = errors.New("store: palette not found")
	ErrInvalidName = errors.New("store: invalid palette name")
	ErrKind        = errors.New("store: wrong palette kind")
)

// FileError reports a palette file that could not be read or written.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string { return "store: " + e.Path + ": " + e.Err.Error() }

func (e *FileError) Unwrap() error { return e.Err }

type file struct {
	Name   string        `json:"name"`
	Kind   string        `json:"kind"`
	Format format.Format `json:"format"`
	Colors []entry       `json:"colors"`
}

type entry struct {
	Name  string      `json:"name,omitempty"`
	Color color.Color `json:"color"`
}

// DefaultDir returns ~/.config/chromatic/palettes.
func DefaultDir() (string, error) {
	return homedir.Expand(filepath.Join("~", ".config", "chromatic", "palettes"))
}

func path(dir, name string) (string, error) {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return filepath.Join(dir, name+Ext), nil
}

// Save writes p to dir, replacing any palette of the same name.
func Save(dir string, p *palette.Palette) error {
	f := file{Name: p.Name, Kind: kindPalette, Format: p.Format()}
	for name, c := range p.All() {
		f.Colors = append(f.Colors, entry{Name: name, Color: c})
	}
	return write(dir, f)
}

// SaveStack writes s to dir under name.
func SaveStack(dir, name string, s *palette.StackPalette) error {
	f := file{Name: name, Kind: kindStack, Format: s.Format()}
	for _, c := range s.All() {
		f.Colors = append(f.Colors, entry{Color: c})
	}
	return write(dir, f)
}

func write(dir string, f file) error {
	p, e := path(dir, f.Name)
	if e != nil {
		return e
	}
	if f.Colors == nil {
		f.Colors = []entry{}
	}
	data, e := json.MarshalIndent(f, "", "  ")
	if e != nil {
		return &FileError{Path: p, Err: e}
	}
	if e = os.MkdirAll(dir, 0o755); e != nil {
		return &FileError{Path: dir, Err: e}
	}
	if e = os.WriteFile(p, append(data, '\n'), 0o644); e != nil {
		return &FileError{Path: p, Err: e}
	}
	Logger().Debug("saved palette", "path", p, "kind", f.Kind, "colors", len(f.Colors))
	return nil
}

func read(dir, name string) (*file, error) {
	p, e := path(dir, name)
	if e != nil {
		return nil, e
	}
	data, e := os.ReadFile(p)
	if errors.Is(e, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %q in %s", ErrNotFound, name, dir)
	}
	if e != nil {
		return nil, &FileError{Path: p, Err: e}
	}
	var f file
	if e = json.Unmarshal(data, &f); e != nil {
		return nil, &FileError{Path: p, Err: e}
	}
	if f.Name == "" {
		f.Name = name
	}
	Logger().Debug("read palette", "path", p, "kind", f.Kind, "colors", len(f.Colors))
	return &f, nil
}

// Load reads the named palettes from dir and merges them into one, in
// order. When no names are given every palette in dir is loaded. A color
// name defined by more than one palette keeps its first definition; a
// differing later definition is logged and dropped.
//
// The result uses f, or the first palette's format when f is nil.
func Load(dir string, f *format.Format, names ...string) (*palette.Palette, error) {
	all := len(names) == 0
	if all {
		var e error
		if names, e = List(dir); e != nil {
			return nil, e
		}
	}

	var out *palette.Palette
	for _, name := range names {
		pf, e := read(dir, name)
		if e != nil {
			return nil, e
		}
		if pf.Kind == kindStack {
			if all {
				continue
			}
			return nil, fmt.Errorf("%w: %q is a stack palette", ErrKind, name)
		}

		if out == nil {
			ff := pf.Format
			if f != nil {
				ff = *f
			}
			out = palette.New(strings.Join(names, "+"), ff)
			if len(names) == 1 {
				out.Name = pf.Name
			}
		}
		if e = merge(out, pf); e != nil {
			return nil, &FileError{Path: filepath.Join(dir, name+Ext), Err: e}
		}
	}
	if out == nil {
		if f == nil {
			return palette.New("", format.Default), nil
		}
		return palette.New("", *f), nil
	}
	return out, nil
}

func merge(p *palette.Palette, f *file) error {
	for _, en := range f.Colors {
		existing, e := p.Get(en.Name)
		if e != nil {
			if e = p.Add(en.Name, en.Color); e != nil {
				return e
			}
			continue
		}
		if !existing.Equal(en.Color) {
			Logger().Warn("conflicting color definition ignored",
				"palette", f.Name,
				"color", en.Name,
				"kept", existing.String(),
				"ignored", en.Color.String(),
			)
		}
	}
	return nil
}

// LoadStack reads a stack palette from dir. The result uses f, or the
// stored format when f is nil.
func LoadStack(dir, name string, f *format.Format) (*palette.StackPalette, error) {
	pf, e := read(dir, name)
	if e != nil {
		return nil, e
	}
	if pf.Kind != kindStack {
		return nil, fmt.Errorf("%w: %q is not a stack palette", ErrKind, name)
	}
	ff := pf.Format
	if f != nil {
		ff = *f
	}
	inputs := make([]any, len(pf.Colors))
	for i, en := range pf.Colors {
		inputs[i] = en.Color
	}
	s, e := palette.NewStack(ff, inputs...)
	if e != nil {
		return nil, &FileError{Path: filepath.Join(dir, name+Ext), Err: e}
	}
	return s, nil
}

// List returns the names of the palettes stored in dir, sorted. A missing
// directory holds no palettes.
func List(dir string) ([]string, error) {
	des, e := os.ReadDir(dir)
	if errors.Is(e, fs.ErrNotExist) {
		return nil, nil
	}
	if e != nil {
		return nil, &FileError{Path: dir, Err: e}
	}
	var names []string
	for _, de := range des {
		if de.IsDir() || filepath.Ext(de.Name()) != Ext {
			continue
		}
		names = append(names, strings.TrimSuffix(de.Name(), Ext))
	}
	return names, nil
}

// Remove deletes the named palette from dir.
func Remove(dir, name string) error {
	p, e := path(dir, name)
	if e != nil {
		return e
	}
	e = os.Remove(p)
	if errors.Is(e, fs.ErrNotExist) {
		return fmt.Errorf("%w: %q in %s", ErrNotFound, name, dir)
	}
	if e != nil {
		return &FileError{Path: p, Err: e}
	}
	Logger().Debug("removed palette", "path", p)
	return nil
}

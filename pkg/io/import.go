package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/paulmach/orb"

	"github.com/matzehuels/composite/pkg/errors"
	"github.com/matzehuels/composite/pkg/shape"
)

// Format identifies a figure file encoding.
type Format string

// Supported figure file formats.
const (
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

type figure struct {
	Shapes []entry `toml:"shape" json:"shapes"`
	Holes  []entry `toml:"hole" json:"holes"`
}

type entry struct {
	Spec       string    `toml:"spec" json:"spec,omitempty"`
	Kind       string    `toml:"kind" json:"kind,omitempty"`
	Dimensions []float64 `toml:"dimensions" json:"dimensions,omitempty"`
	Centroid   []float64 `toml:"centroid" json:"centroid,omitempty"`
}

// Item is one resolved entry of a figure file.
type Item struct {
	Role shape.Role
	Spec shape.Spec
	// Source locates the entry for error messages, e.g. "hole 2".
	Source string
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidFormat,
			"unsupported figure file %q (use .toml or .json)", filepath.Base(path))
	}
}

// Read decodes a figure from r and resolves its entries. Filled shapes come
// first, then holes, each in file order.
func Read(r io.Reader, format Format) ([]Item, error) {
	var fig figure
	switch format {
	case FormatTOML:
		if _, err := toml.NewDecoder(r).Decode(&fig); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode toml")
		}
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&fig); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode json")
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported figure format %q", format)
	}

	items := make([]Item, 0, len(fig.Shapes)+len(fig.Holes))
	for i, e := range fig.Shapes {
		it, err := e.resolve(shape.Filled, fmt.Sprintf("shape %d", i+1))
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	for i, e := range fig.Holes {
		it, err := e.resolve(shape.Hole, fmt.Sprintf("hole %d", i+1))
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}

// ReadFile opens the figure file at path and decodes it with [Read].
func ReadFile(path string) ([]Item, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "figure file not found: %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	items, err := Read(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return items, nil
}

func (e entry) resolve(role shape.Role, source string) (Item, error) {
	it := Item{Role: role, Source: source}

	if e.Spec != "" {
		if e.Kind != "" || e.Dimensions != nil || e.Centroid != nil {
			return it, errors.New(errors.ErrCodeInvalidInput, "%s: use either spec or kind/dimensions/centroid", source)
		}
		spec, err := shape.Parse(e.Spec)
		if err != nil {
			return it, located(source, err)
		}
		it.Spec = spec
		return it, nil
	}

	if e.Kind == "" {
		return it, errors.New(errors.ErrCodeInvalidInput, "%s: kind or spec is required", source)
	}
	kind, err := shape.ParseKind(e.Kind)
	if err != nil {
		return it, located(source, err)
	}

	it.Spec.Dims = shape.DefaultDimensions(kind)
	if len(e.Dimensions) > 0 {
		if it.Spec.Dims, err = shape.NewDimensions(kind, e.Dimensions...); err != nil {
			return it, located(source, err)
		}
	}

	switch len(e.Centroid) {
	case 0:
	case 2:
		it.Spec.Centroid = orb.Point{e.Centroid[0], e.Centroid[1]}
	default:
		return it, errors.New(errors.ErrCodeInvalidInput, "%s: centroid needs 2 coordinates, got %d", source, len(e.Centroid))
	}
	return it, nil
}

// located prefixes a structured error's message with the entry location,
// keeping its code.
func located(source string, err error) error {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInvalidInput
	}
	return errors.New(code, "%s: %s", source, errors.UserMessage(err))
}

package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/ariel/pkg/components"
	"github.com/matzehuels/ariel/pkg/diagram"
	"github.com/matzehuels/ariel/pkg/element"
	"github.com/matzehuels/ariel/pkg/errors"
)

// Document is a declarative diagram.
type Document struct {
	Kind      string `json:"kind,omitempty" yaml:"kind,omitempty" toml:"kind,omitempty"`
	Direction string `json:"direction,omitempty" yaml:"direction,omitempty" toml:"direction,omitempty"`
	Title     string `json:"title,omitempty" yaml:"title,omitempty" toml:"title,omitempty"`
	Children  []Item `json:"children,omitempty" yaml:"children,omitempty" toml:"children,omitempty"`
}

// Item is one component invocation. An item without a component but with
// text is a text child.
type Item struct {
	Component string         `json:"component,omitempty" yaml:"component,omitempty" toml:"component,omitempty"`
	Props     map[string]any `json:"props,omitempty" yaml:"props,omitempty" toml:"props,omitempty"`
	Text      string         `json:"text,omitempty" yaml:"text,omitempty" toml:"text,omitempty"`
	Children  []Item         `json:"children,omitempty" yaml:"children,omitempty" toml:"children,omitempty"`
}

// Decode parses data in the given format. Fields that are not part of a
// document are rejected in every format.
func Decode(data []byte, f Format) (*Document, error) {
	var doc Document
	var err error
	switch f {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err = dec.Decode(&doc); err == io.EOF {
			err = nil
		}
	case FormatTOML:
		var md toml.MetaData
		md, err = toml.NewDecoder(bytes.NewReader(data)).Decode(&doc)
		if err == nil {
			err = unknownTOMLKey(md)
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&doc)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported document format %q", f)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode %s document", f)
	}
	return &doc, nil
}

// unknownTOMLKey reports the first key that maps to no document field.
// Keys nested in props values are free-form.
func unknownTOMLKey(md toml.MetaData) error {
	for _, key := range md.Undecoded() {
		if !slices.Contains(key, "props") {
			return fmt.Errorf("unknown field %q", key.String())
		}
	}
	return nil
}

// Load reads and decodes the document at path, detecting the format from
// its extension.
func Load(path string) (*Document, error) {
	f, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "read %s", path)
	}
	return Decode(data, f)
}

// Element converts the document into an element tree rooted at a graph
// component. Components are resolved through r; nil uses [Default].
func (d *Document) Element(r *Registry) element.Element {
	if r == nil {
		r = Default
	}
	return components.Graph(components.GraphProps{
		Kind:      diagram.Kind(d.Kind),
		Direction: diagram.Direction(d.Direction),
		Title:     d.Title,
	}, items(d.Children, r)...)
}

func items(in []Item, r *Registry) []element.Element {
	out := make([]element.Element, 0, len(in))
	for _, it := range in {
		out = append(out, it.element(r))
	}
	return out
}

func (it Item) element(r *Registry) element.Element {
	if it.Component == "" {
		return element.Text(it.Text)
	}

	children := items(it.Children, r)
	if it.Text != "" {
		children = append([]element.Element{element.Text(it.Text)}, children...)
	}
	return r.Create(it.Component, element.Props(it.Props), children...)
}

package report

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/frederic-klein/altcmp/internal/compare"
)

// Document is the machine-readable form of a comparison.
type Document struct {
	Labels   Labels        `json:"labels" yaml:"labels"`
	Packages []Package     `json:"packages" yaml:"packages"`
	Summary  compare.Stats `json:"summary" yaml:"summary"`
}

// Package is one compared pair.
type Package struct {
	Name          string          `json:"name" yaml:"name"`
	AltPackage    string          `json:"alt_package" yaml:"alt_package"`
	SecondPackage string          `json:"second_package" yaml:"second_package"`
	AltVersion    string          `json:"alt_version" yaml:"alt_version"`
	SecondVersion string          `json:"second_version" yaml:"second_version"`
	Outcome       compare.Outcome `json:"outcome" yaml:"outcome"`
}

// NewDocument converts records into a Document.
func NewDocument(records []compare.Record, stats compare.Stats, labels Labels) Document {
	doc := Document{
		Labels:   labels,
		Packages: make([]Package, 0, len(records)),
		Summary:  stats,
	}
	for _, r := range records {
		doc.Packages = append(doc.Packages, Package{
			Name:          r.Name,
			AltPackage:    r.A.Package,
			SecondPackage: r.B.Package,
			AltVersion:    r.A.DisplayVersion(),
			SecondVersion: r.B.DisplayVersion(),
			Outcome:       r.Outcome,
		})
	}
	return doc
}

// JSON renders a Document as indented JSON.
type JSON struct {
	doc Document
}

func NewJSON(records []compare.Record, stats compare.Stats, labels Labels) *JSON {
	return &JSON{doc: NewDocument(records, stats, labels)}
}

func (p *JSON) Present(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", " ")
	return enc.Encode(p.doc)
}

// YAML renders a Document as YAML.
type YAML struct {
	doc Document
}

func NewYAML(records []compare.Record, stats compare.Stats, labels Labels) *YAML {
	return &YAML{doc: NewDocument(records, stats, labels)}
}

func (p *YAML) Present(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(p.doc); err != nil {
		return err
	}
	return enc.Close()
}

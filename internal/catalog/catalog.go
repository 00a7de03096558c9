// Package catalog holds the set of project templates the scaffolder offers.
//
// A [Catalog] is built once at startup and never mutated afterwards; it is
// handed to the create workflow explicitly so tests can substitute their own.
package catalog

import (
	"errors"
	"fmt"
	"os"

	"github.com/inovacc/dadandiaoming/internal/model"
	"go.yaml.in/yaml/v3"
)

// ErrTemplateNotFound is returned by Resolve for unknown keys.
var ErrTemplateNotFound = errors.New("template not found")

// Entry is the presentation view of a template.
type Entry struct {
	Key         string
	Description string
}

// Catalog is an ordered, immutable template registry.
type Catalog struct {
	order     []string
	templates map[string]model.TemplateInfo
}

// Builtin returns the templates shipped with the tool.
func Builtin() []model.TemplateInfo {
	return []model.TemplateInfo{
		{
			Name:        "vue",
			Description: "Vue project template",
			URL:         "https://gitee.com/honghuangdc/soybean-admin.git",
			Branch:      "main",
		},
		{
			Name:        "react",
			Description: "React project template",
			URL:         "https://github.com/d3george/slash-admin.git",
			Branch:      "main",
		},
	}
}

// Default returns a catalog of the built-in templates.
func Default() *Catalog {
	c, _ := New(Builtin()...)
	return c
}

// New builds a catalog preserving the given order. A later template with the
// same name replaces the earlier one in place.
func New(templates ...model.TemplateInfo) (*Catalog, error) {
	c := &Catalog{templates: make(map[string]model.TemplateInfo, len(templates))}

	for _, t := range templates {
		if err := t.Validate(); err != nil {
			return nil, err
		}

		if _, ok := c.templates[t.Name]; !ok {
			c.order = append(c.order, t.Name)
		}

		c.templates[t.Name] = t
	}

	if len(c.order) == 0 {
		return nil, errors.New("catalog has no templates")
	}

	return c, nil
}

// With returns a new catalog with overrides merged over c.
func (c *Catalog) With(overrides ...model.TemplateInfo) (*Catalog, error) {
	all := make([]model.TemplateInfo, 0, len(c.order)+len(overrides))
	for _, key := range c.order {
		all = append(all, c.templates[key])
	}

	return New(append(all, overrides...)...)
}

// List returns the templates in presentation order.
func (c *Catalog) List() []Entry {
	entries := make([]Entry, 0, len(c.order))
	for _, key := range c.order {
		entries = append(entries, Entry{Key: key, Description: c.templates[key].Description})
	}

	return entries
}

// Resolve returns the template registered under key.
func (c *Catalog) Resolve(key string) (model.TemplateInfo, error) {
	t, ok := c.templates[key]
	if !ok {
		return model.TemplateInfo{}, fmt.Errorf("%w: %s", ErrTemplateNotFound, key)
	}

	return t, nil
}

// file is the on-disk layout accepted by LoadFile.
type file struct {
	Templates []model.TemplateInfo `yaml:"templates"`
}

// LoadFile reads a YAML catalog file:
//
//	templates:
//	  - name: vue
//	    description: Vue project template
//	    url: https://example.com/vue.git
//	    branch: main
func LoadFile(path string) ([]model.TemplateInfo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing catalog %s: %w", path, err)
	}

	for i, t := range f.Templates {
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("catalog %s: templates[%d]: %w", path, i, err)
		}
	}

	return f.Templates, nil
}

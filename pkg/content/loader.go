package content

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data/content.yaml
var embedded embed.FS

const (
	MinRating = 1
	MaxRating = 5
)

// ErrNoTestimonials is returned when a document has no carousel slides.
var ErrNoTestimonials = errors.New("content: at least one testimonial is required")

// Load parses a YAML document, sanitizes rich text and validates it.
func Load(r io.Reader) (*Content, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("content: read: %w", err)
	}
	var doc Content
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("content: decode: %w", err)
	}
	doc.sanitize()
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// LoadFile reads a YAML document from disk.
func LoadFile(path string) (*Content, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("content: open %s: %w", path, err)
	}
	defer f.Close()

	doc, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%w (file %s)", err, path)
	}
	return doc, nil
}

// Default returns the bundled landing page copy.
func Default() *Content {
	raw, err := embedded.ReadFile("data/content.yaml")
	if err != nil {
		panic(err)
	}
	doc, err := Load(bytes.NewReader(raw))
	if err != nil {
		panic(fmt.Errorf("content: embedded document: %w", err))
	}
	return doc
}

// Validate checks the invariants the landing page relies on.
func (c *Content) Validate() error {
	if strings.TrimSpace(c.Brand) == "" {
		return errors.New("content: brand is required")
	}
	if len(c.Testimonials.Items) == 0 {
		return ErrNoTestimonials
	}
	for i, item := range c.Testimonials.Items {
		if item.Rating < MinRating || item.Rating > MaxRating {
			return fmt.Errorf("content: testimonial %d (%s) rating %d not in [%d,%d]", i, item.Name, item.Rating, MinRating, MaxRating)
		}
	}
	for i, feature := range c.Features.Items {
		if strings.TrimSpace(feature.Title) == "" {
			return fmt.Errorf("content: feature %d has an empty title", i)
		}
	}
	for i, stat := range c.Dashboard.Stats {
		if stat.Percent < 0 || stat.Percent > 100 {
			return fmt.Errorf("content: dashboard stat %d (%s) percent %d not in [0,100]", i, stat.Title, stat.Percent)
		}
	}
	return nil
}

// Testimonial returns slide i wrapped into range.
func (c *Content) Testimonial(i int) (Testimonial, int) {
	n := len(c.Testimonials.Items)
	if n == 0 {
		return Testimonial{}, 0
	}
	i = ((i % n) + n) % n
	return c.Testimonials.Items[i], i
}

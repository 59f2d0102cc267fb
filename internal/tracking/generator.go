// Package tracking generates synthetic installation tracking codes of the
// form PREFIX-YYYYMMDD-XXXXXXXX.
package tracking

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

const (
	// DefaultPrefix is used when no prefix is configured.
	DefaultPrefix = "INST"

	// Alphabet is the set of characters the random suffix is drawn from.
	Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	// SuffixLength is the number of random characters in a code.
	SuffixLength = 8

	dateLayout = "20060102"
)

var (
	ErrInvalidFormat = errors.New("tracking code has invalid format")

	codePattern = regexp.MustCompile(`^([A-Z0-9]+)-(\d{8})-([A-Z0-9]{8})$`)
)

// Option configures a Generator.
type Option func(g *Generator)

// WithSource sets the random source used for the suffix.
func WithSource(src RandomSource) Option {
	return func(g *Generator) {
		if src != nil {
			g.source = src
		}
	}
}

// WithClock sets the function used to read the current time.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		if now != nil {
			g.now = now
		}
	}
}

// Generator produces tracking codes. It holds no mutable state of its own
// and is safe for concurrent use as long as its RandomSource is.
type Generator struct {
	prefix string
	source RandomSource
	now    func() time.Time
}

// NewGenerator creates a generator using prefix, a crypto/rand source and
// the wall clock unless overridden by opts.
func NewGenerator(prefix string, opts ...Option) *Generator {
	if prefix == "" {
		prefix = DefaultPrefix
	}

	g := &Generator{
		prefix: prefix,
		source: NewCryptoSource(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Prefix returns the configured prefix.
func (g *Generator) Prefix() string {
	return g.prefix
}

// Generate returns a new tracking code for the current date.
func (g *Generator) Generate() (string, error) {
	suffix, err := g.randomSuffix()
	if err != nil {
		return "", fmt.Errorf("failed to generate tracking code: %w", err)
	}

	return fmt.Sprintf("%s-%s-%s", g.prefix, g.now().Format(dateLayout), suffix), nil
}

func (g *Generator) randomSuffix() (string, error) {
	var sb strings.Builder
	sb.Grow(SuffixLength)

	for i := 0; i < SuffixLength; i++ {
		idx, err := g.source.Intn(len(Alphabet))
		if err != nil {
			return "", err
		}
		sb.WriteByte(Alphabet[idx])
	}

	return sb.String(), nil
}

// Parts holds the segments of a tracking code.
type Parts struct {
	Prefix string
	Date   time.Time
	Suffix string
}

// Parse splits a tracking code into its segments. The date segment must be
// a real calendar date.
func Parse(code string) (Parts, error) {
	m := codePattern.FindStringSubmatch(code)
	if m == nil {
		return Parts{}, ErrInvalidFormat
	}

	date, err := time.Parse(dateLayout, m[2])
	if err != nil {
		return Parts{}, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	return Parts{Prefix: m[1], Date: date, Suffix: m[3]}, nil
}

// Validate reports whether code is shaped like a generated tracking code.
func Validate(code string) error {
	_, err := Parse(code)
	return err
}

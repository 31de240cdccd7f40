package jpointer

import (
	"strconv"
	"strings"
)

var (
	unescaper = strings.NewReplacer("~1", "/", "~0", "~")
	escaper   = strings.NewReplacer("~", "~0", "/", "~1")
)

// Parse splits a pointer into unescaped fragments. A single leading "/" is
// optional; "" and "/" both address the root and yield no fragments.
// Malformed escape sequences are kept literally.
func Parse(s string) []string {
	s = strings.TrimPrefix(s, "/")
	if s == "" {
		return nil
	}
	fragments := strings.Split(s, "/")
	for i, f := range fragments {
		if strings.Contains(f, "~") {
			fragments[i] = unescaper.Replace(f)
		}
	}
	return fragments
}

// Escape encodes a single fragment so that it survives Parse.
func Escape(fragment string) string {
	return escaper.Replace(fragment)
}

// Join builds a pointer from unescaped fragments.
func Join(fragments ...string) string {
	var b strings.Builder
	for _, f := range fragments {
		b.WriteByte('/')
		b.WriteString(Escape(f))
	}
	return b.String()
}

// Pointer is a parsed path into a document. It is immutable and may be shared
// between goroutines; the documents it operates on may not.
type Pointer struct {
	raw       string
	fragments []string
	cfg       Config
}

// New parses path once and returns a Pointer configured by opts.
func New(path string, opts ...Option) *Pointer {
	return &Pointer{
		raw:       path,
		fragments: Parse(path),
		cfg:       newConfig(opts...),
	}
}

// String returns the pointer as given to New.
func (p *Pointer) String() string { return p.raw }

// Fragments returns a copy of the unescaped fragments.
func (p *Pointer) Fragments() []string {
	return append([]string(nil), p.fragments...)
}

func (p *Pointer) key(fragment string) string {
	return p.cfg.KeyTransform(fragment)
}

// index parses an array index fragment. Only plain decimal digits are
// accepted; signs, spaces and values overflowing int are rejected.
func (p *Pointer) index(fragment string) (int, bool) {
	if fragment == "" {
		return 0, false
	}
	for i := 0; i < len(fragment); i++ {
		if fragment[i] < '0' || fragment[i] > '9' {
			p.cfg.Logger.Debug("malformed index fragment", "pointer", p.raw, "fragment", fragment)
			return 0, false
		}
	}
	n, err := strconv.Atoi(fragment)
	if err != nil {
		p.cfg.Logger.Debug("index fragment out of range", "pointer", p.raw, "fragment", fragment)
		return 0, false
	}
	return n, true
}

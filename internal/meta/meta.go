// Package meta collects the informational lines of an RLE document.
package meta

import (
	"strings"

	"o-rle/pkg/rle"
)

// Info is what the comment and header lines say about a pattern.
type Info struct {
	Name     string
	Author   string
	Rule     string
	Comments []string
}

// Collector is an rle.Observer that records pattern metadata. Lines are also
// passed on to Next when it is set.
type Collector struct {
	Info Info
	Next rle.Observer
}

// Comment records "#N", "#O" and "#C" / "#c" lines. Other comment kinds are
// only forwarded.
func (c *Collector) Comment(lineNo int, text string) {
	if len(text) >= 2 {
		body := strings.TrimSpace(text[2:])
		switch text[1] {
		case 'N':
			c.Info.Name = body
		case 'O':
			c.Info.Author = body
		case 'C', 'c':
			c.Info.Comments = append(c.Info.Comments, body)
		}
	}
	if c.Next != nil {
		c.Next.Comment(lineNo, text)
	}
}

// Header records the rule.
func (c *Collector) Header(lineNo int, h rle.Header) {
	c.Info.Rule = h.Rule
	if c.Next != nil {
		c.Next.Header(lineNo, h)
	}
}

// Body forwards body lines.
func (c *Collector) Body(lineNo int, text string) {
	if c.Next != nil {
		c.Next.Body(lineNo, text)
	}
}

// Decode decodes text with d and returns the pattern with its metadata. The
// observer of d, if any, still sees every line.
func Decode(d rle.Decoder, text string) (*rle.Pattern, Info, error) {
	c := &Collector{Next: d.Observer}
	d.Observer = c
	p, err := d.Decode(text)
	if err != nil {
		return nil, Info{}, err
	}
	return p, c.Info, nil
}

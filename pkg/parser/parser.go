// Package parser extracts word tokens from dictionary sources.
package parser

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

type Parser struct{}

func New() *Parser {
	return &Parser{}
}

// ExtractText pulls the visible text out of an HTML document, with
// script and style contents removed. Case is preserved: dictionary
// entries distinguish proper nouns from common words.
func (p *Parser) ExtractText(content []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(content))
	if err != nil {
		return "", fmt.Errorf("error parsing HTML: %w", err)
	}

	doc.Find("script, style").Remove()

	var b strings.Builder
	doc.Find("body").Each(func(_ int, sel *goquery.Selection) {
		b.WriteString(sel.Text())
		b.WriteString(" ")
	})
	text := b.String()
	if strings.TrimSpace(text) == "" {
		// Fragments without a body element still carry text.
		text = doc.Text()
	}
	return text, nil
}

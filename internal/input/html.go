// Package input prepares raw input for the normalizer. Chat transcripts
// saved as HTML are flattened to plain text lines; plain text passes
// through untouched.
package input

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

var htmlSniffPattern = regexp.MustCompile(`(?i)<(!doctype|html|head|body|div|p|br|span|table|ul|ol)[\s/>]`)

// LooksLikeHTML reports whether the text is likely an HTML document or
// fragment rather than a plain chat log.
func LooksLikeHTML(text string) bool {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "<") {
		return false
	}
	return htmlSniffPattern.MatchString(trimmed)
}

// blockTags are elements that delimit lines when flattening.
var blockTags = map[string]bool{
	"p": true, "div": true, "li": true, "ul": true, "ol": true,
	"table": true, "tr": true, "blockquote": true, "pre": true,
	"section": true, "article": true, "header": true, "footer": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

// Flatten converts an HTML document into plain text, one line per block
// element. Script, style, and noscript content is dropped. The result may
// contain blank lines; the normalizer discards those.
func Flatten(rawHTML string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return "", fmt.Errorf("parsing html input: %w", err)
	}
	doc.Find("script, style, noscript").Remove()

	root := doc.Selection
	if body := doc.Find("body"); body.Length() > 0 {
		root = body
	}

	var sb strings.Builder
	for _, node := range root.Nodes {
		walk(node, &sb)
	}
	return sb.String(), nil
}

func walk(n *html.Node, sb *strings.Builder) {
	switch n.Type {
	case html.TextNode:
		sb.WriteString(n.Data)
		return
	case html.ElementNode:
		if n.Data == "br" {
			sb.WriteString("\n")
			return
		}
		if blockTags[n.Data] {
			sb.WriteString("\n")
			defer sb.WriteString("\n")
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, sb)
	}
}

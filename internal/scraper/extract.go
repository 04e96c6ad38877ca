package scraper

import (
	"encoding/json"
	"strings"

	"sjsage522/kijijiworker/pkg/errors"

	"github.com/PuerkitoBio/goquery"
)

// entityReplacer unescapes the two entities the page escapes inside its
// JSON script block. NewReplacer scans left to right and treats each
// pattern as atomic, so a literal "&amp;quot;" becomes "&quot;" rather
// than being unescaped twice.
var entityReplacer = strings.NewReplacer("&quot;", `"`, "&amp;", "&")

// ExtractEmbeddedJSON locates the first script element typed as
// application/json, unescapes its content, and parses it into a decoded
// JSON tree.
func ExtractEmbeddedJSON(html string) (any, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, errors.NewParse("extractor", "failed to parse page HTML", err)
	}

	block := doc.Find(`script[type="application/json"]`).First()
	if block.Length() == 0 {
		return nil, errors.NewNotFound("extractor", "no embedded JSON script block")
	}

	// Script elements are raw text, so the entities reach us verbatim.
	raw := strings.TrimSpace(entityReplacer.Replace(block.Text()))

	var tree any
	if err := json.Unmarshal([]byte(raw), &tree); err != nil {
		return nil, errors.NewParse("extractor", "embedded JSON is malformed", err)
	}

	return tree, nil
}

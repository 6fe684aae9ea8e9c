package render

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/short-int-ali/PageLens/internal/model"
)

// maxHrefLength caps stored link targets. Longer hrefs (data blobs,
// tracking monsters) are truncated; they are evidence, not navigation.
const maxHrefLength = 2048

// elements whose text content is never user-visible.
var invisibleElements = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"template": true,
	"head":     true,
	"iframe":   true,
	"svg":      true,
}

// input types that carry no user-facing evidence.
var skippedInputTypes = map[string]bool{
	"hidden": true,
	"submit": true, // harvested as a button instead
	"button": true, // harvested as a button instead
	"reset":  true,
	"image":  true,
}

// ExtractHTML turns an HTML document into the fixed extraction shape.
// Both renderers share it: the browser renderer feeds it the rendered DOM,
// the static renderer the raw response body.
//
// Design decision: We query elements with goquery but walk text nodes with
// x/net/html directly because:
//  1. goquery's grouped selectors return matches in document order, which
//     the snapshot's ordered lists require
//  2. Selection.Text() includes script/style contents, so visible text
//     needs a filtered node walk anyway
func ExtractHTML(baseURL, htmlContent string) (*PageExtraction, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, err
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}

	ex := &PageExtraction{
		FinalURL: baseURL,
		Title:    strings.TrimSpace(doc.Find("title").First().Text()),
		Inputs:   make([]model.Input, 0),
		Buttons:  make([]model.Button, 0),
		Links:    make([]model.Link, 0),
	}

	ex.VisibleText = visibleText(doc)
	extractInputs(doc, ex)
	extractButtons(doc, ex)
	extractLinks(doc, base, ex)

	return ex, nil
}

// visibleText walks the DOM and joins user-visible text nodes, with all
// whitespace runs collapsed to single spaces.
func visibleText(doc *goquery.Document) string {
	var sb strings.Builder

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && invisibleElements[n.Data] {
			return
		}
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			sb.WriteString(" ")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, root := range doc.Nodes {
		walk(root)
	}

	return strings.Join(strings.Fields(sb.String()), " ")
}

// extractInputs harvests form controls in document order.
func extractInputs(doc *goquery.Document, ex *PageExtraction) {
	doc.Find("input, textarea, select").Each(func(_ int, s *goquery.Selection) {
		tag := goquery.NodeName(s)
		typ := strings.ToLower(strings.TrimSpace(s.AttrOr("type", "")))

		switch tag {
		case "textarea", "select":
			typ = tag
		case "input":
			if typ == "" {
				typ = "text"
			}
			if skippedInputTypes[typ] {
				return
			}
		}

		ex.Inputs = append(ex.Inputs, model.Input{
			Type:        typ,
			Name:        s.AttrOr("name", ""),
			Placeholder: s.AttrOr("placeholder", ""),
		})
	})
}

// buttonSelector matches real buttons plus button-styled links and
// ARIA buttons, the usual vehicles for calls-to-action.
const buttonSelector = `button, input[type="submit"], input[type="button"], a[class*="btn"], a[class*="button"], [role="button"]`

// extractButtons harvests submit controls and CTA-styled links.
func extractButtons(doc *goquery.Document, ex *PageExtraction) {
	seen := make(map[*html.Node]bool)

	doc.Find(buttonSelector).Each(func(_ int, s *goquery.Selection) {
		if len(s.Nodes) == 0 || seen[s.Nodes[0]] {
			return
		}
		seen[s.Nodes[0]] = true

		tag := goquery.NodeName(s)
		var text, typ string
		switch tag {
		case "input":
			text = s.AttrOr("value", "")
			typ = strings.ToLower(s.AttrOr("type", "submit"))
		case "a":
			text = s.Text()
			typ = "link"
		default:
			text = s.Text()
			typ = strings.ToLower(s.AttrOr("type", "submit"))
		}

		text = strings.Join(strings.Fields(text), " ")
		if text == "" {
			return
		}
		ex.Buttons = append(ex.Buttons, model.Button{Text: text, Type: typ})
	})
}

// extractLinks harvests anchors, resolving targets against the base URL.
func extractLinks(doc *goquery.Document, base *url.URL, ex *PageExtraction) {
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href := resolveHref(base, s.AttrOr("href", ""))
		if href == "" {
			return
		}
		ex.Links = append(ex.Links, model.Link{
			Href: href,
			Text: strings.Join(strings.Fields(s.Text()), " "),
		})
	})
}

// resolveHref resolves a raw href to an absolute URL where possible.
// javascript: pseudo-links and bare fragments are dropped as navigation
// noise; mailto: and tel: are kept verbatim because their anchor text is
// still claim evidence ("Contact us").
func resolveHref(base *url.URL, href string) string {
	href = strings.TrimSpace(href)
	if href == "" || href == "#" || strings.HasPrefix(href, "#") {
		return ""
	}
	if strings.HasPrefix(href, "javascript:") || strings.HasPrefix(href, "data:") {
		return ""
	}
	if strings.HasPrefix(href, "mailto:") || strings.HasPrefix(href, "tel:") {
		return truncateHref(href)
	}

	u, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return truncateHref(base.ResolveReference(u).String())
}

func truncateHref(href string) string {
	if len(href) > maxHrefLength {
		return href[:maxHrefLength]
	}
	return href
}

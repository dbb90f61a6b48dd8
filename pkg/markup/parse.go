package markup

import (
	"strings"

	"golang.org/x/net/html"
)

// Parse builds a Document from markup text using the standards-compliant
// golang.org/x/net/html parser. The tree is rooted at the <body> element
// (x/net/html wraps fragments in html/head/body), so the body cascades like
// any other element and its children flow inside it; <style> text from
// anywhere in the input is collected into Document.Stylesheets.
func Parse(input string) (*Document, error) {
	root, err := html.Parse(strings.NewReader(input))
	if err != nil {
		return nil, err
	}

	doc := NewDocument()
	collectStylesheets(root, doc)

	if body := findElement(root, "body"); body != nil {
		convertNode(body, doc.Root)
	}
	return doc, nil
}

func collectStylesheets(n *html.Node, doc *Document) {
	if n.Type == html.ElementNode && n.Data == "style" {
		var sb strings.Builder
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			if child.Type == html.TextNode {
				sb.WriteString(child.Data)
			}
		}
		if css := strings.TrimSpace(sb.String()); css != "" {
			doc.Stylesheets = append(doc.Stylesheets, css)
		}
		return
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		collectStylesheets(child, doc)
	}
}

func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if found := findElement(child, tag); found != nil {
			return found
		}
	}
	return nil
}

// convertNode copies an x/net/html node into our tree under parent.
// Comments, scripts, and style elements do not appear in the element tree.
func convertNode(n *html.Node, parent *Node) {
	switch n.Type {
	case html.TextNode:
		parent.AppendText(strings.TrimSpace(n.Data))
	case html.ElementNode:
		if n.Data == "script" || n.Data == "style" {
			return
		}
		el := &Node{
			Type:    ElementNode,
			TagName: n.Data,
		}
		if len(n.Attr) > 0 {
			el.Attributes = make(map[string]string, len(n.Attr))
			for _, attr := range n.Attr {
				el.Attributes[attr.Key] = attr.Val
			}
		}
		parent.AddChild(el)
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			convertNode(child, el)
		}
	}
}

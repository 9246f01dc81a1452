package jira

import "strings"

// adfNode is a minimal view of an Atlassian Document Format node: just
// enough structure to pull the text back out.
type adfNode struct {
	Type    string    `json:"type"`
	Text    string    `json:"text"`
	Content []adfNode `json:"content"`
}

// adfText flattens an ADF document into plain text. Block-level nodes
// end with a newline so paragraphs and list items stay separated.
func adfText(doc adfNode) string {
	var b strings.Builder
	for _, n := range doc.Content {
		writeNode(&b, n)
	}
	return strings.TrimSpace(b.String())
}

func writeNode(b *strings.Builder, n adfNode) {
	switch n.Type {
	case "text":
		b.WriteString(n.Text)
	case "hardBreak":
		b.WriteByte('\n')
	case "paragraph", "heading", "blockquote", "codeBlock",
		"bulletList", "orderedList", "listItem", "panel":
		for _, c := range n.Content {
			writeNode(b, c)
		}
		b.WriteByte('\n')
	default:
		// Unknown node kinds may still carry text content.
		for _, c := range n.Content {
			writeNode(b, c)
		}
	}
}

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SaxonRah/pygame-markup-gui/pkg/layout"
	"github.com/SaxonRah/pygame-markup-gui/pkg/markup"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <input.html>",
	Short: "Print the positioned layout tree",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tree, err := layoutFile(args[0])
		if err != nil {
			return err
		}
		for _, root := range tree.Roots {
			dumpBox(cmd, root, 0)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func dumpBox(cmd *cobra.Command, box *layout.Box, depth int) {
	indent := strings.Repeat("  ", depth)
	content := box.ContentRect()
	cmd.Printf("%s%s x=%.1f y=%.1f w=%.1f h=%.1f display=%s\n",
		indent, describeNode(box.Node), content.X, content.Y,
		content.Width, content.Height, box.Style.Display())
	for _, child := range box.Children {
		dumpBox(cmd, child, depth+1)
	}
}

// describeNode renders a node the way a selector would address it,
// e.g. div#main.panel or "text".
func describeNode(node *markup.Node) string {
	if node.Type == markup.TextNode {
		text := node.Text
		if len(text) > 24 {
			text = text[:24] + "..."
		}
		return fmt.Sprintf("%q", text)
	}
	var b strings.Builder
	b.WriteString(node.TagName)
	if id := node.ID(); id != "" {
		b.WriteString("#")
		b.WriteString(id)
	}
	for _, class := range node.Classes() {
		b.WriteString(".")
		b.WriteString(class)
	}
	return b.String()
}

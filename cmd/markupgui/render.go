package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/SaxonRah/pygame-markup-gui/pkg/css"
	"github.com/SaxonRah/pygame-markup-gui/pkg/layout"
	"github.com/SaxonRah/pygame-markup-gui/pkg/markup"
	"github.com/SaxonRah/pygame-markup-gui/pkg/render"
)

var renderCmd = &cobra.Command{
	Use:   "render <input.html> <output.png>",
	Short: "Lay out a document and paint it to a PNG",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		tree, err := layoutFile(args[0])
		if err != nil {
			return err
		}

		width := viper.GetFloat64("viewport.width")
		height := viper.GetFloat64("viewport.height")
		r := render.NewRenderer(int(width), int(height))
		r.Render(tree)
		if err := r.SavePNG(args[1]); err != nil {
			return fmt.Errorf("writing %s: %w", args[1], err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
}

// layoutFile runs the full pipeline for a markup file on disk: parse,
// attach extra stylesheets from the config, and reflow at the configured
// viewport size.
func layoutFile(path string) (*layout.Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	doc, err := markup.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	logger := newLogger()
	defer logger.Sync()

	engine := layout.NewEngine(viper.GetFloat64("viewport.width"), viper.GetFloat64("viewport.height"))
	engine.SetLogger(logger)
	engine.RegisterExtension("sprite-tint", "sprite-scale", "sprite-rotation", "sprite-alpha")

	for _, cssPath := range viper.GetStringSlice("stylesheets") {
		text, err := os.ReadFile(cssPath)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", cssPath, err)
		}
		sheet, err := css.ParseStylesheet(string(text))
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", cssPath, err)
		}
		engine.AddStylesheet(sheet)
	}

	return engine.Reflow(doc)
}

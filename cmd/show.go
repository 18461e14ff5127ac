package cmd

import (
	"fmt"
	"log"

	"github.com/flosch/pongo2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var templatePath string

const defaultTemplate = `{% for c in colors %}{{ c.group }} {{ c.name }} {{ c.hex }}
{% endfor %}`

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Render the palette through a template",
	Long: `Renders every palette color through a pongo2 template, for exporting
palette data into app config formats. Each color exposes its group, name,
hex string, and rgb channels.`,
	Args: cobra.ExactArgs(0),
	Run: func(cmd *cobra.Command, args []string) {
		p, e := loadPalette()
		if e != nil {
			log.Fatal(e)
		}

		tpl, e := loadTemplate()
		if e != nil {
			log.Fatal(e)
		}

		colors := make([]map[string]interface{}, p.Len())
		for i, c := range p.Colors() {
			colors[i] = map[string]interface{}{
				"group": c.Group,
				"name":  c.Name,
				"hex":   c.Hex,
				"r":     c.RGB.R(),
				"g":     c.RGB.G(),
				"b":     c.RGB.B(),
			}
		}

		o, e := tpl.Execute(pongo2.Context{"colors": colors})
		if e != nil {
			log.Fatal(e)
		}
		fmt.Print(o)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().StringVarP(&templatePath, "template", "t", "", "pongo2 template file")
}

func loadTemplate() (*pongo2.Template, error) {
	path := templatePath
	if path == "" {
		path = viper.GetString("template")
	}
	if path == "" {
		return pongo2.FromString(defaultTemplate)
	}
	return pongo2.FromFile(path)
}

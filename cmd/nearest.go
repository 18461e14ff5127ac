package cmd

import (
	"fmt"
	"log"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mmuldo/jcc/convert"
	"github.com/mmuldo/jcc/palette"
)

var palettePath string

// nearestCmd represents the nearest command
var nearestCmd = &cobra.Command{
	Use:   "nearest <r> <g> <b>",
	Short: "Find the closest palette color",
	Long: `Finds the palette color perceptually closest to an RGB color,
using the CIE2000 color difference in Lab space.`,
	Args: cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		var rgb convert.RGB
		for i, a := range args {
			v, e := strconv.ParseFloat(a, 64)
			if e != nil {
				log.Fatal(e)
			}
			rgb[i] = v
		}

		p, e := loadPalette()
		if e != nil {
			log.Fatal(e)
		}

		ix, d := p.Nearest(rgb)
		c := p.Color(ix)
		fmt.Printf("%s (%s) %s deltaE=%.2f\n", c.Name, c.Group, c.Hex, d)
	},
}

func init() {
	rootCmd.AddCommand(nearestCmd)

	rootCmd.PersistentFlags().StringVarP(&palettePath, "palette", "p", "", "palette CSV file (default is the builtin x11 palette)")
}

// loadPalette resolves the palette from the flag, then the config file,
// then the builtin default.
func loadPalette() (*palette.Palette, error) {
	path := palettePath
	if path == "" {
		path = viper.GetString("palette")
	}
	if path == "" {
		return palette.X11(), nil
	}
	return palette.LoadFile(path)
}

package cmd

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mmuldo/jcc/convert"
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert <from> <to> <c0> <c1> <c2>",
	Short: "Convert a color between spaces",
	Long: `Converts a single color triplet between any two of rgb, hsv, hls,
xyz, and lab. RGB channels are on the 0-255 scale and hue is in degrees.`,
	Args: cobra.ExactArgs(5),
	Run: func(cmd *cobra.Command, args []string) {
		var in [3]float64
		for i, a := range args[2:] {
			v, e := strconv.ParseFloat(a, 64)
			if e != nil {
				log.Fatal(e)
			}
			in[i] = v
		}

		f, ok := conversions[strings.ToLower(args[0])+"/"+strings.ToLower(args[1])]
		if !ok {
			log.Fatalf("no conversion from '%s' to '%s'", args[0], args[1])
		}

		out := f(in)
		fmt.Printf("%g %g %g\n", out[0], out[1], out[2])
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

var conversions = map[string]func([3]float64) [3]float64{
	"rgb/hsv": wrap(convert.RGB2HSV),
	"rgb/hls": wrap(convert.RGB2HLS),
	"rgb/xyz": wrap(convert.RGB2XYZ),
	"rgb/lab": wrap(convert.RGB2Lab),
	"hsv/rgb": wrap(convert.HSV2RGB),
	"hsv/hls": wrap(convert.HSV2HLS),
	"hsv/xyz": wrap(convert.HSV2XYZ),
	"hsv/lab": wrap(convert.HSV2Lab),
	"hls/rgb": wrap(convert.HLS2RGB),
	"hls/hsv": wrap(convert.HLS2HSV),
	"hls/xyz": wrap(convert.HLS2XYZ),
	"hls/lab": wrap(convert.HLS2Lab),
	"xyz/rgb": wrap(convert.XYZ2RGB),
	"xyz/hsv": wrap(convert.XYZ2HSV),
	"xyz/hls": wrap(convert.XYZ2HLS),
	"xyz/lab": wrap(convert.XYZ2Lab),
	"lab/rgb": wrap(convert.Lab2RGB),
	"lab/hsv": wrap(convert.Lab2HSV),
	"lab/hls": wrap(convert.Lab2HLS),
	"lab/xyz": wrap(convert.Lab2XYZ),
}

func wrap[In, Out ~[3]float64](f func(In) Out) func([3]float64) [3]float64 {
	return func(t [3]float64) [3]float64 {
		return [3]float64(f(In(t)))
	}
}

/*
Copyright © 2020 Matt Muldowney <matt.muldowney@gmail.com>

*/
package main

import "github.com/mmuldo/jcc/cmd"

func main() {
	cmd.Execute()
}

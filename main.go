package main

import "github.com/truemediaorg/emotiondetector/cmd"

func main() {
	cmd.Execute()
}

package main

import (
	"context"

	"github.com/sethvargo/go-githubactions"

	"github.com/forgent-ai/changelog/cmd"
)

func main() {
	if err := cmd.Execute(context.Background()); err != nil {
		// Single terminal failure: an ::error:: workflow command and exit 1.
		githubactions.Fatalf("%s", err.Error())
	}
}

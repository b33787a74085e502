package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/snipdoc"
)

// Run executes the anchors command.
func (c *AnchorsCmd) Run(deps *Dependencies) error {
	var failed int
	for _, file := range c.Files {
		data, err := os.ReadFile(file)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: cannot read %s: %v\n", file, err)
			failed++
			continue
		}

		anchors, err := deps.Anchors.Check(string(data))
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s: %s\n", file, snipdoc.ErrorMessage(err))
			failed++
			continue
		}

		fmt.Fprintf(deps.Stdout, "%s  %d anchors\n", file, len(anchors))
	}

	if failed > 0 {
		return snipdoc.Errorf(snipdoc.EINVALID, "%d of %d files failed the anchor check", failed, len(c.Files))
	}
	return nil
}

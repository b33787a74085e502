package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/snipdoc"
)

// Run executes the strip command.
func (c *StripCmd) Run(deps *Dependencies) error {
	var data []byte
	var err error
	if c.File == "" {
		data, err = io.ReadAll(deps.Stdin)
	} else {
		data, err = os.ReadFile(c.File)
	}
	if err != nil {
		err = snipdoc.Wrapf(err, snipdoc.EMISSING, "cannot read input: %v", err)
		fmt.Fprintf(deps.Stderr, "error: %s\n", snipdoc.ErrorMessage(err))
		return err
	}

	fmt.Fprint(deps.Stdout, deps.Stripper.Strip(string(data)))
	return nil
}

package main

import (
	"fmt"

	"github.com/fwojciec/snipdoc"
)

// Run executes the versions command.
func (c *VersionsCmd) Run(deps *Dependencies) error {
	if c.Key != "" {
		v, ok := deps.Versions.Get(c.Key)
		if !ok {
			err := snipdoc.Errorf(snipdoc.ENOTFOUND, "no version for %q", c.Key)
			fmt.Fprintf(deps.Stderr, "error: %s\n", snipdoc.ErrorMessage(err))
			return err
		}
		fmt.Fprintln(deps.Stdout, v)
		return nil
	}

	if len(deps.Versions) == 0 {
		fmt.Fprintln(deps.Stdout, "No versions found.")
		return nil
	}

	for _, k := range deps.Versions.Keys() {
		fmt.Fprintf(deps.Stdout, "%s  %s\n", k, deps.Versions[k])
	}
	return nil
}

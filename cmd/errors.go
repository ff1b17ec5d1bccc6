/*
Copyright © 2023 Kovalev Pavel kovalev5690@gmail.com
*/package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/Pavel7004/goHidCmd/pkg/hexcmd"
)

const (
	exitOK      = 0
	exitFailure = 1
)

// report prints err and returns the process exit code. The non-hex diagnostic
// goes to stdout, in place of the command line; everything else to stderr.
func report(stdout, stderr io.Writer, err error) int {
	if err == nil {
		return exitOK
	}

	var verr *hexcmd.ValidationError
	if errors.As(err, &verr) {
		fmt.Fprintln(stdout, verr.Error())
		return exitFailure
	}

	fmt.Fprintf(stderr, "hidcmd: %v\n", err)
	return exitFailure
}

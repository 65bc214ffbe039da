package main

import (
	"os"

	"github.com/ottorg/jtravail/app"
	"github.com/ottorg/jtravail/internal/osutil"
	"github.com/ottorg/jtravail/report"
)

func run(args []string) error {
	return app.Get().Run(args)
}

func main() {
	err := run(os.Args)
	if err != nil {
		report.Error(err)
		os.Exit(osutil.ExitError)
	}
}

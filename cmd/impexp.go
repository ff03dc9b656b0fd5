package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
)

type exportCmd struct{}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "Write the whole store to stdout as JSON" }
func (*exportCmd) Usage() string {
	return `export

  Writes every stored collection as a single JSON document on stdout.
  The dump can be loaded back with the import command.

Example:
  nexo export > dump.json
`
}

func (*exportCmd) SetFlags(*flag.FlagSet) {}

func (c *exportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, err := openApp()
	if err != nil {
		return fail(err)
	}
	if err := app.Export(os.Stdout); err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}

type importCmd struct {
	file string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "Load a JSON dump into the store" }
func (*importCmd) Usage() string {
	return `import [-f <file>]

  Reads a JSON document from the file, or stdin when no file is given, and
  stores every collection it finds. Collections absent from the document
  are left as they are. The document may wrap the collections in an outer
  object; they are found wherever they sit.

Example:
  nexo import -f dump.json
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "File to read the dump from (default stdin)")
}

func (c *importCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, err := openApp()
	if err != nil {
		return fail(err)
	}
	var r io.Reader = os.Stdin
	if c.file != "" {
		file, err := os.Open(c.file)
		if err != nil {
			return fail(err)
		}
		defer file.Close()
		r = file
	}
	if err := app.Import(r); err != nil {
		return fail(err)
	}
	fmt.Println("Import done.")
	return subcommands.ExitSuccess
}

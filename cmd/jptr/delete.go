package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/calumari/jpointer"
)

// del is the delete subcommand; delete is a builtin.
func del(cfg *DeleteConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Delete.Parse(cc, args)
	if err != nil {
		cfg.Delete.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: delete requires a pointer", cli.ErrUsage)
	}
	doc, err := cfg.readDoc(cc, args[1:])
	if err != nil {
		return err
	}
	p := jpointer.New(args[0], cfg.pointerOpts()...)
	doc, _ = p.Delete(doc)
	return cfg.writeDoc(cc.Out, doc)
}

package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/calumari/jpointer"
)

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		cfg.Set.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: set requires a pointer and a value", cli.ErrUsage)
	}
	doc, err := cfg.readDoc(cc, args[2:])
	if err != nil {
		return err
	}
	p := jpointer.New(args[0], cfg.pointerOpts()...)
	doc, _ = p.Set(doc, cfg.parseValue(args[1]))
	return cfg.writeDoc(cc.Out, doc)
}

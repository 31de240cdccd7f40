package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/calumari/jpointer"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires a pointer", cli.ErrUsage)
	}
	doc, err := cfg.readDoc(cc, args[1:])
	if err != nil {
		return err
	}
	p := jpointer.New(args[0], cfg.pointerOpts()...)
	return cfg.writeDoc(cc.Out, p.Get(doc))
}

package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"

	"github.com/calumari/jpointer"
)

func exists(cfg *ExistsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Exists.Parse(cc, args)
	if err != nil {
		cfg.Exists.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: exists requires a pointer", cli.ErrUsage)
	}
	doc, err := cfg.readDoc(cc, args[1:])
	if err != nil {
		return err
	}
	ok := jpointer.New(args[0], cfg.pointerOpts()...).Exists(doc)
	fmt.Fprintln(cc.Out, existsText(ok, useColor(cc.Out)))
	return nil
}

func existsText(ok, colored bool) string {
	switch {
	case !colored:
		return fmt.Sprint(ok)
	case ok:
		return color.GreenString("true")
	default:
		return color.RedString("false")
	}
}

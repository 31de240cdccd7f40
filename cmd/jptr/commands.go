package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
)

const usageText = `jptr reads and edits JSON or YAML documents by pointer.

Pointers are "/"-separated, with "~1" and "~0" escaping "/" and "~".
"*" matches every array element and a final "-" appends to an array.

Examples:
  jptr get /users/0/name users.json
  jptr get /users/*/email users.json
  jptr exists /users/3 users.json
  jptr set /users/-  '{"name":"ann"}' users.json
  jptr set /config/retries 3 < config.json
  jptr -y delete /deployment/replicas deploy.yaml`

func MainCommand() *cli.Command {
	cfg := &MainConfig{Err: os.Stderr}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "jptr").
		WithSynopsis("jptr [opts] command [opts]").
		WithDescription(usageText).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return jptrMain(cfg, cc, args)
		}).
		WithSubs(
			GetCommand(cfg),
			ExistsCommand(cfg),
			SetCommand(cfg),
			DeleteCommand(cfg))
}

func jptrMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("get").
		WithAliases("g").
		WithSynopsis("get <pointer> [file]").
		WithDescription("print the value at pointer; missing values print null").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func ExistsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ExistsConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("exists").
		WithAliases("x").
		WithSynopsis("exists <pointer> [file]").
		WithDescription("print whether pointer resolves; a stored null counts as present").
		WithRun(func(cc *cli.Context, args []string) error {
			return exists(cfg, cc, args)
		})
	cfg.Exists = cmd
	return cmd
}

func SetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("set").
		WithAliases("s").
		WithSynopsis("set <pointer> <value> [file]").
		WithDescription("write value at pointer and print the document").
		WithRun(func(cc *cli.Context, args []string) error {
			return set(cfg, cc, args)
		})
	cfg.Set = cmd
	return cmd
}

func DeleteCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DeleteConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("delete").
		WithAliases("d", "rm").
		WithSynopsis("delete <pointer> [file]").
		WithDescription("remove the value at pointer and print the document").
		WithRun(func(cc *cli.Context, args []string) error {
			return del(cfg, cc, args)
		})
	cfg.Delete = cmd
	return cmd
}

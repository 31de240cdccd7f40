package main

import (
	"fmt"
	"io"
	"os"

	"github.com/go-json-experiment/json/jsontext"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/calumari/jpointer"
)

type MainConfig struct {
	Y        bool   `cli:"name=y aliases=yaml desc='do i/o in yaml'"`
	Wildcard string `cli:"name=wildcard aliases=w desc='token matching every array element (default *)'"`
	Append   string `cli:"name=append desc='final token appending to an array (default -)'"`
	Intern   bool   `cli:"name=intern desc='intern object keys'"`
	Maps     bool   `cli:"name=maps desc='create missing objects as unordered maps'"`
	Verbose  bool   `cli:"name=v desc='log skipped writes to stderr'"`

	Err io.Writer

	Main *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type ExistsConfig struct {
	*MainConfig

	Exists *cli.Command
}

type SetConfig struct {
	*MainConfig

	Set *cli.Command
}

type DeleteConfig struct {
	*MainConfig

	Delete *cli.Command
}

func (cfg *MainConfig) pointerOpts() []jpointer.Option {
	opts := []jpointer.Option{
		jpointer.WithLogger(newLog(cfg.Err, cfg.Verbose)),
	}
	if cfg.Wildcard != "" {
		opts = append(opts, jpointer.WithWildcard(cfg.Wildcard))
	}
	if cfg.Append != "" {
		opts = append(opts, jpointer.WithAppend(cfg.Append))
	}
	if cfg.Intern {
		opts = append(opts, jpointer.WithKeyTransform(jpointer.InternKeys))
	}
	if cfg.Maps {
		opts = append(opts, jpointer.WithMaps())
	}
	return opts
}

// readDoc decodes the document named by args, or stdin when args is empty or
// "-".
func (cfg *MainConfig) readDoc(cc *cli.Context, args []string) (any, error) {
	if len(args) > 1 {
		return nil, fmt.Errorf("%w: at most one input file", cli.ErrUsage)
	}
	var (
		data []byte
		err  error
	)
	if len(args) == 0 || args[0] == "-" {
		data, err = io.ReadAll(cc.In)
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return cfg.decode(data)
}

func (cfg *MainConfig) decode(data []byte) (any, error) {
	if cfg.Y {
		return jpointer.DecodeYAML(data)
	}
	return jpointer.Decode(data)
}

// parseValue decodes a command line value. Text that does not decode is
// taken as a plain string, so `jptr set /name bob` needs no quoting.
func (cfg *MainConfig) parseValue(s string) any {
	v, err := cfg.decode([]byte(s))
	if err != nil {
		return s
	}
	return v
}

func (cfg *MainConfig) writeDoc(w io.Writer, v any) error {
	var (
		out []byte
		err error
	)
	if cfg.Y {
		out, err = jpointer.EncodeYAML(v)
	} else {
		out, err = jpointer.Encode(v, jsontext.WithIndent("  "))
		out = append(out, '\n')
	}
	if err != nil {
		return err
	}
	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func useColor(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

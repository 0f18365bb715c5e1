package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/signadot/go-jsonptr/encode"
	"github.com/signadot/go-jsonptr/ir"
	"github.com/signadot/go-jsonptr/parse"
)

type DiffConfig struct {
	*MainConfig
	Diff *cli.Command
}

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff takes exactly two documents", cli.ErrUsage)
	}
	a, err := loadCanonical(cfg, args[0])
	if err != nil {
		return err
	}
	b, err := loadCanonical(cfg, args[1])
	if err != nil {
		return err
	}
	if a == b {
		return nil
	}
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	return writeDiffs(cc.Out, diffs, cfg.useColor())
}

// loadCanonical renders the document as indented JSON so the text diff
// tracks structure, not input formatting.
func loadCanonical(cfg *DiffConfig, file string) (string, error) {
	in, err := readInput(file)
	if err != nil {
		return "", err
	}
	doc, err := parse.Parse(in, cfg.parseOpts(file)...)
	if err != nil {
		return "", fmt.Errorf("error decoding %s: %w", file, err)
	}
	return canonicalString(doc)
}

func canonicalString(doc *ir.Node) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(doc, buf); err != nil {
		return "", err
	}
	buf.WriteByte('\n')
	return buf.String(), nil
}

func (cfg *DiffConfig) useColor() bool {
	if cfg.Color {
		return true
	}
	return cfg.Out == "" && isatty.IsTerminal(os.Stdout.Fd())
}

func writeDiffs(w io.Writer, diffs []diffpatch.Diff, colored bool) error {
	var (
		del = color.New(color.FgRed)
		ins = color.New(color.FgGreen)
	)
	for _, d := range diffs {
		var err error
		switch d.Type {
		case diffpatch.DiffEqual:
			_, err = io.WriteString(w, d.Text)
		case diffpatch.DiffDelete:
			if colored {
				_, err = del.Fprint(w, d.Text)
			} else {
				_, err = fmt.Fprintf(w, "[-%s-]", d.Text)
			}
		case diffpatch.DiffInsert:
			if colored {
				_, err = ins.Fprint(w, d.Text)
			} else {
				_, err = fmt.Fprintf(w, "[+%s+]", d.Text)
			}
		}
		if err != nil {
			return err
		}
	}
	return nil
}

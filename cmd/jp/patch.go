package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/signadot/go-jsonptr/encode"
	"github.com/signadot/go-jsonptr/format"
	"github.com/signadot/go-jsonptr/ir"
	"github.com/signadot/go-jsonptr/parse"
	"github.com/signadot/go-jsonptr/patch"
)

type PatchConfig struct {
	*MainConfig
	Patch *cli.Command

	PatchFile string
	ops       patch.Patch
	haveOps   bool
}

func (cfg *PatchConfig) patchOpt(cc *cli.Context, a string) (any, error) {
	cfg.PatchFile = a
	d, err := readInput(a)
	if err != nil {
		return nil, err
	}
	ops, err := loadPatch(d, format.FromPath(a))
	if err != nil {
		return nil, fmt.Errorf("could not decode patch %q: %w", a, err)
	}
	cfg.ops = ops
	cfg.haveOps = true
	return nil, nil
}

// loadPatch accepts the wire format directly or a YAML rendering of it,
// normalized through the ir JSON form.
func loadPatch(d []byte, f format.Format) (patch.Patch, error) {
	if f == format.JSONFormat {
		return patch.DecodePatch(d)
	}
	node, err := parse.Parse(d, parse.ParseFormat(f))
	if err != nil {
		return nil, err
	}
	wire, err := ir.ToJSON(node)
	if err != nil {
		return nil, err
	}
	return patch.DecodePatch(wire)
}

func applyPatch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if !cfg.haveOps {
		return fmt.Errorf("%w: missing -p patchfile", cli.ErrUsage)
	}
	files := args
	if len(files) == 0 {
		files = []string{"-"}
	}
	for i, file := range files {
		if err := patchFile(cfg, cc.Out, file); err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
		if i < len(files)-1 {
			io.WriteString(cc.Out, "\n---\n")
		}
	}
	return nil
}

func patchFile(cfg *PatchConfig, w io.Writer, file string) error {
	in, err := readInput(file)
	if err != nil {
		return err
	}
	doc, err := parse.Parse(in, cfg.parseOpts(file)...)
	if err != nil {
		return fmt.Errorf("error decoding document: %w", err)
	}
	res, err := cfg.ops.Apply(doc)
	if err != nil {
		return err
	}
	if err := encode.Encode(res, w, cfg.encodeOpts()...); err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n")
	return err
}

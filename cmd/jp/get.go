package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/signadot/go-jsonptr/debug"
	"github.com/signadot/go-jsonptr/encode"
	"github.com/signadot/go-jsonptr/parse"
)

type GetConfig struct {
	*MainConfig
	Get *cli.Command
}

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: missing pointer", cli.ErrUsage)
	}
	ptr := args[0]
	files := args[1:]
	if len(files) == 0 {
		files = []string{"-"}
	}
	for i, file := range files {
		if err := getFile(cfg, cc.Out, ptr, file); err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
		if i < len(files)-1 {
			io.WriteString(cc.Out, "\n---\n")
		}
	}
	return nil
}

func getFile(cfg *GetConfig, w io.Writer, ptr, file string) error {
	in, err := readInput(file)
	if err != nil {
		return err
	}
	doc, err := parse.Parse(in, cfg.parseOpts(file)...)
	if err != nil {
		return fmt.Errorf("error decoding document: %w", err)
	}
	if debug.Fetch() {
		debug.Logf("get %q from %s\n", ptr, file)
	}
	res, err := doc.GetPointer(ptr)
	if err != nil {
		return err
	}
	if err := encode.Encode(res, w, cfg.encodeOpts()...); err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n")
	return err
}

package main

import (
	"github.com/dx-tools/go-dx/encode"
	"github.com/dx-tools/go-dx/flat"

	"github.com/scott-cotton/cli"
)

func flatten(cfg *FlattenConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Flatten.Parse(cc, args)
	if err != nil {
		return err
	}
	fOpts := []flat.Option{flat.Separator(cfg.Sep)}
	if cfg.MaxDepth >= 0 {
		fOpts = append(fOpts, flat.MaxDepth(cfg.MaxDepth))
	}
	for _, file := range inputArgs(args) {
		node, err := getObjFile(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		res, err := flat.Flatten(node, fOpts...)
		if err != nil {
			return err
		}
		if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return err
		}
	}
	return nil
}

func unflatten(cfg *UnflattenConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Unflatten.Parse(cc, args)
	if err != nil {
		return err
	}
	for _, file := range inputArgs(args) {
		node, err := getObjFile(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		res, err := flat.Unflatten(node, flat.Separator(cfg.Sep))
		if err != nil {
			return err
		}
		if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return err
		}
	}
	return nil
}

package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{Indent: 2}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}, &cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "dx").
		WithSynopsis("dx [opts] command [opts]").
		WithDescription("dx is a tool for shaping structured data files.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return dxMain(cfg, cc, args)
		}).
		WithSubs(
			FlattenCommand(cfg),
			UnflattenCommand(cfg),
			ConvertCommand(cfg),
			BatchCommand(cfg),
			MergeCommand(cfg),
			ValidateCommand(cfg),
			EnvTplCommand(cfg),
			DiffCommand(cfg),
			PatchCommand(cfg),
			ViewCommand(cfg))
}

func FlattenCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FlattenConfig{MainConfig: mainCfg, Sep: ".", MaxDepth: -1}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("flatten").
		WithAliases("f", "fl").
		WithSynopsis("flatten [-s sep] [-d maxDepth] [files]").
		WithDescription("flatten nested documents to dotted path keys").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return flatten(cfg, cc, args)
		})
	cfg.Flatten = cmd
	return cmd
}

func UnflattenCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &UnflattenConfig{MainConfig: mainCfg, Sep: "."}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("unflatten").
		WithAliases("u", "un").
		WithSynopsis("unflatten [-s sep] [files]").
		WithDescription("rebuild nested documents from dotted path keys").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return unflatten(cfg, cc, args)
		})
	cfg.Unflatten = cmd
	return cmd
}

func ConvertCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ConvertConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("convert").
		WithAliases("c", "co").
		WithSynopsis("convert <input> <output>").
		WithDescription("convert a document between YAML and JSON by suffix").
		WithRun(func(cc *cli.Context, args []string) error {
			return convert(cfg, cc, args)
		})
	cfg.Convert = cmd
	return cmd
}

func BatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &BatchConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("batch").
		WithAliases("b").
		WithSynopsis("batch -from (format) -to (format) <inputdir> <outputdir>").
		WithDescription("batch convert a directory of documents").
		WithOpts(
			&cli.Opt{
				Name:        "from",
				Description: "source format: json/j, yaml/y",
				Type:        cli.NamedFuncOpt(mainCfg.fmtFunc(&cfg.From), "(format)"),
			},
			&cli.Opt{
				Name:        "to",
				Description: "target format: json/j, yaml/y",
				Type:        cli.NamedFuncOpt(mainCfg.fmtFunc(&cfg.To), "(format)"),
			}).
		WithRun(func(cc *cli.Context, args []string) error {
			return batchRun(cfg, cc, args)
		})
	cfg.Batch = cmd
	return cmd
}

func MergeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MergeConfig{MainConfig: mainCfg, Mode: "rows"}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("merge").
		WithAliases("m", "me").
		WithSynopsis("merge [-mode rows|columns] [-source] [-dedup] [csvfiles]").
		WithDescription("merge CSV files").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return merge(cfg, cc, args)
		})
	cfg.Merge = cmd
	return cmd
}

func ValidateCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ValidateConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts,
		&cli.Opt{
			Name:        "r",
			Aliases:     []string{"rule"},
			Description: "validation rule (field:required:type=email:unique)",
			Type: cli.NamedFuncOpt(cli.FuncOpt(func(_ *cli.Context, a string) (any, error) {
				cfg.Rules = append(cfg.Rules, a)
				return a, nil
			}), "(rule)"),
		})
	cmd := cli.NewCommand("validate").
		WithAliases("v", "va").
		WithSynopsis("validate -r rule [-r rule ...] [opts] <file>").
		WithDescription("validate CSV or JSON data files against field rules").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return validateRun(cfg, cc, args)
		})
	cfg.Validate = cmd
	return cmd
}

func EnvTplCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EnvTplConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts,
		&cli.Opt{
			Name:        "pattern",
			Description: "extra regex for sensitive keys (repeatable)",
			Type: cli.NamedFuncOpt(cli.FuncOpt(func(_ *cli.Context, a string) (any, error) {
				return envTplPattern(cfg, a)
			}), "(regex)"),
		})
	cmd := cli.NewCommand("envtpl").
		WithAliases("e", "env").
		WithSynopsis("envtpl [-p placeholder] [-pattern re ...] [-keep] [input]").
		WithDescription("generate an env template with sensitive values masked").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return envTpl(cfg, cc, args)
		})
	cfg.EnvTpl = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("diff").
		WithAliases("d", "di").
		WithSynopsis("diff a b").
		WithDescription("line diff of normalized documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("patch").
		WithAliases("p", "pa").
		WithSynopsis("patch <patchfile> <docfile>").
		WithDescription("apply a JSON patch or merge patch to a document").
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
	cfg.Patch = cmd
	return cmd
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("view").
		WithAliases("vw").
		WithSynopsis("view [files]").
		WithDescription("view documents, pretty printed and colored").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

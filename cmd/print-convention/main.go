package main

import (
	"fmt"
	"os"

	"github.com/pattyshack/gt/parseutil"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pattyshack/regconfig/architecture"
	"github.com/pattyshack/regconfig/platform"
	"github.com/pattyshack/regconfig/platform/sparc"
	"github.com/pattyshack/regconfig/platform/targets"
	"github.com/pattyshack/regconfig/signature"
	"github.com/pattyshack/regconfig/util"
)

var (
	configPath      string
	callKindName    string
	excludeHeapBase bool
	logLevel        string
)

func main() {
	cmd := &cobra.Command{
		Use:   "print-convention [signature files...]",
		Short: "Print the calling convention of every signature in the files",
		Args:  cobra.MinimumNArgs(1),
		RunE:  run,
	}

	cmd.Flags().StringVar(
		&configPath,
		"config",
		"",
		"target configuration file (.yaml, .yml or .toml)")
	cmd.Flags().StringVar(
		&callKindName,
		"call-kind",
		"managed",
		"call kind, one of [managed, managed-callee, native]")
	cmd.Flags().BoolVar(
		&excludeHeapBase,
		"exclude-heap-base",
		true,
		"reserve the compressed heap base register")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "log level override")

	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig(cmd *cobra.Command) (platform.TargetConfig, error) {
	config := platform.DefaultTargetConfig()
	if configPath != "" {
		var err error
		config, err = platform.LoadTargetConfig(configPath)
		if err != nil {
			return config, err
		}
	}

	if cmd.Flags().Changed("exclude-heap-base") {
		config.CompressedHeapBase = excludeHeapBase
	}

	if logLevel != "" {
		config.LogLevel = logLevel
	}

	return config, config.Validate()
}

func newLogger(config platform.TargetConfig) (*zap.Logger, error) {
	level, err := config.Level()
	if err != nil {
		return nil, err
	}

	zapConfig := zap.NewDevelopmentConfig()
	zapConfig.Level = zap.NewAtomicLevelAt(level)
	zapConfig.OutputPaths = []string{"stderr"}
	return zapConfig.Build()
}

func run(cmd *cobra.Command, args []string) error {
	config, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	callKind, err := platform.ParseCallKind(callKindName)
	if err != nil {
		return err
	}

	logger, err := newLogger(config)
	if err != nil {
		return err
	}
	defer logger.Sync()

	targetPlatform, err := targets.NewPlatform(config, logger)
	if err != nil {
		return err
	}
	registerConfig := targetPlatform.RegisterConfig()

	for _, fileName := range args {
		fmt.Println("=====================")
		fmt.Println("File name:", fileName)
		fmt.Println("---------------------")
		content, err := os.ReadFile(fileName)
		if err != nil {
			fmt.Println("ReadFile error:", err)
			continue
		}

		emitter := &parseutil.Emitter{}
		signatures := signature.Parse(
			parseutil.NewBufferedByteLocationReaderFromSlice(
				fileName,
				content),
			emitter)

		logger.Debug(
			"parsed signatures",
			zap.String("file", fileName),
			zap.Int("count", len(signatures)))

		conventions := util.ParallelMap(
			signatures,
			func(sig *signature.Signature) *platform.CallingConvention {
				return registerConfig.CallingConvention(
					callKind,
					sig.Return,
					sig.Parameters,
					sparc.ValueKindFactory{})
			})

		for idx, sig := range signatures {
			printConvention(idx, sig, callKind, conventions[idx])
		}

		errs := emitter.Errors()
		if len(errs) > 0 {
			fmt.Println("---------------------------")
			fmt.Println("Found", len(errs), "errors:")
			fmt.Println("---------------------------")
			for idx, err := range errs {
				fmt.Printf("error %d: %s\n", idx, err)
			}
		}
	}

	return nil
}

func printConvention(
	idx int,
	sig *signature.Signature,
	callKind platform.CallKind,
	cc *platform.CallingConvention,
) {
	fmt.Printf("Signature %d (%s call): %s\n", idx, callKind, sig)
	for argIdx, loc := range cc.Arguments {
		fmt.Printf(
			"  arg %d %-7s -> %s\n",
			argIdx,
			sig.Parameters[argIdx],
			loc)
	}

	if architecture.IsIllegal(cc.Return) {
		fmt.Println("  return         -> (void)")
	} else {
		fmt.Printf("  return %-7s -> %s\n", sig.Return, cc.Return)
	}
	fmt.Println("  stack size:", cc.StackSize)
}

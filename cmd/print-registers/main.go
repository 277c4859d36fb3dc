package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/xlab/treeprint"
	"go.uber.org/zap"

	"github.com/pattyshack/regconfig/architecture"
	"github.com/pattyshack/regconfig/platform"
	"github.com/pattyshack/regconfig/platform/targets"
)

var (
	configPath string
)

func main() {
	cmd := &cobra.Command{
		Use:   "print-registers",
		Short: "Print the target's register catalog and register sets",
		Args:  cobra.NoArgs,
		RunE:  run,
	}

	cmd.Flags().StringVar(
		&configPath,
		"config",
		"",
		"target configuration file (.yaml, .yml or .toml)")

	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	config := platform.DefaultTargetConfig()
	if configPath != "" {
		var err error
		config, err = platform.LoadTargetConfig(configPath)
		if err != nil {
			return err
		}
	}

	level, err := config.Level()
	if err != nil {
		return err
	}

	zapConfig := zap.NewDevelopmentConfig()
	zapConfig.Level = zap.NewAtomicLevelAt(level)
	zapConfig.OutputPaths = []string{"stderr"}
	logger, err := zapConfig.Build()
	if err != nil {
		return err
	}
	defer logger.Sync()

	targetPlatform, err := targets.NewPlatform(config, logger)
	if err != nil {
		return err
	}
	registerConfig := targetPlatform.RegisterConfig()

	fmt.Printf(
		"Target: %s/%s (word size %d, compressed heap base %v)\n",
		targetPlatform.ArchitectureName(),
		targetPlatform.OperatingSystemName(),
		targetPlatform.WordSize(),
		config.CompressedHeapBase)

	fmt.Println("=====================")
	fmt.Println("Registers:")
	attributes := registerConfig.AttributesMap()
	for _, reg := range registerConfig.AllRegisters() {
		attr := attributes[reg.Number]
		fmt.Printf(
			"  %-4s #%-3d %-8s %-12s allocatable=%v\n",
			reg.Name,
			reg.Number,
			reg.Category,
			registerConfig.Classify(reg),
			attr.Allocatable)
	}

	fmt.Println("=====================")
	fmt.Println("Reserved:   ", registerConfig.ReservedRegisters())
	fmt.Println("Callee-save:", registerConfig.CalleeSaveRegisters())
	fmt.Println("Caller-save:", registerConfig.CallerSaveRegisters())
	fmt.Println("Allocatable:", registerConfig.AllocatableRegisters())
	fmt.Println("Frame:      ", registerConfig.FrameRegister())

	fmt.Println("=====================")
	categories := []architecture.RegisterCategory{
		architecture.GeneralCategory,
		architecture.SingleFloatCategory,
		architecture.DoubleFloatCategory,
	}
	callKinds := []platform.CallKind{
		platform.ManagedCall,
		platform.ManagedCallee,
		platform.NativeCall,
	}

	tree := treeprint.New()
	tree.SetValue("Parameter registers")
	for _, callKind := range callKinds {
		branch := tree.AddBranch(callKind.String())
		for _, category := range categories {
			branch.AddNode(fmt.Sprintf(
				"%-8s %s",
				category,
				registerConfig.ParameterRegisters(callKind, category)))
		}
	}
	fmt.Println(tree.String())

	return nil
}

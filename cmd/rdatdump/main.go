package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/gpulab/rdat/reflection"
)

func main() {
	var (
		blobFile    = flag.String("rdat", "", "Path to runtime data blob")
		funcName    = flag.String("func", "", "Show one function's bindings and dependencies")
		list        = flag.Bool("list", false, "List function names and exit")
		res         = flag.Bool("res", false, "Dump the resource table and exit")
		verbose     = flag.Bool("v", false, "Enable debug logging")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *blobFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: rdatdump -rdat <file> [-func name] [-list] [-res]")
		fmt.Fprintln(os.Stderr, "       rdatdump -rdat <file> -i  (interactive mode)")
		os.Exit(1)
	}

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		reflection.SetLogger(logger)
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(*blobFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*blobFile, *funcName, *list, *res); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(blobFile, funcName string, listOnly, resOnly bool) error {
	data, err := os.ReadFile(blobFile)
	if err != nil {
		return err
	}

	lib, err := reflection.Load(data)
	if err != nil {
		return fmt.Errorf("decode %s: %w", blobFile, err)
	}

	switch {
	case listOnly:
		for _, fn := range lib.Functions {
			fmt.Println(fn.UnmangledName)
		}
		return nil

	case resOnly:
		for _, r := range lib.Resources {
			printResource(&r)
		}
		return nil

	case funcName != "":
		fn := lib.Function(funcName)
		if fn == nil {
			return fmt.Errorf("no function named %q", funcName)
		}
		printFunction(fn)
		return nil
	}

	fmt.Printf("%s: %d functions, %d resources\n\n", blobFile, len(lib.Functions), len(lib.Resources))
	for i := range lib.Functions {
		printFunction(&lib.Functions[i])
		fmt.Println()
	}
	return nil
}

func printFunction(fn *reflection.Function) {
	fmt.Printf("%s (%s)\n", fn.UnmangledName, fn.ShaderKind)
	if fn.Name != fn.UnmangledName {
		fmt.Printf("  mangled:       %s\n", fn.Name)
	}
	if fn.FeatureFlag != 0 {
		fmt.Printf("  feature flags: %#x\n", fn.FeatureFlag)
	}
	if fn.PayloadSizeInBytes != 0 {
		fmt.Printf("  payload size:  %d bytes\n", fn.PayloadSizeInBytes)
	}
	if fn.AttributeSizeInBytes != 0 {
		fmt.Printf("  attr size:     %d bytes\n", fn.AttributeSizeInBytes)
	}
	for _, r := range fn.Resources {
		fmt.Print("  ")
		printResource(r)
	}
	for _, dep := range fn.Dependencies {
		fmt.Printf("  depends on %s\n", dep)
	}
}

func printResource(r *reflection.Resource) {
	fmt.Printf("%-8s %-24s id=%d space=%d regs=[%d, %d]\n",
		r.Class, r.Name, r.ID, r.Space, r.LowerBound, r.UpperBound)
}

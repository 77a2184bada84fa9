package output_test

import (
	"os"

	"github.com/willibrandon/vcproj/cmd/vcproj/output"
)

// Example demonstrating console usage
func ExampleConsole() {
	c := output.NewConsole(os.Stdout, os.Stderr, output.VerbosityNormal)
	c.SetColors(false) // Disable for consistent output in examples

	c.Header("Debug|Win32 (Executable)")
	c.Printf("  Output: %s\n", "C:/src/Debug/app.exe")
	c.Detail("  Defines: %d", 9)
	c.Info("1 target")

	// Output:
	// Debug|Win32 (Executable)
	//   Output: C:/src/Debug/app.exe
	// 1 target
}

// Example showing verbosity levels
func ExampleConsole_verbosity() {
	c := output.NewConsole(os.Stdout, os.Stderr, output.VerbosityQuiet)
	c.SetColors(false)
	c.Info("This won't appear")

	c.SetVerbosity(output.VerbosityDetailed)
	c.Info("This will appear")
	c.Detail("Detailed information")

	// Output:
	// This will appear
	// Detailed information
}

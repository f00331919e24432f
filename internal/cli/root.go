package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/codesnap/internal/logging"
	"github.com/vvka-141/codesnap/pkg/codesnap"
)

var rootCmd = &cobra.Command{
	Use:   "codesnap [root]",
	Short: "Snapshot a source tree into a single JSON document",
	Long: `codesnap walks a directory, reads every file whose extension is on the
allow-list, and writes one JSON object mapping each relative path (with
forward slashes) to the file's text.

Arguments:
  root    Directory to scan (default: ".", or root from codesnap.yaml)

Configuration precedence (highest first):
  1. Command-line flags and the root argument
  2. Environment: CODESNAP_ROOT, CODESNAP_OUTPUT, CODESNAP_EXTENSIONS
     (a .env file in the working directory is loaded first)
  3. codesnap.yaml (or codesnap.toml) in the working directory,
     or --config <file>
  4. Built-in defaults

Examples:
  # Snapshot the current directory with the default extensions
  codesnap

  # Snapshot ./web into web.json, TypeScript only
  codesnap ./web -o web.json -e .ts,.tsx

  # Fail instead of skipping unreadable directories
  codesnap ./src --on-walk-error abort

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  11 - Scan root missing, unreadable or not a directory
  12 - Directory traversal aborted
  13 - Snapshot could not be written`,
	Args:          OptionalRoot,
	RunE:          runSnapshot,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return execute(logging.NewConsoleLogger(false), os.Args[1:])
}

// execute runs the root command with args and reports a failure through logger.
func execute(logger codesnap.Logger, args []string) error {
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	if err != nil {
		logger.Error("%v", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}

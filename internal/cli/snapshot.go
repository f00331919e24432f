package cli

import (
	"github.com/spf13/cobra"
	"github.com/vvka-141/codesnap/internal/checksum"
	"github.com/vvka-141/codesnap/internal/files/scanner"
	"github.com/vvka-141/codesnap/internal/files/writer"
	"github.com/vvka-141/codesnap/internal/logging"
	"github.com/vvka-141/codesnap/internal/services"
)

type snapshotFlagValues struct {
	output      string
	extensions  []string
	decode      string
	onWalkError string
	configPath  string
}

var snapshotFlags snapshotFlagValues

func init() {
	rootCmd.Flags().StringVarP(&snapshotFlags.output, "output", "o", "",
		"Path of the JSON file to write (default: code_snapshot.json)\n"+
			"An existing file is overwritten")
	rootCmd.Flags().StringSliceVarP(&snapshotFlags.extensions, "ext", "e", nil,
		"File extensions to include (repeatable or comma separated)\n"+
			"Default: .js,.jsx,.ts,.tsx,.css,.json\n"+
			"Example: -e .go -e md or -e .go,.md")
	rootCmd.Flags().StringVar(&snapshotFlags.decode, "decode", "",
		"Handling of bytes that are not valid UTF-8: ignore|replace|strict\n"+
			"ignore drops them, replace substitutes U+FFFD,\n"+
			"strict records the file as an ERROR entry (default: ignore)")
	rootCmd.Flags().StringVar(&snapshotFlags.onWalkError, "on-walk-error", "",
		"Handling of unreadable directories below the root: skip|abort (default: skip)")
	rootCmd.Flags().StringVar(&snapshotFlags.configPath, "config", "",
		"Read settings from this YAML or TOML file instead of ./codesnap.yaml")
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)

	cfg, err := resolveConfig(args, snapshotFlags)
	if err != nil {
		return err
	}
	cfg.Verbose = verbose

	logger := logging.NewConsoleLogger(verbose)
	calculator := checksum.New()

	svc := services.NewSnapshotService(
		scanner.NewScanner(calculator, logger),
		writer.NewWriter(calculator),
		logger,
	)

	_, err = svc.Run(cfg)
	return err
}

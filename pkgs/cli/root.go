// Package cli wires the unfolding pipeline behind a cobra command: template
// arguments in, one concrete command per stdout line out. Submission to the
// scheduler is deliberately out of scope.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/qdispatch/qdispatch/pkgs/command"
	"github.com/qdispatch/qdispatch/pkgs/folding"
	"github.com/qdispatch/qdispatch/pkgs/logging"
	"github.com/qdispatch/qdispatch/pkgs/naming"
	"github.com/qdispatch/qdispatch/pkgs/queues"
)

type options struct {
	commandsFile string
	maxArgLength int
	maxLength    int
	batchName    string
	cluster      string
	queue        string
	configDir    string
	verbose      bool
	noColor      bool
}

// New builds the qdispatch root command.
func New(version string) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:     "qdispatch [flags] -- COMMAND [ARGS...]",
		Short:   "Unfold folded command templates into batch-queue job commands",
		Long: `qdispatch expands a command template containing folded arguments into the
full set of concrete commands of a parameter sweep.

Folded syntaxes:
  enumeration   [item1 item2 ... itemN]
  range         [start:end] or [start:end:step]   (end inclusive)

A literal {UID} anywhere in a command is replaced by a digest of that
command's text. Escape brackets as \[ to keep them literal.`,
		Version:       version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}

	addNamingFlags(cmd.Flags(), opts)
	cmd.Flags().StringVarP(&opts.commandsFile, "commands-file", "f", "", "read pre-expanded commands from a file, one per line")
	cmd.Flags().StringVar(&opts.cluster, "cluster", "", "target cluster (default: detected from hostname)")
	cmd.Flags().StringVar(&opts.queue, "queue", "", "queue to target on the cluster")
	cmd.Flags().StringVar(&opts.configDir, "config-dir", "", "directory holding per-cluster queue configs")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "disable colored log output")

	return cmd
}

func addNamingFlags(fs *pflag.FlagSet, opts *options) {
	fs.IntVar(&opts.maxArgLength, "max-arg-length", 0, "trim each name token to this many characters (negative keeps the head, 0 keeps all)")
	fs.IntVar(&opts.maxLength, "max-length", 0, "trim the batch name to this many characters (same sign convention)")
	fs.StringVar(&opts.batchName, "batch-name", "", "batch name prefix (default: current timestamp)")
}

func run(cmd *cobra.Command, args []string, opts *options) error {
	log := logging.New(logging.Config{
		Output:  cmd.ErrOrStderr(),
		Verbose: opts.verbose,
		NoColor: opts.noColor,
	})

	nameOpts := naming.Options{
		MaxArgLength: opts.maxArgLength,
		MaxLength:    opts.maxLength,
		Prefix:       opts.batchName,
	}

	var commands []string
	var name string

	if opts.commandsFile != "" {
		f, err := os.Open(opts.commandsFile)
		if err != nil {
			return fmt.Errorf("cannot open commands file: %w", err)
		}
		defer f.Close()

		commands, err = command.FromReader(f)
		if err != nil {
			return err
		}
		if len(commands) == 0 {
			log.Warn().Str("file", opts.commandsFile).Msg("commands file is empty")
		}
		name = opts.batchName
		if name == "" && len(commands) > 0 {
			name, err = naming.FromCommand(commands[0], nameOpts)
			if err != nil {
				return err
			}
		}
	} else {
		segments, err := folding.Unfold(args)
		if err != nil {
			return err
		}
		log.Debug().Int("segments", len(segments)).Msg("unfolded template")

		commands = command.FromSegments(segments)
		name, err = naming.FromSegments(segments, nameOpts)
		if err != nil {
			return err
		}
	}

	commands = command.ReplaceUIDTag(commands)

	cluster := opts.cluster
	if cluster == "" {
		if hostname, err := os.Hostname(); err == nil {
			cluster = queues.DetectCluster(hostname)
		}
	}
	available, err := queues.NewRegistry(opts.configDir).AvailableQueues(cluster)
	if err != nil {
		return err
	}
	if opts.queue != "" {
		if attrs, ok := available[opts.queue]; ok {
			log.Info().
				Str("cluster", cluster).
				Str("queue", opts.queue).
				Str("max_walltime", attrs.MaxWalltime).
				Int("cores", attrs.CoresPerNode).
				Msg("resolved queue")
		} else {
			log.Warn().Str("cluster", cluster).Str("queue", opts.queue).Msg("queue not found in cluster config")
		}
	}

	log.Info().Str("batch", name).Int("commands", len(commands)).Msg("generated batch")
	for _, c := range commands {
		fmt.Fprintln(cmd.OutOrStdout(), c)
	}
	return nil
}

package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/LIONant-depot/xbits/internal/avalanche"
	"github.com/LIONant-depot/xbits/internal/config"
	"github.com/LIONant-depot/xbits/internal/log"
	"github.com/LIONant-depot/xbits/pkg/build"
	"github.com/LIONant-depot/xbits/pkg/xbits"
)

// cliState carries flag values and the loaded configuration across
// subcommands.
type cliState struct {
	cfg     *config.Config
	cfgPath string
	radix   string
	verbose bool
}

// Execute runs the xbits inspector CLI.
func Execute() error {
	st := &cliState{}
	info := build.GetInfo()

	rootCmd := &cobra.Command{
		Use:           info.Name,
		Short:         "Inspect integers with the xbits primitives",
		Version:       info.Summary(),
		SilenceErrors: true,
		SilenceUsage:  true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd:   true,
			DisableDescriptions: true,
			DisableNoDescFlag:   true,
			HiddenDefaultCmd:    true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(st.cfgPath)
			if err != nil {
				return err
			}
			st.cfg = cfg

			// Flags beat config, config beats defaults.
			if !cmd.Flags().Changed("radix") {
				st.radix = cfg.Radix
			}
			level := cfg.LogLevel
			if st.verbose || cfg.Debug {
				level = "debug"
			}
			if l, ok := log.ParseLevel(level); ok {
				log.SetLevel(l)
			}
			return nil
		},
	}
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})

	rootCmd.PersistentFlags().StringVar(&st.cfgPath, "config", "",
		"Path to a YAML config file. Defaults to xbits.yaml in the working directory.")
	rootCmd.PersistentFlags().StringVar(&st.radix, "radix", config.DefaultRadix,
		"Output radix: bin, dec or hex")
	rootCmd.PersistentFlags().BoolVarP(&st.verbose, "verbose", "v", false,
		"Show verbose output")

	rootCmd.AddCommand(
		alignCommand(st),
		pow2Command(st),
		hashCommand(st),
		bitsCommand(st),
		avalancheCommand(st),
	)

	return rootCmd.Execute()
}

func alignCommand(st *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "align <value> <boundary>",
		Short: "Round a value up and down to a power-of-two boundary",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseValue(args[0])
			if err != nil {
				return err
			}
			a, err := parseValue(args[1])
			if err != nil {
				return err
			}
			if !xbits.IsPowerOfTwo(a) {
				// The library does not validate this; the CLI does.
				return fmt.Errorf("boundary %d is not a power of two", a)
			}

			log.Debugf("align: value=%#x boundary=%d", v, a)
			fmt.Fprintf(cmd.OutOrStdout(), "up:      %s\n", st.format(xbits.AlignUp(v, a)))
			fmt.Fprintf(cmd.OutOrStdout(), "down:    %s\n", st.format(xbits.AlignDown(v, a)))
			fmt.Fprintf(cmd.OutOrStdout(), "aligned: %t\n", xbits.IsAligned(v, a))
			return nil
		},
	}
}

func pow2Command(st *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "pow2 <value...>",
		Short: "Power-of-two facts: test, round up, log2 floor and bit length",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				v, err := parseValue(arg)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(),
					"%s: pow2=%t round_up=%s log2_floor=%d bits_needed=%d\n",
					st.format(v),
					xbits.IsPowerOfTwo(v),
					st.format(xbits.RoundUpToPowerOfTwo(v)),
					xbits.Log2Floor(v),
					xbits.Log2RoundUp(v),
				)
			}
			return nil
		},
	}
}

func hashCommand(st *cliState) *cobra.Command {
	var width int
	hashCmd := &cobra.Command{
		Use:   "hash <value...>",
		Short: "Apply the MurmurHash3 avalanche finalizer",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				v, err := parseValue(arg)
				if err != nil {
					return err
				}
				switch width {
				case 32:
					fmt.Fprintf(cmd.OutOrStdout(), "%s\n", st.format(uint64(xbits.Mix32(uint32(v)))))
				case 64:
					fmt.Fprintf(cmd.OutOrStdout(), "%s\n", st.format(xbits.Mix64(v)))
				default:
					return fmt.Errorf("width must be 32 or 64, got %d", width)
				}
			}
			return nil
		},
	}
	hashCmd.Flags().IntVarP(&width, "width", "w", 64, "Word width in bits (32 or 64)")
	return hashCmd
}

func bitsCommand(st *cliState) *cobra.Command {
	var width int
	bitsCmd := &cobra.Command{
		Use:   "bits <value...>",
		Short: "Count bits: population count, leading and trailing zeros",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				v, err := parseValue(arg)
				if err != nil {
					return err
				}
				switch width {
				case 32:
					x := uint32(v)
					fmt.Fprintf(cmd.OutOrStdout(), "%s: ones=%d clz=%d ctz=%d [%032b]\n",
						st.format(uint64(x)),
						xbits.OnesCount32(x), xbits.LeadingZeros32(x), xbits.TrailingZeros32(x), x)
				case 64:
					fmt.Fprintf(cmd.OutOrStdout(), "%s: ones=%d clz=%d ctz=%d [%064b]\n",
						st.format(v),
						xbits.OnesCount64(v), xbits.LeadingZeros64(v), xbits.TrailingZeros64(v), v)
				default:
					return fmt.Errorf("width must be 32 or 64, got %d", width)
				}
			}
			return nil
		},
	}
	bitsCmd.Flags().IntVarP(&width, "width", "w", 64, "Word width in bits (32 or 64)")
	return bitsCmd
}

func avalancheCommand(st *cliState) *cobra.Command {
	var (
		width   int
		samples int
		seed    uint64
	)
	avalancheCmd := &cobra.Command{
		Use:   "avalanche",
		Short: "Measure the finalizer's avalanche quality",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if samples == 0 {
				samples = st.cfg.Avalanche.Samples
			}
			if !cmd.Flags().Changed("seed") {
				seed = st.cfg.Avalanche.Seed
			}

			log.Infof("measuring %d-bit finalizer over %d samples", width, samples)

			var r avalanche.Report
			switch width {
			case 32:
				r = avalanche.Stats32(samples, seed)
			case 64:
				r = avalanche.Stats64(samples, seed)
			default:
				return fmt.Errorf("width must be 32 or 64, got %d", width)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "width:      %d\n", r.Width)
			fmt.Fprintf(cmd.OutOrStdout(), "samples:    %d\n", r.Samples)
			fmt.Fprintf(cmd.OutOrStdout(), "mean flip:  %.5f\n", r.MeanFlip)
			fmt.Fprintf(cmd.OutOrStdout(), "stddev:     %.5f\n", r.StdDev)
			fmt.Fprintf(cmd.OutOrStdout(), "worst bias: %.5f\n", r.WorstBias)
			return nil
		},
	}
	avalancheCmd.Flags().IntVarP(&width, "width", "w", 64, "Word width in bits (32 or 64)")
	avalancheCmd.Flags().IntVarP(&samples, "samples", "n", 0, "Random inputs to measure (0 = config default)")
	avalancheCmd.Flags().Uint64Var(&seed, "seed", 1, "RNG seed for reproducible runs")
	return avalancheCmd
}

// parseValue parses a 0x/0b/0o/decimal integer literal. Negative
// literals are accepted and kept as their two's-complement bit pattern,
// matching how the library treats signed inputs.
func parseValue(s string) (uint64, error) {
	if v, err := strconv.ParseUint(s, 0, 64); err == nil {
		return v, nil
	}
	if v, err := strconv.ParseInt(s, 0, 64); err == nil {
		return uint64(v), nil
	}
	return 0, fmt.Errorf("invalid integer literal %q", s)
}

// format renders v in the configured radix.
func (st *cliState) format(v uint64) string {
	switch st.radix {
	case "bin":
		return "0b" + strconv.FormatUint(v, 2)
	case "dec":
		return strconv.FormatUint(v, 10)
	default:
		return "0x" + strconv.FormatUint(v, 16)
	}
}

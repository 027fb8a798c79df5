package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	action_getcalendarfreeslots "github.com/ethanbaker/highlevel/internal/actions/get-calendar-free-slots"
	"github.com/ethanbaker/highlevel/internal/export"
	"github.com/ethanbaker/highlevel/pkg/action"
	"github.com/ethanbaker/highlevel/pkg/highlevel"
	"github.com/ethanbaker/highlevel/pkg/utils"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// globalFlags are shared by every subcommand
type globalFlags struct {
	envFile string
	server  string
	apiKey  string
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	cmd := &cobra.Command{
		Use:           "commandline",
		Short:         "Inspect and run HighLevel actions",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&flags.envFile, "env", utils.EnvFile(), "env file holding the HighLevel credentials")
	cmd.PersistentFlags().StringVar(&flags.server, "server", "", "runner URL; actions run in-process when empty")
	cmd.PersistentFlags().StringVar(&flags.apiKey, "api-key", "", "runner API key (defaults to API_KEY)")

	cmd.AddCommand(newActionsCmd(flags))
	cmd.AddCommand(newPropsCmd(flags))
	cmd.AddCommand(newRunCmd(flags))

	return cmd
}

func newActionsCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "actions",
		Short: "List every available action",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := flags.backend(cmd)
			if err != nil {
				return err
			}

			defs, err := b.List(cmd.Context())
			if err != nil {
				return err
			}

			for _, def := range defs {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", def.Key, def.Version, def.Name)
			}
			return nil
		},
	}
}

func newPropsCmd(flags *globalFlags) *cobra.Command {
	var valuesFile string

	cmd := &cobra.Command{
		Use:   "props <key>",
		Short: "Print an action's props for a set of values, with options loaded",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := loadValues(valuesFile)
			if err != nil {
				return err
			}

			b, err := flags.backend(cmd)
			if err != nil {
				return err
			}

			props, err := b.Props(cmd.Context(), args[0], values)
			if err != nil {
				return err
			}

			return writeYAML(cmd.OutOrStdout(), props)
		},
	}

	cmd.Flags().StringVarP(&valuesFile, "values", "f", "", "YAML file of prop values")
	return cmd
}

func newRunCmd(flags *globalFlags) *cobra.Command {
	var (
		valuesFile string
		icsFile    string
		slotLength time.Duration
	)

	cmd := &cobra.Command{
		Use:   "run <key>",
		Short: "Run an action and print its result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			if icsFile != "" && key != action_getcalendarfreeslots.KEY {
				return fmt.Errorf("--ics is only supported by %s", action_getcalendarfreeslots.KEY)
			}

			values, err := loadValues(valuesFile)
			if err != nil {
				return err
			}

			b, err := flags.backend(cmd)
			if err != nil {
				return err
			}

			result, err := b.Run(cmd.Context(), key, values)
			if err != nil {
				return err
			}
			log.Printf("[COMMANDLINE]: %s", result.Summary)

			if icsFile != "" {
				if err := writeICS(icsFile, result.Response, values.String("calendarId"), slotLength); err != nil {
					return err
				}
				log.Printf("[COMMANDLINE]: wrote free slots to %s", icsFile)
			}

			return writeYAML(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().StringVarP(&valuesFile, "values", "f", "", "YAML file of prop values")
	cmd.Flags().StringVar(&icsFile, "ics", "", "write the free slots to this iCalendar file")
	cmd.Flags().DurationVar(&slotLength, "slot-length", export.DEFAULT_SLOT_LENGTH, "length of each exported slot")
	return cmd
}

func (f *globalFlags) backend(cmd *cobra.Command) (backend, error) {
	cfg := utils.NewConfigFromEnv(f.envFile)
	return newBackend(cmd.Context(), cfg, f.server, f.apiKey)
}

func loadValues(path string) (action.Values, error) {
	if path == "" {
		return action.Values{}, nil
	}

	values, err := utils.LoadValues(path)
	if err != nil {
		return nil, err
	}
	return action.Values(values), nil
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// writeICS exports a free-slots response. The response is normalized through
// JSON since a runner returns it as a generic map
func writeICS(path string, response any, calendarID string, slotLength time.Duration) error {
	b, err := json.Marshal(response)
	if err != nil {
		return fmt.Errorf("encode free slots: %w", err)
	}

	var slots highlevel.FreeSlotsResponse
	if err := json.Unmarshal(b, &slots); err != nil {
		return fmt.Errorf("decode free slots: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return export.WriteFreeSlots(file, slots, calendarID, slotLength)
}

package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/nexidian/gocliselect"
	"github.com/spf13/cobra"

	"punchclock/internal/period"
)

func SetupCommands(a *App) *cobra.Command {
	// root command
	rootCmd := &cobra.Command{
		Use:           "punchclock",
		Short:         "A lightweight punch-in/punch-out time tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	var inAt string
	inCmd := &cobra.Command{
		Use:   "in",
		Short: "Punch in (start tracking time)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			at, err := a.parseAt(inAt)
			if err != nil {
				return err
			}
			return a.PunchIn(cmd.Context(), at)
		},
	}
	inCmd.Flags().StringVar(&inAt, "at", "", "punch in at this time instead of now")

	var outAt string
	outCmd := &cobra.Command{
		Use:   "out",
		Short: "Punch out (stop tracking time)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			at, err := a.parseAt(outAt)
			if err != nil {
				return err
			}
			return a.PunchOut(cmd.Context(), at)
		},
	}
	outCmd.Flags().StringVar(&outAt, "at", "", "punch out at this time instead of now")

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show whether time is currently being tracked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.Status(cmd.Context())
		},
	}

	var (
		countFrom, countTo string
		inDecimal          bool
		interactive        bool
	)
	countCmd := &cobra.Command{
		Use:       "count [period]",
		Short:     "Count tracked time for a period",
		Long:      "Count tracked time for a period (" + strings.Join(periodNames(), ", ") + "), or between --from and --to.",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: periodNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			var name string
			if len(args) > 0 {
				name = args[0]
			} else if interactive {
				picked, err := pickPeriod()
				if err != nil {
					return err
				}
				name = picked
				if name == "" {
					return fmt.Errorf("no period selected")
				}
			}

			label, begin, end, err := a.resolveRange(name, countFrom, countTo)
			if err != nil {
				return err
			}
			return a.Count(cmd.Context(), label, begin, end, inDecimal)
		},
	}
	countCmd.Flags().StringVar(&countFrom, "from", "", "count from this time")
	countCmd.Flags().StringVar(&countTo, "to", "", "count up to this time")
	countCmd.Flags().BoolVarP(&inDecimal, "decimal", "d", false, "print hours as a decimal number")
	countCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "choose the period from a menu")

	var showFrom, showTo string
	showCmd := &cobra.Command{
		Use:       "show [period]",
		Short:     "List tracked periods",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: periodNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			var name string
			if len(args) > 0 {
				name = args[0]
			}

			label, begin, end, err := a.resolveRange(name, showFrom, showTo)
			if err != nil {
				return err
			}
			return a.Show(cmd.Context(), label, begin, end)
		},
	}
	showCmd.Flags().StringVar(&showFrom, "from", "", "show from this time")
	showCmd.Flags().StringVar(&showTo, "to", "", "show up to this time")

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the location of the sheet",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			a.Path()
		},
	}

	// add commands
	rootCmd.AddCommand(inCmd)
	rootCmd.AddCommand(outCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(countCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(pathCmd)

	return rootCmd
}

func (a *App) parseAt(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := ParseInstant(value, a.clock.Now())
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func periodNames() []string {
	names := make([]string, len(period.Periods))
	for i, p := range period.Periods {
		names[i] = string(p)
	}
	return names
}

// pickPeriod returns "" when the menu is dismissed
func pickPeriod() (string, error) {
	menu := gocliselect.NewMenu("Choose a period")
	for _, name := range periodNames() {
		menu.AddItem(strings.ReplaceAll(name, "-", " "), name)
	}

	choice, err := menu.Display()
	if err != nil {
		return "", fmt.Errorf("failed to display period menu: %w", err)
	}
	name, _ := choice.(string)
	return name, nil
}

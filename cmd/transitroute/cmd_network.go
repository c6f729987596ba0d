package main

import (
	"github.com/spf13/cobra"
)

func newStopCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stop <id>",
		Short: "Show a stop and its neighbors",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseStopArg("id", args[0])
			if err != nil {
				return err
			}
			s, err := backend.Stop(cmd.Context(), id)
			if err != nil {
				return err
			}
			printStop(s)
			return nil
		},
	}
}

func newRoutesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "List routes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			routes, err := backend.Routes(cmd.Context())
			if err != nil {
				return err
			}
			printRoutes(routes)
			return nil
		},
	}
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show network size",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := backend.Stats(cmd.Context())
			if err != nil {
				return err
			}
			printStats(s)
			return nil
		},
	}
}

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/persistorai/transitroute/internal/models"
)

func newRouteCmd() *cobra.Command {
	var c models.Constraints
	cmd := &cobra.Command{
		Use:   "route <from> <to>",
		Short: "Find the fewest-hop and shortest-distance paths between two stops",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := parseStopArg("from", args[0])
			if err != nil {
				return err
			}
			to, err := parseStopArg("to", args[1])
			if err != nil {
				return err
			}
			res, err := backend.Plan(cmd.Context(), models.RouteQuery{From: from, To: to, Constraints: c})
			if err != nil {
				return err
			}
			return printRouteResult(res)
		},
	}
	cmd.Flags().StringSliceVar(&c.ForbiddenRoutes, "forbid-route", nil, "Route ids that may not be used")
	cmd.Flags().Int64SliceVar(&c.ForbiddenStops, "forbid-stop", nil, "Stop ids that may not be visited")
	cmd.Flags().StringSliceVar(&c.AllowedRoutes, "allow-route", nil, "Only these route ids may be used")
	cmd.Flags().Int64SliceVar(&c.AllowedStops, "allow-stop", nil, "Only these stop ids may be visited")
	cmd.MarkFlagsMutuallyExclusive("forbid-route", "allow-route")
	cmd.MarkFlagsMutuallyExclusive("forbid-stop", "allow-stop")
	return cmd
}

// exampleQuery is one of the fixed demonstration queries.
type exampleQuery struct {
	title string
	query models.RouteQuery
}

// exampleQueries run from stop 1680 to stop 686 on the Montreal metro dataset:
// unconstrained, avoiding route 20, and avoiding stop 1289.
func exampleQueries() []exampleQuery {
	return []exampleQuery{
		{title: "1680 -> 686", query: models.RouteQuery{From: 1680, To: 686}},
		{title: "1680 -> 686 without route 20", query: models.RouteQuery{
			From: 1680, To: 686, Constraints: models.Constraints{ForbiddenRoutes: []string{"20"}},
		}},
		{title: "1680 -> 686 without stop 1289", query: models.RouteQuery{
			From: 1680, To: 686, Constraints: models.Constraints{ForbiddenStops: []int64{1289}},
		}},
	}
}

func newExamplesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "examples",
		Short: "Run the demonstration queries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for i, ex := range exampleQueries() {
				if i > 0 {
					fmt.Println()
				}
				if flagFmt != "json" {
					fmt.Printf("### %s\n\n", ex.title)
				}
				res, err := backend.Plan(cmd.Context(), ex.query)
				if err != nil {
					return fmt.Errorf("%s: %w", ex.title, err)
				}
				if err := printRouteResult(res); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func parseStopArg(name, s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer stop id, got %q", name, s)
	}
	return id, nil
}

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/persistorai/transitroute/internal/models"
	"github.com/persistorai/transitroute/internal/report"
)

func formatJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "Error: encode json: %v\n", err)
		os.Exit(1)
	}
}

func formatTable(headers []string, rows [][]string) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	printRow := func(cells []string) {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			w := 0
			if i < len(widths) {
				w = widths[i]
			}
			parts[i] = fmt.Sprintf("%-*s", w, cell)
		}
		fmt.Println(strings.TrimRight(strings.Join(parts, "  "), " "))
	}

	printRow(headers)
	seps := make([]string, len(headers))
	for i, w := range widths {
		seps[i] = strings.Repeat("-", w)
	}
	printRow(seps)
	for _, row := range rows {
		printRow(row)
	}
}

// printRouteResult prints both algorithm results in the selected format.
func printRouteResult(res *models.RouteResult) error {
	switch flagFmt {
	case "json":
		formatJSON(res)
	case "table":
		headers := []string{"ALGORITHM", "FOUND", "HOPS", "DISTANCE_KM", "ELAPSED_MS", "STOPS"}
		var rows [][]string
		for _, r := range []models.AlgorithmResult{res.BFS, res.Dijkstra} {
			rows = append(rows, []string{
				r.Algorithm,
				strconv.FormatBool(r.Found),
				strconv.Itoa(r.Hops),
				fmt.Sprintf("%.2f", r.DistanceKM),
				fmt.Sprintf("%.3f", r.ElapsedMS),
				joinIDs(r.Stops),
			})
		}
		formatTable(headers, rows)
	default:
		for i, r := range []models.AlgorithmResult{res.BFS, res.Dijkstra} {
			if i > 0 {
				fmt.Println()
			}
			if err := report.WriteSummary(os.Stdout, r); err != nil {
				return err
			}
		}
	}
	return nil
}

func printStop(s *models.StopDetail) {
	if flagFmt == "json" {
		formatJSON(s)
		return
	}
	fmt.Printf("%s (%d) [%.6f, %.6f]\n\n", s.Name, s.ID, s.Lat, s.Lon)
	headers := []string{"NEIGHBOR", "NAME", "ROUTE", "DISTANCE_KM"}
	var rows [][]string
	for _, n := range s.Neighbors {
		rows = append(rows, []string{strconv.FormatInt(n.StopID, 10), n.Name, n.RouteID, fmt.Sprintf("%.3f", n.DistanceKM)})
	}
	formatTable(headers, rows)
}

func printRoutes(routes []models.RouteInfo) {
	if flagFmt == "json" {
		formatJSON(routes)
		return
	}
	headers := []string{"ID", "NAME"}
	rows := make([][]string, 0, len(routes))
	for _, r := range routes {
		rows = append(rows, []string{r.ID, r.Name})
	}
	formatTable(headers, rows)
}

func printStats(s models.NetworkStats) {
	if flagFmt == "json" {
		formatJSON(s)
		return
	}
	formatTable([]string{"STOPS", "EDGES", "ROUTES", "SEGMENTS"}, [][]string{{
		strconv.Itoa(s.Stops), strconv.Itoa(s.Edges), strconv.Itoa(s.Routes), strconv.Itoa(s.Segments),
	}})
}

func joinIDs(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ",")
}

package main

import (
	"fmt"
	"strconv"

	"workorders/internal/core/application/usecases/commands"
	"workorders/internal/core/application/usecases/queries"

	"github.com/spf13/cobra"
)

type stateRow struct {
	Label     string `json:"label" yaml:"label"`
	Canonical string `json:"canonical" yaml:"canonical"`
	Legacy    bool   `json:"legacy" yaml:"legacy"`
	Count     int64  `json:"count" yaml:"count"`
}

func toStateRows(list []queries.GetStateDistributionQueryResponse) []stateRow {
	rows := make([]stateRow, len(list))
	for i, r := range list {
		rows[i] = stateRow{Label: r.Label, Canonical: string(r.Canonical), Legacy: r.Legacy, Count: r.Count}
	}
	return rows
}

func statesTable(rows []stateRow) ([]string, [][]string, []columnAlignment) {
	headers := []string{"Label", "Canonical", "Legacy", "Count"}
	aligns := []columnAlignment{alignLeft, alignLeft, alignLeft, alignRight}
	cells := make([][]string, len(rows))
	for i, r := range rows {
		canonical := r.Canonical
		if canonical == "" {
			canonical = "unknown"
		}
		legacy := ""
		if r.Legacy {
			legacy = "yes"
		}
		cells[i] = []string{r.Label, canonical, legacy, strconv.FormatInt(r.Count, 10)}
	}
	return headers, cells, aligns
}

func newStatesCommand(ctx *commandContext) *cobra.Command {
	var output string

	statesCmd := &cobra.Command{
		Use:   "states",
		Short: "Count work orders per stored state label",
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseOutputFormat(output)
			if err != nil {
				return err
			}
			root, err := ctx.compositionRoot()
			if err != nil {
				return err
			}

			caller, err := operator()
			if err != nil {
				return err
			}
			query, err := queries.NewGetStateDistributionQuery(caller)
			if err != nil {
				return err
			}

			distribution, err := root.CreateGetStateDistributionQueryHandler().Handle(cmd.Context(), query)
			if err != nil {
				return err
			}

			rows := toStateRows(distribution)
			headers, cells, aligns := statesTable(rows)
			return writeOutput(cmd.OutOrStdout(), format, rows, headers, cells, aligns)
		},
	}

	statesCmd.Flags().StringVarP(&output, "output", "o", string(outputTable), "Output format: table, json or yaml")

	return statesCmd
}

func relabelTable(result commands.NormalizeLegacyStatesResult) ([]string, [][]string, []columnAlignment) {
	headers := []string{"Legacy", "Canonical", "Rows"}
	aligns := []columnAlignment{alignLeft, alignLeft, alignRight}
	cells := make([][]string, len(result.Relabels))
	for i, r := range result.Relabels {
		cells[i] = []string{r.Legacy, string(r.Canonical), strconv.FormatInt(r.Rows, 10)}
	}
	return headers, cells, aligns
}

func newNormalizeStatesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "normalize-states",
		Short: "Rewrite legacy state labels to their canonical form",
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := ctx.compositionRoot()
			if err != nil {
				return err
			}

			result, err := root.CreateNormalizeLegacyStatesCommandHandler().
				Handle(cmd.Context(), commands.NewNormalizeLegacyStatesCommand())
			if err != nil {
				return err
			}

			headers, cells, aligns := relabelTable(result)
			out := cmd.OutOrStdout()
			if err := writeOutput(out, outputTable, nil, headers, cells, aligns); err != nil {
				return err
			}
			fmt.Fprintf(out, "%d rows relabelled\n", result.Total())
			return nil
		},
	}
}

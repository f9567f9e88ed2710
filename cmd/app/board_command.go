package main

import (
	"strconv"
	"time"

	"workorders/internal/core/application/usecases/queries"
	"workorders/internal/core/domain/model/workorder"

	"github.com/spf13/cobra"
)

// boardRow is the CLI view of a work order.
type boardRow struct {
	ID           int64     `json:"id" yaml:"id"`
	Number       string    `json:"number" yaml:"number"`
	State        string    `json:"state" yaml:"state"`
	Order        int       `json:"order" yaml:"order"`
	Technician   string    `json:"technician" yaml:"technician"`
	Device       string    `json:"device" yaml:"device"`
	Municipality string    `json:"municipality" yaml:"municipality"`
	UpdatedAt    time.Time `json:"updatedAt" yaml:"updatedAt"`
}

func toBoardRows(list []*workorder.WorkOrder) []boardRow {
	rows := make([]boardRow, len(list))
	for i, wo := range list {
		rows[i] = boardRow{
			ID:           wo.ID(),
			Number:       wo.Number().String(),
			State:        wo.State().String(),
			Order:        wo.Order(),
			Technician:   wo.Technician(),
			Device:       wo.Details().Device,
			Municipality: wo.Details().Municipality,
			UpdatedAt:    wo.UpdatedAt(),
		}
	}
	return rows
}

func boardTable(rows []boardRow) ([]string, [][]string, []columnAlignment) {
	headers := []string{"ID", "Number", "State", "Order", "Technician", "Device", "Municipality"}
	aligns := []columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignLeft, alignLeft, alignLeft}
	cells := make([][]string, len(rows))
	for i, r := range rows {
		cells[i] = []string{
			strconv.FormatInt(r.ID, 10),
			r.Number,
			r.State,
			strconv.Itoa(r.Order),
			r.Technician,
			r.Device,
			r.Municipality,
		}
	}
	return headers, cells, aligns
}

func newBoardCommand(ctx *commandContext) *cobra.Command {
	var (
		technician string
		output     string
	)

	boardCmd := &cobra.Command{
		Use:   "board",
		Short: "Print the work-order board in display order",
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

			query, err := queries.NewListWorkOrdersQuery(caller, technician)
			if err != nil {
				return err
			}
			board, err := root.CreateListWorkOrdersQueryHandler().Handle(cmd.Context(), query)
			if err != nil {
				return err
			}

			rows := toBoardRows(board)
			headers, cells, aligns := boardTable(rows)
			return writeOutput(cmd.OutOrStdout(), format, rows, headers, cells, aligns)
		},
	}

	boardCmd.Flags().StringVar(&technician, "technician", "", "Only show work orders assigned to this technician")
	boardCmd.Flags().StringVarP(&output, "output", "o", string(outputTable), "Output format: table, json or yaml")

	return boardCmd
}

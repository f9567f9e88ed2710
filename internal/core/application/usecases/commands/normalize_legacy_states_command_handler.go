package commands

import (
	"context"

	"workorders/internal/core/domain/model/state"
)

// Relabel reports how many rows one legacy label was rewritten on.
type Relabel struct {
	Legacy    string
	Canonical state.State
	Rows      int64
}

// NormalizeLegacyStatesResult lists one entry per known legacy label.
type NormalizeLegacyStatesResult struct {
	Relabels []Relabel
}

// Total returns the number of rewritten rows.
func (r NormalizeLegacyStatesResult) Total() int64 {
	var total int64
	for _, rl := range r.Relabels {
		total += rl.Rows
	}
	return total
}

// NormalizeLegacyStatesCommandHandler relabels every legacy row inside one
// transaction. Order values are kept: legacy rows already sort inside their
// canonical column, so the board does not change.
type NormalizeLegacyStatesCommandHandler struct {
	uowFactory WorkOrderUoWFactory
}

func NewNormalizeLegacyStatesCommandHandler(uowFactory WorkOrderUoWFactory) NormalizeLegacyStatesCommandHandler {
	return NormalizeLegacyStatesCommandHandler{uowFactory: uowFactory}
}

func (h NormalizeLegacyStatesCommandHandler) Handle(
	ctx context.Context,
	command NormalizeLegacyStatesCommand,
) (NormalizeLegacyStatesResult, error) {
	if err := command.Validate(); err != nil {
		return NormalizeLegacyStatesResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return NormalizeLegacyStatesResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.WorkOrderRepository()

	var result NormalizeLegacyStatesResult
	for _, alias := range state.Aliases() {
		rows, err := repo.ReplaceLegacyState(ctx, alias.Legacy, alias.Canonical)
		if err != nil {
			return NormalizeLegacyStatesResult{}, err
		}
		result.Relabels = append(result.Relabels, Relabel{
			Legacy:    alias.Legacy,
			Canonical: alias.Canonical,
			Rows:      rows,
		})
	}

	if err := uow.Commit(ctx); err != nil {
		return NormalizeLegacyStatesResult{}, err
	}

	return result, nil
}

package commands

import (
	"context"
	"fmt"
	"strings"

	"workorders/internal/core/domain/model/state"
	"workorders/internal/core/domain/model/workorder"
	"workorders/internal/core/domain/services"
	"workorders/internal/core/ports"
	"workorders/internal/pkg/errs"
)

var summaryStateTitles = map[state.State]string{
	state.VisitsCompleted: "Visit completed",
	state.Absent:          "Customer absent",
}

// SendCustomerSummaryCommandHandler composes a plain-text summary of a
// finished visit and hands it to the notifier. The message is sent after
// the read transaction has ended.
type SendCustomerSummaryCommandHandler struct {
	uowFactory WorkOrderUoWFactory
	notifier   ports.Notifier
	policy     services.AccessPolicy
}

func NewSendCustomerSummaryCommandHandler(
	uowFactory WorkOrderUoWFactory,
	notifier ports.Notifier,
) SendCustomerSummaryCommandHandler {
	return SendCustomerSummaryCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle fails with errs.ValueIsInvalidError when the work order is not in
// a finished state and with errs.ValueIsRequiredError when it has no
// customer email.
func (h SendCustomerSummaryCommandHandler) Handle(ctx context.Context, command SendCustomerSummaryCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	wo, err := h.load(ctx, command)
	if err != nil {
		return err
	}

	if !wo.State().AllowsCustomerSummary() {
		return errs.NewValueIsInvalidErrorWithCause("state",
			fmt.Errorf("a summary can only be sent in %s or %s, work order is %s",
				state.VisitsCompleted, state.Absent, wo.State()))
	}
	if wo.Details().CustomerEmail == "" {
		return errs.NewValueIsRequiredError("customer email")
	}

	return h.notifier.Send(ctx, composeCustomerSummary(wo))
}

func (h SendCustomerSummaryCommandHandler) load(
	ctx context.Context,
	command SendCustomerSummaryCommand,
) (*workorder.WorkOrder, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	wo, err := uow.WorkOrderRepository().Get(ctx, command.ID())
	if err != nil {
		return nil, err
	}
	if err = h.policy.CanRead(command.Caller(), wo); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return wo, nil
}

func composeCustomerSummary(wo *workorder.WorkOrder) ports.Message {
	title := summaryStateTitles[wo.State()]
	details := wo.Details()

	var body strings.Builder
	fmt.Fprintf(&body, "Work order #%s\n\n", wo.Number())
	fmt.Fprintf(&body, "State: %s\n", title)
	fmt.Fprintf(&body, "Device: %s\n", orNA(details.Device))
	fmt.Fprintf(&body, "Municipality: %s\n", orNA(details.Municipality))
	fmt.Fprintf(&body, "Technician: %s\n", orNA(wo.Technician()))
	if details.Notes != "" {
		fmt.Fprintf(&body, "Notes: %s\n", details.Notes)
	}
	if wo.TechnicianNotes() != "" {
		fmt.Fprintf(&body, "Technician notes: %s\n", wo.TechnicianNotes())
	}
	if wo.Report() != "" {
		fmt.Fprintf(&body, "Report: %s\n", wo.Report())
	}

	return ports.Message{
		To:      details.CustomerEmail,
		Subject: fmt.Sprintf("Work order #%s - %s", wo.Number(), title),
		Body:    body.String(),
	}
}

func orNA(v string) string {
	if strings.TrimSpace(v) == "" {
		return "N/A"
	}
	return v
}

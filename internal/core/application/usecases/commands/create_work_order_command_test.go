package commands_test

import (
	"testing"

	"workorders/internal/core/application/usecases/commands"
	"workorders/internal/core/domain/model/identity"
	"workorders/internal/core/domain/model/workorder"
	"workorders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateWorkOrderCommand_Success(t *testing.T) {
	cmd, err := commands.NewCreateWorkOrderCommand(adminCaller(t), " 123456 ", " Ana Ruiz ", workorder.Details{
		Device:       "Boiler",
		Municipality: "Valencia",
	})

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, "123456", cmd.Number().String())
	assert.Equal(t, "Ana Ruiz", cmd.Technician())
	assert.Equal(t, "Boiler", cmd.Details().Device)
}

func TestNewCreateWorkOrderCommand_InvalidInput(t *testing.T) {
	tests := []struct {
		name       string
		caller     identity.Identity
		number     string
		technician string
		wantErr    error
	}{
		{name: "malformed number", caller: adminCaller(t), number: "12345", technician: "Ana", wantErr: errs.ErrValueIsInvalid},
		{name: "letters in number", caller: adminCaller(t), number: "12a456", technician: "Ana", wantErr: errs.ErrValueIsInvalid},
		{name: "missing number", caller: adminCaller(t), number: "", technician: "Ana", wantErr: errs.ErrValueIsRequired},
		{name: "missing technician", caller: adminCaller(t), number: "123456", technician: "  ", wantErr: errs.ErrValueIsRequired},
		{name: "unconstructed caller", caller: identity.Identity{}, number: "123456", technician: "Ana", wantErr: identity.ErrIdentityIsNotConstructed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := commands.NewCreateWorkOrderCommand(tt.caller, tt.number, tt.technician, workorder.Details{})

			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewCreateWorkOrderCommand_MissingTechnicianNamesPayloadField(t *testing.T) {
	_, err := commands.NewCreateWorkOrderCommand(adminCaller(t), "123456", "", workorder.Details{})

	var required *errs.ValueIsRequiredError
	require.ErrorAs(t, err, &required)
	assert.Equal(t, "assignedTechnician", required.ParamName)
}

func TestCreateWorkOrderCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.CreateWorkOrderCommand

	require.ErrorIs(t, cmd.Validate(), commands.ErrCreateWorkOrderCommandIsNotConstructed)
}

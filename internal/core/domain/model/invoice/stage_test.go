package invoice_test

import (
	"testing"

	"doctrack/internal/core/domain/model/invoice"
	"doctrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStage_Owner(t *testing.T) {
	tests := map[invoice.Stage]invoice.Owner{
		invoice.KeyAccounts:       invoice.KeyAccountsManager,
		invoice.TransportPlanning: invoice.TransportPlanner,
		invoice.Loading:           invoice.Operations,
		invoice.ReadyDispatch:     invoice.Operations,
		invoice.FeriApplication:   invoice.FeriDepartment,
		invoice.InTransit:         invoice.Operations,
		invoice.Finance:           invoice.FinanceDepartment,
		invoice.Closed:            invoice.NoOwner,
	}
	for stage, owner := range tests {
		t.Run(stage.String(), func(t *testing.T) {
			require.NoError(t, stage.Validate())
			assert.Equal(t, owner, stage.Owner())
		})
	}

	require.Error(t, invoice.UnknownStage.Validate())
}

func TestStage_Actions(t *testing.T) {
	assert.Equal(t, []invoice.Action{invoice.SubmitToPlanning}, invoice.KeyAccounts.Actions())
	assert.Equal(t, []invoice.Action{invoice.ReturnToKeyAccounts, invoice.ConfirmLoad}, invoice.TransportPlanning.Actions())
	assert.Equal(t, []invoice.Action{invoice.ApproveFeri}, invoice.FeriApplication.Actions())
	assert.Empty(t, invoice.Closed.Actions())
}

func TestParseStage(t *testing.T) {
	s, err := invoice.ParseStage(" Ready_Dispatch ")
	require.NoError(t, err)
	assert.Equal(t, invoice.ReadyDispatch, s)

	_, err = invoice.ParseStage("unknown")
	require.Error(t, err)
}

func TestAction(t *testing.T) {
	a, err := invoice.ParseAction("dispatch")
	require.NoError(t, err)
	assert.Equal(t, invoice.Dispatch, a)
	assert.True(t, a.IsManual())

	assert.False(t, invoice.ConfirmLoad.IsManual())
	assert.False(t, invoice.ApproveFeri.IsManual())
	assert.False(t, invoice.UnknownAction.IsManual())

	_, err = invoice.ParseAction("fly")
	require.Error(t, err)
}

func TestFeriStatus_Record(t *testing.T) {
	tests := []struct {
		name    string
		from    invoice.FeriStatus
		to      invoice.FeriStatus
		wantErr bool
	}{
		{"pending to applied", invoice.FeriPending, invoice.FeriApplied, false},
		{"pending to approved", invoice.FeriPending, invoice.FeriApproved, false},
		{"applied to rejected", invoice.FeriApplied, invoice.FeriRejected, false},
		{"rejected to applied", invoice.FeriRejected, invoice.FeriApplied, false},
		{"rejected to approved", invoice.FeriRejected, invoice.FeriApproved, true},
		{"approved is final", invoice.FeriApproved, invoice.FeriApplied, true},
		{"not required", invoice.FeriNotRequired, invoice.FeriApplied, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.from.Record(tt.to)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.from, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.to, got)
		})
	}
}

func TestInspectionStatus(t *testing.T) {
	assert.Equal(t, invoice.InspectionPending, invoice.InspectionNotRequired.Require(true))
	assert.Equal(t, invoice.InspectionPassed, invoice.InspectionPassed.Require(true))
	assert.Equal(t, invoice.InspectionNotRequired, invoice.InspectionPassed.Require(false))

	_, err := invoice.InspectionPassed.Record(invoice.InspectionFailed)
	require.Error(t, err)
	_, err = invoice.InspectionPending.Record(invoice.InspectionPending)
	require.Error(t, err)

	r, err := invoice.ParseInspectionResult("PASSED")
	require.NoError(t, err)
	assert.Equal(t, invoice.InspectionPassed, r)

	k, err := invoice.ParseInspectionKind("bv")
	require.NoError(t, err)
	assert.Equal(t, invoice.BV, k)
}

func TestOwner(t *testing.T) {
	owner, err := invoice.ParseOwner(" Transport_Planner ")
	require.NoError(t, err)
	assert.Equal(t, invoice.TransportPlanner, owner)
	assert.NoError(t, owner.Validate())

	_, err = invoice.ParseOwner("warehouse")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	assert.ErrorIs(t, invoice.Owner(42).Validate(), errs.ErrValueIsInvalid)
}

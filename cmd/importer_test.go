package cmd

import (
	"context"
	"errors"
	"strings"
	"testing"

	"doctrack/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockTransporterCreator struct {
	mock.Mock
}

func (m *mockTransporterCreator) Handle(ctx context.Context, cmd commands.CreateTransporterCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type mockAgentCreator struct {
	mock.Mock
}

func (m *mockAgentCreator) Handle(ctx context.Context, cmd commands.CreateAgentCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

func TestImportTransporters(t *testing.T) {
	csv := "Name,Email,Phone\n" +
		"Swift Haulage,ops@swift.example,+260 97 000 0000\n" +
		"\n" +
		"Copperbelt Freight,desk@copperbelt.example,\n"

	handler := &mockTransporterCreator{}
	var names []string
	handler.On("Handle", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			names = append(names, args.Get(1).(commands.CreateTransporterCommand).Name())
		}).
		Return(nil)

	n, err := ImportTransporters(context.Background(), strings.NewReader(csv), handler, zap.NewNop())

	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []string{"Swift Haulage", "Copperbelt Freight"}, names)
}

func TestImportAgents_ColumnOrderFollowsHeader(t *testing.T) {
	csv := "border_post,name\nKasumbalesa,Border Clearing Ltd\n"

	handler := &mockAgentCreator{}
	handler.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreateAgentCommand) bool {
		return cmd.Name() == "Border Clearing Ltd"
	})).Return(nil).Once()

	n, err := ImportAgents(context.Background(), strings.NewReader(csv), handler, zap.NewNop())

	require.NoError(t, err)
	assert.Equal(t, 1, n)
	handler.AssertExpectations(t)
}

func TestImportTransporters_StopsAtFailingRow(t *testing.T) {
	csv := "name\nFirst\nSecond\nThird\n"

	handler := &mockTransporterCreator{}
	handler.On("Handle", mock.Anything, mock.Anything).Return(nil).Once()
	handler.On("Handle", mock.Anything, mock.Anything).Return(errors.New("duplicate")).Once()

	n, err := ImportTransporters(context.Background(), strings.NewReader(csv), handler, zap.NewNop())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "csv line 3")
	assert.Equal(t, 1, n)
	handler.AssertNumberOfCalls(t, "Handle", 2)
}

func TestImport_HeaderErrors(t *testing.T) {
	handler := &mockTransporterCreator{}

	_, err := ImportTransporters(context.Background(), strings.NewReader(""), handler, zap.NewNop())
	assert.ErrorContains(t, err, "missing header row")

	_, err = ImportTransporters(context.Background(), strings.NewReader("email,phone\na@b.c,1\n"), handler, zap.NewNop())
	assert.ErrorContains(t, err, `missing "name" column`)

	handler.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

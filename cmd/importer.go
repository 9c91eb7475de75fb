package cmd

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"doctrack/internal/core/application/usecases/commands"
	"doctrack/internal/core/domain/model/kernel"

	"go.uber.org/zap"
)

type transporterCreator interface {
	Handle(ctx context.Context, cmd commands.CreateTransporterCommand) error
}

type agentCreator interface {
	Handle(ctx context.Context, cmd commands.CreateAgentCommand) error
}

// ImportTransporters creates one transporter per CSV row. The header row
// names the columns: name, email and the optional phone. Rows are committed
// one by one; the first failing row stops the import.
func ImportTransporters(ctx context.Context, r io.Reader, handler transporterCreator, logger *zap.Logger) (int, error) {
	return importRows(r, []string{"name", "email", "phone"}, func(line int, row map[string]string) error {
		cmd, err := commands.NewCreateTransporterCommand(kernel.NewUUID(), row["name"], row["email"], row["phone"])
		if err != nil {
			return err
		}
		if err = handler.Handle(ctx, cmd); err != nil {
			return err
		}
		logger.Debug("Transporter imported", zap.Int("line", line), zap.String("name", row["name"]))
		return nil
	})
}

// ImportAgents creates one clearing agent per CSV row with the columns
// name, email and border_post.
func ImportAgents(ctx context.Context, r io.Reader, handler agentCreator, logger *zap.Logger) (int, error) {
	return importRows(r, []string{"name", "email", "border_post"}, func(line int, row map[string]string) error {
		cmd, err := commands.NewCreateAgentCommand(kernel.NewUUID(), row["name"], row["email"], row["border_post"])
		if err != nil {
			return err
		}
		if err = handler.Handle(ctx, cmd); err != nil {
			return err
		}
		logger.Debug("Agent imported", zap.Int("line", line), zap.String("name", row["name"]))
		return nil
	})
}

func importRows(r io.Reader, columns []string, create func(line int, row map[string]string) error) (int, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return 0, errors.New("csv: missing header row")
	}
	if err != nil {
		return 0, fmt.Errorf("csv header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := index[columns[0]]; !ok {
		return 0, fmt.Errorf("csv header: missing %q column", columns[0])
	}

	imported := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return imported, nil
		}
		line, _ := reader.FieldPos(0)
		if err != nil {
			return imported, fmt.Errorf("csv line %d: %w", line, err)
		}
		if blank(record) {
			continue
		}

		row := make(map[string]string, len(columns))
		for _, column := range columns {
			if i, ok := index[column]; ok && i < len(record) {
				row[column] = strings.TrimSpace(record[i])
			}
		}
		if err = create(line, row); err != nil {
			return imported, fmt.Errorf("csv line %d: %w", line, err)
		}
		imported++
	}
}

func blank(record []string) bool {
	for _, field := range record {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}

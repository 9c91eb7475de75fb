package http

import (
	"doctrack/internal/core/domain/model/kernel"
	"doctrack/internal/generated/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func toKernelUUID(id openapi_types.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func toKernelUUIDs(ids []openapi_types.UUID) ([]kernel.UUID, error) {
	out := make([]kernel.UUID, 0, len(ids))
	for _, id := range ids {
		k, err := toKernelUUID(id)
		if err != nil {
			return nil, err
		}
		out = append(out, k)
	}
	return out, nil
}

func optionalUUID(id *kernel.UUID) *openapi_types.UUID {
	if id == nil {
		return nil
	}
	out := id.Bytes()
	return &out
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func toMoney(a *kernel.Amount) *servers.Money {
	if a == nil {
		return nil
	}
	return &servers.Money{Amount: a.Value().StringFixed(2), Currency: a.Currency()}
}

func fromMoney(m *servers.Money) (*kernel.Amount, error) {
	if m == nil {
		return nil, nil
	}
	a, err := kernel.ParseAmount(m.Amount, m.Currency)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

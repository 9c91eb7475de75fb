package transport

import (
	"fmt"
	"strings"
	"time"

	"doctrack/internal/core/domain/model/kernel"
)

const (
	transportRequestPrefix = "TR"
	manifestPrefix         = "MF"
)

func newNumber(prefix string, id kernel.UUID, at time.Time) string {
	return fmt.Sprintf("%s-%s-%s", prefix, at.UTC().Format("20060102"), strings.ToUpper(id.String()[:4]))
}

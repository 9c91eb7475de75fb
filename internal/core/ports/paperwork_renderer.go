package ports

import (
	"context"
	"time"
)

// ShipmentLine is one invoice printed on a paperwork sheet.
type ShipmentLine struct {
	InvoiceNumber string
	Customer      string
	Destination   string
	GrossWeight   string
	Packages      int
	Value         string
	FeriReference string
}

// TransportRequestSheet is the content of a transport request PDF.
type TransportRequestSheet struct {
	Number      string
	IssuedAt    time.Time
	Transporter string
	PickupDate  time.Time
	Destination string
	Lines       []ShipmentLine
}

// ManifestSheet is the content of a manifest PDF.
type ManifestSheet struct {
	Number              string
	IssuedAt            time.Time
	Agent               string
	BorderPost          string
	TruckRegistration   string
	TrailerRegistration string
	DriverName          string
	Lines               []ShipmentLine
	TotalWeight         string
	TotalPackages       int
	TotalValues         []string
}

// PaperworkRenderer turns paperwork sheets into PDF documents.
type PaperworkRenderer interface {
	RenderTransportRequest(ctx context.Context, sheet TransportRequestSheet) ([]byte, error)
	RenderManifest(ctx context.Context, sheet ManifestSheet) ([]byte, error)
}

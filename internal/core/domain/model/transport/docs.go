// Package transport holds the paperwork of a shipment: the transporters and
// clearing agents it is handed to, the transport request sent to a
// transporter, the load confirmation returned for it and the manifest the
// trucks travel on.
//
// The package includes:
//   - Transporter and Agent: reference data with a contact address
//   - TransportRequest: Requested -> Confirmed, or Requested -> Cancelled
//   - LoadConfirmation: truck, driver and rate of a confirmed request
//   - Manifest: the invoices of one load with their weight, package and value totals
//
// Request and manifest numbers have the form PREFIX-YYYYMMDD-XXXX where XXXX
// are the first four hex digits of the record id.
package transport

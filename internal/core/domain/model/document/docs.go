// Package document models files that enter the tracker through the AI
// extraction pipeline.
//
// Ingestion happens in two phases:
//
//	AwaitingExtraction ──> PendingReview ──┬──> Acknowledged
//	        │                              └──> Rejected
//	        └──> ExtractionFailed
//
// A document is staged as PendingReview when the extraction engine calls back
// with the fields it read. Nothing reaches an invoice until a reviewer
// acknowledges the staged data, optionally correcting fields first.
// Acknowledged, Rejected and ExtractionFailed are final.
package document

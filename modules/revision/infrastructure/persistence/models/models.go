// Package models holds the JSON entities stored in the revision_amendments
// data column. Field names follow the public wire naming so stored blobs
// stay readable alongside command payloads.
package models

type Document struct {
	ID           string  `json:"id"`
	DocumentType string  `json:"documentType"`
	Title        string  `json:"title"`
	Description  *string `json:"description,omitempty"`
}

type Amendment struct {
	ID          string     `json:"id"`
	Token       string     `json:"token"`
	Owner       string     `json:"owner"`
	Rationale   string     `json:"rationale"`
	Description *string    `json:"description,omitempty"`
	Status      string     `json:"status"`
	Type        string     `json:"type"`
	RelatesTo   string     `json:"relatesTo"`
	RelatedItem string     `json:"relatedItem"`
	Date        string     `json:"date"`
	Documents   []Document `json:"documents,omitempty"`
}

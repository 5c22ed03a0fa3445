package api

import "time"

// RecordManifest describes one record of an uploaded package.
type RecordManifest struct {
	Index int    `json:"index"`
	Kind  string `json:"kind"` // metadata, depth or image
	Type  string `json:"type,omitempty"`
	Hash  string `json:"hash"`
	Size  int    `json:"size"`

	// ImageIndex is the zero-based image number for image records.
	ImageIndex *int `json:"image_index,omitempty"`
	// DepthSamples is the decoded sample count for the depth record.
	DepthSamples *int `json:"depth_samples,omitempty"`
}

// PackageManifest is the JSON view of an uploaded package.
type PackageManifest struct {
	ID          string           `json:"id"`
	Name        string           `json:"name,omitempty"`
	Size        int              `json:"size"`
	RecordCount int              `json:"record_count"`
	Complete    bool             `json:"complete"`
	ParseError  string           `json:"parse_error,omitempty"`
	Records     []RecordManifest `json:"records"`
	CreatedAt   time.Time        `json:"created_at"`
}

// APIError is the error payload shape shared by all endpoints.
type APIError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

package datamgmt

import "time"

// Record catalogs a data source feeding the credit pipeline.
type Record struct {
	ID              int64     `json:"id"`
	DataSource      string    `json:"dataSource"`
	DataType        string    `json:"dataType"`
	DataFormat      string    `json:"dataFormat"`
	DataOwner       string    `json:"dataOwner"`
	DataDescription string    `json:"dataDescription"`
	IsActive        bool      `json:"isActive"`
	Analysis        string    `json:"analysis"`
	LastUpdated     time.Time `json:"lastUpdated"`
}

// Input is the mutable portion of a record; analysis and lastUpdated are
// derived server-side.
type Input struct {
	DataSource      string `json:"dataSource"`
	DataType        string `json:"dataType"`
	DataFormat      string `json:"dataFormat"`
	DataOwner       string `json:"dataOwner"`
	DataDescription string `json:"dataDescription"`
	IsActive        bool   `json:"isActive"`
}

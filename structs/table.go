package structs

import "mesalink_server/structs/tables"

type CreateTableRequest struct {
	TableName   string `json:"table_name" validate:"required,min=1,max=100"`
	TableNumber string `json:"table_number" validate:"required,min=1,max=20"`
}

type UpdateTableRequest struct {
	TableName   string `json:"table_name" validate:"required,min=1,max=100"`
	TableNumber string `json:"table_number" validate:"required,min=1,max=20"`
}

type BulkTableEntry struct {
	Name   string `json:"name" validate:"required,min=1,max=100"`
	Number string `json:"number" validate:"required,min=1,max=20"`
}

type BulkCreateTablesRequest struct {
	Tables []BulkTableEntry `json:"tables" validate:"required,min=1,dive"`
}

type TableCountRequest struct {
	Count int `json:"count" validate:"gte=0,lte=500"`
}

// TableWithQR pairs a table row with its derived public menu URL.
type TableWithQR struct {
	*tables.Table
	MenuURL string `json:"menu_url"`
}

// TableQRExport is one entry of a bulk QR export. Failed renders are
// reported, not retried.
type TableQRExport struct {
	TableId     string `json:"table_id"`
	TableName   string `json:"table_name"`
	TableNumber string `json:"table_number"`
	MenuURL     string `json:"menu_url"`
	QRDataURL   string `json:"qr_data_url,omitempty"`
	Error       string `json:"error,omitempty"`
}

package erp

import (
	"Packlist/internal/models"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrRejected    = errors.New("rejected by ERP")
	// ErrUnavailable covers transport failures and malformed replies.
	ErrUnavailable = errors.New("ERP unavailable")
)

// RejectedError carries the message the ERP gave for a refused call.
type RejectedError struct {
	Message string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("rejected by ERP: %s", e.Message)
}

func (e *RejectedError) Unwrap() error {
	return ErrRejected
}

type PortalData struct {
	Success      bool             `json:"success"`
	Message      string           `json:"message,omitempty"`
	Token        string           `json:"token"`
	PurchaseName string           `json:"purchase"`
	PickingName  string           `json:"picking"`
	CompanyName  string           `json:"company"`
	Products     []models.Product `json:"products"`
	Header       models.Header    `json:"header"`
	ExistingRows []models.Row     `json:"existing_rows"`
}

type SubmitParams struct {
	Token  string              `json:"token"`
	Rows   []models.Row        `json:"rows"`
	Header models.Header       `json:"header"`
	Files  []models.Attachment `json:"files"`
}

type SubmitResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type rpcRequest struct {
	JSONRPC string      `json:"jsonrpc"`
	Method  string      `json:"method"`
	Params  interface{} `json:"params"`
	ID      string      `json:"id"`
}

type rpcErrorData struct {
	Name    string `json:"name,omitempty"`
	Message string `json:"message"`
}

type rpcError struct {
	Code    int          `json:"code"`
	Message string       `json:"message"`
	Data    rpcErrorData `json:"data"`
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *rpcError       `json:"error"`
}

package erp

import (
	"Packlist/internal/config"
	"Packlist/internal/models"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(url string) Client {
	return NewClient(&config.Configuration{ERP: config.ERPConfig{
		BaseURL:    url,
		DataPath:   "/supplier/pl/data",
		SubmitPath: "/supplier/pl/submit",
		Timeout:    5 * time.Second,
	}})
}

func TestSubmitPackingList_SendsJSONRPCEnvelope(t *testing.T) {
	var received map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/supplier/pl/submit", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.Header.Get("Content-Type"), "application/json")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":"1","result":{"success":true}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	result, err := client.SubmitPackingList(context.Background(), SubmitParams{
		Token:  "tok",
		Rows:   []models.Row{{ID: 1, ProductID: 3, Container: "MSKU1", Height: 2, Width: 1}},
		Header: models.Header{ContainerNo: "MSKU1"},
		Files:  []models.Attachment{{Name: "bl.pdf", Data: "AAAA", ContainerRef: "MSKU1"}},
	})

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "2.0", received["jsonrpc"])
	assert.Equal(t, "call", received["method"])
	assert.NotEmpty(t, received["id"])
	params := received["params"].(map[string]interface{})
	assert.Equal(t, "tok", params["token"])
	rows := params["rows"].([]interface{})
	assert.Equal(t, "MSKU1", rows[0].(map[string]interface{})["contenedor"])
	files := params["files"].([]interface{})
	assert.Equal(t, "MSKU1", files[0].(map[string]interface{})["container_ref"])
}

func TestSubmitPackingList_ResultMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":"1","result":{"success":false,"message":"La recepción ya fue procesada."}}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).SubmitPackingList(context.Background(), SubmitParams{Token: "tok"})

	var rejected *RejectedError
	require.True(t, errors.As(err, &rejected))
	assert.Equal(t, "La recepción ya fue procesada.", rejected.Message)
	assert.ErrorIs(t, err, ErrRejected)
}

func TestSubmitPackingList_ErrorDataMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":"1","error":{"code":200,"message":"Odoo Server Error","data":{"name":"odoo.exceptions.UserError","message":"Token inválido o expirado."}}}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).SubmitPackingList(context.Background(), SubmitParams{Token: "tok"})

	var rejected *RejectedError
	require.True(t, errors.As(err, &rejected))
	assert.Equal(t, "Token inválido o expirado.", rejected.Message)
}

func TestSubmitPackingList_UnknownError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":"1","result":{"success":false}}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).SubmitPackingList(context.Background(), SubmitParams{Token: "tok"})

	var rejected *RejectedError
	require.True(t, errors.As(err, &rejected))
	assert.Equal(t, "Unknown Error", rejected.Message)
}

func TestSubmitPackingList_HTTPFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).SubmitPackingList(context.Background(), SubmitParams{Token: "tok"})

	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrRejected)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestFetchPortalData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/supplier/pl/data", r.URL.Path)
		_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":"1","result":{
			"success":true,"token":"tok","purchase":"P00042","picking":"WH/IN/00007","company":"Marmoles SA",
			"products":[{"id":5,"name":"Travertino","code":"TRV","qty_ordered":120,"uom":"m²","unit_type":"Formato"}],
			"header":{"invoice_number":"INV-9","total_packages":4},
			"existing_rows":[{"product_id":5,"alto":0.6,"ancho":0.6}]}}`))
	}))
	defer server.Close()

	data, err := newTestClient(server.URL).FetchPortalData(context.Background(), "tok")

	require.NoError(t, err)
	assert.Equal(t, "P00042", data.PurchaseName)
	assert.Equal(t, "WH/IN/00007", data.PickingName)
	require.Len(t, data.Products, 1)
	assert.Equal(t, models.UnitTile, data.Products[0].UnitType)
	assert.Equal(t, "INV-9", data.Header.InvoiceNumber)
	assert.Equal(t, 4, data.Header.TotalPackages)
	require.Len(t, data.ExistingRows, 1)
	assert.Equal(t, 0.6, data.ExistingRows[0].Height)
}

func TestFetchPortalData_Expired(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":"1","result":{"success":false,"message":"Token inválido o expirado."}}`))
	}))
	defer server.Close()

	data, err := newTestClient(server.URL).FetchPortalData(context.Background(), "tok")

	assert.Nil(t, data)
	assert.ErrorIs(t, err, ErrRejected)
}

func TestCall_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestClient("http://127.0.0.1:1").FetchPortalData(ctx, "tok")

	assert.ErrorIs(t, err, context.Canceled)
}

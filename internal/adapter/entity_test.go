package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/MKhiriev/go-pos-client/internal/logger"
	"github.com/MKhiriev/go-pos-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func customersAdapter(t *testing.T, serverURL string) EntityAdapter[models.Customer, models.CustomerInput] {
	t.Helper()
	return NewServerAdapters(newTestClient(t, serverURL), logger.Nop()).Customers
}

// ── FetchPage ────────────────────────────────────────────────────────────────

func TestFetchPage_Success(t *testing.T) {
	var got receivedOperation
	srv := graphQLServer(t, http.StatusOK, `{"data":{"customersPaginated":{"data":[
		{"customerId":1,"name":"Ali","phone":"555","balance":"10","status":"Pending","createdAt":"2026-01-01T10:00:00Z"},
		{"customerId":2,"name":"Bea","phone":"556","balance":"0","status":"Received","createdAt":"2026-01-02T10:00:00Z"}
	],"total":25}}}`, &got)

	page, err := customersAdapter(t, srv.URL).FetchPage(context.Background(),
		models.PageRequest{Page: 1, Limit: 10, Status: models.CustomerStatusPending})

	require.NoError(t, err)
	assert.Equal(t, 25, page.Total)
	require.Len(t, page.Data, 2)
	assert.Equal(t, int64(1), page.Data[0].CustomerID)
	assert.Equal(t, "Bea", page.Data[1].Name)

	assert.Equal(t, "GetCustomersPaginated", got.OperationName)
	assert.Equal(t, float64(1), got.Variables["page"])
	assert.Equal(t, float64(10), got.Variables["limit"])
	assert.Equal(t, "Pending", got.Variables["status"])
	assert.NotContains(t, got.Variables, "search")
}

func TestFetchPage_EmptyData(t *testing.T) {
	srv := graphQLServer(t, http.StatusOK, `{"data":{"customersPaginated":{"data":null,"total":0}}}`, nil)

	page, err := customersAdapter(t, srv.URL).FetchPage(context.Background(), models.PageRequest{Page: 1, Limit: 10})

	require.NoError(t, err)
	assert.NotNil(t, page.Data)
	assert.Empty(t, page.Data)
}

func TestFetchPage_MissingField(t *testing.T) {
	srv := graphQLServer(t, http.StatusOK, `{"data":null}`, nil)

	_, err := customersAdapter(t, srv.URL).FetchPage(context.Background(), models.PageRequest{Page: 1, Limit: 10})

	assert.ErrorIs(t, err, ErrMissingField)
}

func TestFetchPage_UnsupportedSortNeverHitsNetwork(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	_, err := customersAdapter(t, srv.URL).FetchPage(context.Background(),
		models.PageRequest{Page: 1, Limit: 10, Sort: &models.SortInput{Field: "name", Direction: models.SortAsc}})

	assert.ErrorIs(t, err, ErrUnsupportedSort)
	assert.Zero(t, hits.Load())
}

func TestFetchPage_SalesWithItems(t *testing.T) {
	srv := graphQLServer(t, http.StatusOK, `{"data":{"getSalesPaginated":{"data":[
		{"saleId":9,"customerId":1,"invoiceNo":"INV-1","date":"2026-02-01","status":"Paid","createdAt":"2026-02-01T09:00:00Z",
		 "paymentMethod":"Cash","total":30,"items":[{"productId":4,"productName":"Tea","ctn":0,"pieces":3,"quantity":3,"price":10,"total":30}]}
	],"total":1}}}`, nil)

	sales := NewServerAdapters(newTestClient(t, srv.URL), logger.Nop()).Sales
	page, err := sales.FetchPage(context.Background(), models.PageRequest{Page: 1, Limit: 10})

	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	require.Len(t, page.Data[0].Items, 1)
	assert.Equal(t, "Tea", page.Data[0].Items[0].ProductName)
	assert.Equal(t, 30.0, page.Data[0].Total)
}

// ── Create / Update ──────────────────────────────────────────────────────────

func TestCreate_Success(t *testing.T) {
	var got receivedOperation
	srv := graphQLServer(t, http.StatusOK, `{"data":{"createCustomer":
		{"customerId":42,"name":"Ali","phone":"555","balance":"0","status":"Pending","createdAt":"2026-03-01T00:00:00Z"}}}`, &got)

	created, err := customersAdapter(t, srv.URL).Create(context.Background(),
		models.CustomerInput{Name: "Ali", Phone: "555", Balance: "0", Status: models.CustomerStatusPending})

	require.NoError(t, err)
	assert.Equal(t, int64(42), created.CustomerID)
	input, ok := got.Variables["createCustomerInput"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Ali", input["name"])
}

func TestCreate_GraphQLError(t *testing.T) {
	srv := graphQLServer(t, http.StatusOK, `{"data":null,"errors":[{"message":"phone taken"}]}`, nil)

	_, err := customersAdapter(t, srv.URL).Create(context.Background(), models.CustomerInput{Name: "Ali"})

	assert.ErrorIs(t, err, ErrGraphQL)
	assert.Contains(t, err.Error(), "phone taken")
}

func TestUpdate_Success(t *testing.T) {
	var got receivedOperation
	srv := graphQLServer(t, http.StatusOK, `{"data":{"updateCustomer":
		{"customerId":7,"name":"Renamed","status":"Received","createdAt":"2026-03-01T00:00:00Z"}}}`, &got)

	updated, err := customersAdapter(t, srv.URL).Update(context.Background(), 7, models.CustomerInput{Name: "Renamed"})

	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, float64(7), got.Variables["customerId"])
	assert.Contains(t, got.Variables, "updateCustomerInput")
}

func TestUpdate_NotFound(t *testing.T) {
	srv := graphQLServer(t, http.StatusNotFound, "no such customer", nil)

	_, err := customersAdapter(t, srv.URL).Update(context.Background(), 7, models.CustomerInput{Name: "x"})

	assert.ErrorIs(t, err, ErrNotFound)
}

// ── Delete ───────────────────────────────────────────────────────────────────

func TestDelete_RemovedID(t *testing.T) {
	srv := graphQLServer(t, http.StatusOK, `{"data":{"removeCustomer":{"customerId":7}}}`, nil)

	err := customersAdapter(t, srv.URL).Delete(context.Background(), 7)

	assert.NoError(t, err)
}

func TestDelete_SaleAck(t *testing.T) {
	tests := []struct {
		name string
		body string
		want error
	}{
		{"success", `{"data":{"deleteSale":{"success":true,"message":"deleted"}}}`, nil},
		{"rejected", `{"data":{"deleteSale":{"success":false,"message":"sale is locked"}}}`, ErrDeleteRejected},
		{"missing", `{"data":{"deleteSale":null}}`, ErrMissingField},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := graphQLServer(t, http.StatusOK, tt.body, nil)
			sales := NewServerAdapters(newTestClient(t, srv.URL), logger.Nop()).Sales

			err := sales.Delete(context.Background(), 3)

			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDelete_Unauthorized(t *testing.T) {
	srv := graphQLServer(t, http.StatusUnauthorized, "token expired", nil)

	err := customersAdapter(t, srv.URL).Delete(context.Background(), 7)

	assert.ErrorIs(t, err, ErrUnauthorized)
}

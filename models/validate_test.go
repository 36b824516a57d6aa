package models

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/burakgns/istakip/pkg"
)

// fields, hatanın içindeki alan haritasını çıkarır; hata yoksa test düşer.
func fields(t *testing.T, err error) map[string]string {
	t.Helper()
	var vErr *pkg.ValidationError
	require.ErrorAs(t, err, &vErr)
	require.True(t, errors.Is(err, pkg.ErrBadRequest))
	return vErr.Fields
}

func TestCreateAccountRequestValidate(t *testing.T) {
	req := &CreateAccountRequest{Name: "  ", Type: "supplier"}
	f := fields(t, req.Validate())
	assert.Contains(t, f, "name")
	assert.Contains(t, f, "type")

	ok := &CreateAccountRequest{Name: "  Yılmaz İnşaat  ", Type: AccountTypeCustomer}
	require.NoError(t, ok.Validate())
	assert.Equal(t, "Yılmaz İnşaat", ok.Name) // trim edilmiş hali
}

func TestCreateQuoteRequestValidate_ItemFieldsKeyedByIndex(t *testing.T) {
	req := &CreateQuoteRequest{
		Type:      QuoteTypeSent,
		AccountID: 1,
		Date:      time.Now(),
		Items: []QuoteItemInput{
			{Description: "Geçerli kalem", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(10)},
			{Description: "", Quantity: decimal.Zero, UnitPrice: decimal.NewFromInt(-5)},
		},
	}
	f := fields(t, req.Validate())
	assert.Contains(t, f, "items[1].description")
	assert.Contains(t, f, "items[1].quantity")
	assert.Contains(t, f, "items[1].unit_price")
	assert.NotContains(t, f, "items[0].description")
}

func TestCreateQuoteRequestValidate_Defaults(t *testing.T) {
	req := &CreateQuoteRequest{
		Type:      QuoteTypeSent,
		AccountID: 1,
		Date:      time.Now(),
		Items:     []QuoteItemInput{{Description: "Kalem", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(10)}},
	}
	require.NoError(t, req.Validate())
	assert.Equal(t, QuoteStatusPending, req.Status)
	assert.Equal(t, CurrencyTRY, req.Currency)
	assert.Equal(t, "adet", req.Items[0].Unit)
}

func TestCreateTaskRequestValidate_Defaults(t *testing.T) {
	req := &CreateTaskRequest{Title: "Görev"}
	require.NoError(t, req.Validate())
	assert.Equal(t, TaskStatusTodo, req.Status)
	assert.Equal(t, TaskPriorityMedium, req.Priority)
}

func TestCreateTransactionRequestValidate(t *testing.T) {
	req := &CreateTransactionRequest{Type: "transfer", Amount: decimal.Zero}
	f := fields(t, req.Validate())
	assert.Contains(t, f, "account_id")
	assert.Contains(t, f, "type")
	assert.Contains(t, f, "amount")
	assert.Contains(t, f, "date")
}

func TestCreateUserRequestValidate(t *testing.T) {
	req := &CreateUserRequest{Username: "ab", Password: "kisa", Email: "not-an-email"}
	f := fields(t, req.Validate())
	assert.Contains(t, f, "username")
	assert.Contains(t, f, "password")
	assert.Contains(t, f, "name")
	assert.Contains(t, f, "email")

	bad := &CreateUserRequest{Username: "burak gns", Password: "gizli-sifre", Name: "Burak", Email: "b@x.dev"}
	f = fields(t, bad.Validate())
	assert.Contains(t, f["username"], "letters, numbers, and underscores")

	ok := &CreateUserRequest{Username: "burak_gns", Password: "gizli-sifre", Name: "Burak", Email: "b@x.dev"}
	require.NoError(t, ok.Validate())
}

func TestValidationErrorMessageIsDeterministic(t *testing.T) {
	err := (&pkg.ValidationError{}).Add("b", "ikinci").Add("a", "birinci")
	assert.Equal(t, "validation failed: a: birinci; b: ikinci", err.Error())
}

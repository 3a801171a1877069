package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpenseHandler_Create(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .* FROM `accounts` .*FOR UPDATE").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "balance"}).
			AddRow(1, "现金", "15000.00"))
	mock.ExpectExec("UPDATE `accounts` SET `balance`").
		WithArgs(decimal.RequireFromString("14900.01"), 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO `expenses`").
		WillReturnResult(sqlmock.NewResult(10, 1))
	mock.ExpectCommit()

	// 事务提交后重新加载
	mock.ExpectQuery("SELECT .* FROM `expenses`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "amount", "category_id", "account_id", "description", "spent_at"}).
			AddRow(10, "99.99", nil, 1, "午餐", time.Now()))

	router := gin.New()
	router.POST("/expenses", NewExpenseHandler().Create)

	body := `{"amount":99.99,"account_id":1,"description":"午餐","spent_at":"2024-01-15 12:30:00"}`
	req := httptest.NewRequest("POST", "/expenses", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "创建成功", resp["message"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_Create_InsufficientFunds(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .* FROM `accounts` .*FOR UPDATE").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "balance"}).
			AddRow(1, "现金", "50.00"))
	mock.ExpectRollback()

	router := gin.New()
	router.POST("/expenses", NewExpenseHandler().Create)

	body := `{"amount":99.99,"account_id":1}`
	req := httptest.NewRequest("POST", "/expenses", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp["message"], "账户余额不足")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_Create_BadTime(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	router := gin.New()
	router.POST("/expenses", NewExpenseHandler().Create)

	body := `{"amount":99.99,"account_id":1,"spent_at":"2024/01/15"}`
	req := httptest.NewRequest("POST", "/expenses", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
}

func TestExpenseHandler_Delete_NotFound(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .* FROM `expenses`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "amount", "category_id", "account_id", "description", "spent_at"}))
	mock.ExpectRollback()

	router := gin.New()
	router.DELETE("/expenses/:id", NewExpenseHandler().Delete)

	req := httptest.NewRequest("DELETE", "/expenses/42", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 404, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_Summary(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT categories.name AS category, SUM\\(expenses.amount\\) AS total FROM `expenses`").
		WillReturnRows(sqlmock.NewRows([]string{"category", "total"}).
			AddRow("餐饮", "800.00").
			AddRow("交通", "600.00"))

	router := gin.New()
	router.GET("/expenses/summary", NewExpenseHandler().Summary)

	req := httptest.NewRequest("GET", "/expenses/summary?month=2024-01", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp struct {
		Data []struct {
			Category string          `json:"category"`
			Total    decimal.Decimal `json:"total"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "餐饮", resp.Data[0].Category)
	assert.Equal(t, "800", resp.Data[0].Total.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_Summary_BadMonth(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	router := gin.New()
	router.GET("/expenses/summary", NewExpenseHandler().Summary)

	req := httptest.NewRequest("GET", "/expenses/summary?month=2024-1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
}

package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransferHandler_Create(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .* FROM `accounts` .*FOR UPDATE").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "balance"}).
			AddRow(1, "现金", "1000.00"))
	mock.ExpectQuery("SELECT .* FROM `accounts` .*FOR UPDATE").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "balance"}).
			AddRow(2, "储蓄卡", "0.00"))
	mock.ExpectExec("UPDATE `accounts` SET `balance`").
		WithArgs(decimal.RequireFromString("0.00"), 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE `accounts` SET `balance`").
		WithArgs(decimal.RequireFromString("1000.00"), 2).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO `transfers`").
		WillReturnResult(sqlmock.NewResult(5, 1))
	mock.ExpectCommit()

	router := gin.New()
	router.POST("/transfers", NewTransferHandler().Create)

	body := `{"from_account_id":1,"to_account_id":2,"amount":1000,"description":"换卡"}`
	req := httptest.NewRequest("POST", "/transfers", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "创建成功", resp["message"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTransferHandler_Create_SameAccount(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	router := gin.New()
	router.POST("/transfers", NewTransferHandler().Create)

	body := `{"from_account_id":1,"to_account_id":1,"amount":100}`
	req := httptest.NewRequest("POST", "/transfers", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
}

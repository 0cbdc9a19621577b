package utils

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSONRejectsUnknownFields(t *testing.T) {
	type payload struct {
		Amount int `json:"amount"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"amount": 10}`))
	var p payload
	require.NoError(t, DecodeJSON(req, &p))
	assert.Equal(t, 10, p.Amount)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"amount": 10, "extra": true}`))
	assert.Error(t, DecodeJSON(req, &p))
}

func TestDefaultAvatarURL(t *testing.T) {
	url := DefaultAvatarURL("ana garcía")
	assert.Contains(t, url, "api.dicebear.com")
	assert.Contains(t, url, "seed=ana+garc%C3%ADa")
}

func TestNullConverters(t *testing.T) {
	assert.Equal(t, "x", NullStringToString(sql.NullString{String: "x", Valid: true}))
	assert.Equal(t, "", NullStringToString(sql.NullString{String: "x", Valid: false}))

	assert.Nil(t, NullStringToPointer(sql.NullString{}))
	require.NotNil(t, NullStringToPointer(sql.NullString{String: "x", Valid: true}))

	assert.Equal(t, 7, NullInt64ToInt(sql.NullInt64{Int64: 7, Valid: true}))
	assert.Equal(t, 0, NullInt64ToInt(sql.NullInt64{Int64: 7, Valid: false}))

	now := time.Now()
	assert.Equal(t, now, NullTimeToTime(sql.NullTime{Time: now, Valid: true}))
	assert.True(t, NullTimeToTime(sql.NullTime{}).IsZero())
	assert.Nil(t, NullTimeToPointer(sql.NullTime{}))
}

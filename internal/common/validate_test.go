package common

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type samplePayload struct {
	Code string `json:"code" validate:"required"`
	Qty  int    `json:"qty" validate:"omitempty,min=1"`
}

func TestDecodeJSONValid(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"code":"BEMVINDO10","qty":2}`))
	var p samplePayload
	require.NoError(t, DecodeJSON(req, &p))
	require.Equal(t, "BEMVINDO10", p.Code)
	require.Equal(t, 2, p.Qty)
}

func TestDecodeJSONMalformed(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"code":`))
	var p samplePayload
	require.ErrorIs(t, DecodeJSON(req, &p), ErrInvalidPayload)
}

func TestDecodeJSONMissingRequiredField(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"qty":2}`))
	var p samplePayload
	err := DecodeJSON(req, &p)
	require.ErrorIs(t, err, ErrInvalidPayload)
	require.Contains(t, err.Error(), "Code")
}

func TestDecodeJSONFailsValidationRule(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"code":"X","qty":-1}`))
	var p samplePayload
	require.ErrorIs(t, DecodeJSON(req, &p), ErrInvalidPayload)
}

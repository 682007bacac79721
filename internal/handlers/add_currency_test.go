package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/currency-watchlist/internal/apperrors"
	"github.com/sbilibin2017/currency-watchlist/internal/models"
)

func TestAddCurrencyHandler(t *testing.T) {
	ctrl := gomock.NewController(t)

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockCurrencyAdder)
		expectedCode int
		expectedBody string
	}{
		{
			name: "success",
			body: `{"code":"USD"}`,
			mockSetup: func(m *MockCurrencyAdder) {
				m.EXPECT().AddCurrency(gomock.Any(), "USD").
					Return(&models.Currency{Code: "USD", Name: "Dólar Americano"}, nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: `{"code":"USD","name":"Dólar Americano","rate":null,"updated_at":null}`,
		},
		{
			name:         "missing code",
			body:         `{}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"Field 'code' is required"}`,
		},
		{
			name:         "null code",
			body:         `{"code":null}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"Field 'code' is required"}`,
		},
		{
			name:         "empty body",
			body:         ``,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"Field 'code' is required"}`,
		},
		{
			name:         "invalid json",
			body:         `{invalid json}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"Field 'code' is required"}`,
		},
		{
			name:         "code is not a string",
			body:         `{"code":840}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"Code must be a 3-character string"}`,
		},
		{
			name: "not in allow-list",
			body: `{"code":"XXX"}`,
			mockSetup: func(m *MockCurrencyAdder) {
				m.EXPECT().AddCurrency(gomock.Any(), "XXX").
					Return(nil, apperrors.New(apperrors.ErrInvalidInput, "Invalid currency code. Use one of the allowed codes."))
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"Invalid currency code. Use one of the allowed codes."}`,
		},
		{
			name: "already exists",
			body: `{"code":"USD"}`,
			mockSetup: func(m *MockCurrencyAdder) {
				m.EXPECT().AddCurrency(gomock.Any(), "USD").
					Return(nil, apperrors.New(apperrors.ErrAlreadyExists, "Currency USD already exists"))
			},
			expectedCode: http.StatusConflict,
			expectedBody: `{"message":"Currency USD already exists"}`,
		},
		{
			name: "internal server error",
			body: `{"code":"USD"}`,
			mockSetup: func(m *MockCurrencyAdder) {
				m.EXPECT().AddCurrency(gomock.Any(), "USD").Return(nil, errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"message":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockCurrencyAdder(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewAddCurrencyHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/currencies", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}

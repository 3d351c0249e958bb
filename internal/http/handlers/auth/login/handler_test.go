package login

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"webdesktop/internal/domain/models"
	"webdesktop/internal/http/handlers/mocks"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestHandlerLogin(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		setupMock    func(*mocks.MockAuthenticator)
		expectedCode int
		expectedBody string
	}{
		{
			name: "token issued",
			body: `{"username":"ab","password":"123456"}`,
			setupMock: func(m *mocks.MockAuthenticator) {
				m.EXPECT().Login(gomock.Any(), "ab", "123456").Return("jwt-token", nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"token":"jwt-token"}`,
		},
		{
			name:         "empty body",
			body:         "",
			setupMock:    func(m *mocks.MockAuthenticator) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"invalid request body"}`,
		},
		{
			name: "unknown user",
			body: `{"username":"zz","password":"123456"}`,
			setupMock: func(m *mocks.MockAuthenticator) {
				m.EXPECT().Login(gomock.Any(), "zz", "123456").Return("", fmt.Errorf("%w: user not found", models.ErrUnfound))
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"user not found"}`,
		},
		{
			name: "wrong password",
			body: `{"username":"ab","password":"nope"}`,
			setupMock: func(m *mocks.MockAuthenticator) {
				m.EXPECT().Login(gomock.Any(), "ab", "nope").Return("", fmt.Errorf("%w: wrong password", models.ErrUnauthorized))
			},
			expectedCode: http.StatusForbidden,
			expectedBody: `{"error":"wrong password"}`,
		},
		{
			name: "storage failure",
			body: `{"username":"ab","password":"123456"}`,
			setupMock: func(m *mocks.MockAuthenticator) {
				m.EXPECT().Login(gomock.Any(), "ab", "123456").Return("", errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := mocks.NewMockAuthenticator(ctrl)
			tt.setupMock(svc)

			req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			HandlerLogin(svc)(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

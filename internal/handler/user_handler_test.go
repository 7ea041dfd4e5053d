package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"nt-data-lab/internal/models"
	"nt-data-lab/internal/service/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUserHandler(t *testing.T) {
	mockService := &mocks.MockUserService{}
	handler := NewUserHandler(mockService)

	assert.NotNil(t, handler)
	assert.Equal(t, mockService, handler.service)
}

func TestUserHandler_GetProfile(t *testing.T) {
	tests := []struct {
		name           string
		body           gin.H
		mockSetup      func(*mocks.MockUserService)
		expectedStatus int
		checkResponse  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name: "returns profile",
			body: gin.H{"action": "manage_users", "method": "get_profile", "email": "coach@example.com"},
			mockSetup: func(m *mocks.MockUserService) {
				m.GetProfileFunc = func(ctx context.Context, email string) (*models.Profile, error) {
					assert.Equal(t, "coach@example.com", email)
					return &models.Profile{
						User:    models.User{Email: email, Role: models.RoleCoach},
						Context: models.EmptyAccessContext(),
					}, nil
				}
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp models.Profile
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, "coach@example.com", resp.User.Email)
				assert.NotNil(t, resp.Context.OwnedTeams)
			},
		},
		{
			name:           "missing email",
			body:           gin.H{"action": "manage_users", "method": "get_profile"},
			mockSetup:      func(m *mocks.MockUserService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "store failure keeps its message",
			body: gin.H{"action": "manage_users", "method": "get_profile", "email": "coach@example.com"},
			mockSetup: func(m *mocks.MockUserService) {
				m.GetProfileFunc = func(ctx context.Context, email string) (*models.Profile, error) {
					return nil, errors.New("connection refused")
				}
			},
			expectedStatus: http.StatusInternalServerError,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, "connection refused", errorMessage(t, w))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newServiceMocks()
			tt.mockSetup(m.users)

			w := postJSON(t, newTestRouter(m, ""), tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
		})
	}
}

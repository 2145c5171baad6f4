package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/drivelane/drivelane-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockContactCollection is a mock implementation of db.ContactCollection.
type MockContactCollection struct {
	mock.Mock
}

func (m *MockContactCollection) InsertContact(ctx context.Context, contact models.Contact) (*models.Contact, error) {
	args := m.Called(ctx, contact)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Contact), args.Error(1)
}

func (m *MockContactCollection) FindContacts(ctx context.Context, skip, limit int64) ([]models.Contact, error) {
	args := m.Called(ctx, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Contact), args.Error(1)
}

func (m *MockContactCollection) FindContactByID(ctx context.Context, id string) (*models.Contact, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Contact), args.Error(1)
}

func (m *MockContactCollection) DeleteContact(ctx context.Context, id string) (*models.Contact, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Contact), args.Error(1)
}

func (m *MockContactCollection) DeleteAllContacts(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockContactCollection) CountContacts(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func TestContactCreate_Success(t *testing.T) {
	coll := new(MockContactCollection)
	created := &models.Contact{ID: primitive.NewObjectID(), Name: "Jess", Email: "jess@example.com"}
	coll.On("InsertContact", mock.Anything, mock.MatchedBy(func(c models.Contact) bool {
		return c.Email == "jess@example.com" // lowercased before insert
	})).Return(created, nil)
	h := NewContactHandler(coll)

	payload := `{"name":"Jess","email":"Jess@Example.com","subject":"Trade-in","message":"Interested in a trade-in quote."}`
	req := httptest.NewRequest(http.MethodPost, "/api/contacts", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Thank you for your message. We will get back to you soon!", body["message"])
	coll.AssertExpectations(t)
}

func TestContactCreate_Validation(t *testing.T) {
	h := NewContactHandler(new(MockContactCollection))

	req := httptest.NewRequest(http.MethodPost, "/api/contacts", strings.NewReader(`{"name":"Jess"}`))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Contains(t, body["errors"], "Email is required")
	assert.Contains(t, body["errors"], "Message is required")
}

func TestContactList_PaginationDefaults(t *testing.T) {
	coll := new(MockContactCollection)
	coll.On("FindContacts", mock.Anything, int64(0), int64(20)).Return([]models.Contact{}, nil)
	coll.On("CountContacts", mock.Anything).Return(int64(0), nil)
	h := NewContactHandler(coll)

	req := httptest.NewRequest(http.MethodGet, "/api/contacts", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	pagination := body["pagination"].(map[string]interface{})
	assert.Equal(t, float64(1), pagination["page"])
	assert.Equal(t, float64(20), pagination["limit"])
	assert.Equal(t, false, pagination["hasNext"])
	coll.AssertExpectations(t)
}

func TestContactDeleteAll_Empty(t *testing.T) {
	coll := new(MockContactCollection)
	coll.On("CountContacts", mock.Anything).Return(int64(0), nil)
	h := NewContactHandler(coll)

	req := httptest.NewRequest(http.MethodDelete, "/api/contacts", nil)
	rec := httptest.NewRecorder()
	h.DeleteAll(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "No contacts found to delete", body["message"])
	assert.Equal(t, float64(0), body["deletedCount"])
	coll.AssertNotCalled(t, "DeleteAllContacts", mock.Anything)
}

func TestContactDeleteAll_ReportsCounts(t *testing.T) {
	coll := new(MockContactCollection)
	coll.On("CountContacts", mock.Anything).Return(int64(3), nil)
	coll.On("DeleteAllContacts", mock.Anything).Return(int64(3), nil)
	h := NewContactHandler(coll)

	req := httptest.NewRequest(http.MethodDelete, "/api/contacts", nil)
	rec := httptest.NewRecorder()
	h.DeleteAll(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(3), body["deletedCount"])
	assert.Equal(t, float64(3), body["previousCount"])
	coll.AssertExpectations(t)
}

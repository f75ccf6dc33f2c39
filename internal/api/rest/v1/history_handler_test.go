//go:build unit
// +build unit

package v1

import (
	"net/http"
	"testing"
	"time"

	"github.com/MGTheTrain/rms/internal/domain/history"
	"github.com/MGTheTrain/rms/internal/domain/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func testEntry() *history.Entry {
	return &history.Entry{
		Seq:         4,
		TargetSeq:   7,
		ActionType:  history.ActionUpdate,
		BeforeValue: strPtr(`{"name":"Jane Roe"}`),
		AfterValue:  strPtr(`{"name":"Jane Doe"}`),
		Username:    strPtr("admin"),
		CreatedAt:   time.Now().UTC(),
	}
}

func TestEmployeeHistoryHandler_List(t *testing.T) {
	mockHistoryService := new(MockHistoryService)
	handler := NewEmployeeHistoryHandler(mockHistoryService)

	mockHistoryService.On("List", mock.Anything, shared.NewPageQuery()).Return([]*history.Entry{testEntry()}, int64(1), nil)

	w := serve(handler.List, http.MethodGet, "/v1/employee-history", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"employee_seq":7`)
	assert.Contains(t, w.Body.String(), `"action_type":"UPDATE"`)
	assert.NotContains(t, w.Body.String(), "organization_seq")
	mockHistoryService.AssertExpectations(t)
}

func TestOrganizationHistoryHandler_GetBySeq(t *testing.T) {
	mockHistoryService := new(MockHistoryService)
	handler := NewOrganizationHistoryHandler(mockHistoryService)

	mockHistoryService.On("GetBySeq", mock.Anything, uint(4)).Return(testEntry(), nil)
	mockHistoryService.On("GetBySeq", mock.Anything, uint(5)).Return(nil, history.ErrOrganizationHistoryNotFound)

	w := serve(handler.GetBySeq, http.MethodGet, "/v1/organization-history/4", "", seq("4"))
	assert.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.EqualValues(t, 7, body.Data["organization_seq"])
	assert.Equal(t, "admin", body.Data["username"])

	w = serve(handler.GetBySeq, http.MethodGet, "/v1/organization-history/5", "", seq("5"))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "organization history not found", *decode(t, w).Message)

	mockHistoryService.AssertExpectations(t)
}

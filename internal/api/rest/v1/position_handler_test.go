//go:build unit
// +build unit

package v1

import (
	"net/http"
	"testing"
	"time"

	"github.com/MGTheTrain/rms/internal/domain/positions"
	"github.com/MGTheTrain/rms/internal/domain/ranks"
	"github.com/MGTheTrain/rms/internal/domain/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestPositionHandler_Create(t *testing.T) {
	mockPositionService := new(MockPositionService)
	handler := NewPositionHandler(mockPositionService)

	expected := &positions.CreatePosition{Title: "CEO", RoleSeq: uintPtr(1), Description: strPtr("chief executive")}
	mockPositionService.On("Create", mock.Anything, expected).Return(&positions.Position{
		Seq:         1,
		Title:       "CEO",
		RoleSeq:     uintPtr(1),
		Description: strPtr("chief executive"),
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}, nil)

	w := serve(handler.Create, http.MethodPost, "/v1/position", `{"title": "CEO", "role_seq": 1, "description": "chief executive"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	body := decode(t, w)
	assert.Equal(t, "CEO", body.Data["title"])
	assert.EqualValues(t, 1, body.Data["role_seq"])
	assert.Equal(t, "Position created successfully", *body.Message)
	mockPositionService.AssertExpectations(t)
}

func TestPositionHandler_Create_DuplicateTitle(t *testing.T) {
	mockPositionService := new(MockPositionService)
	handler := NewPositionHandler(mockPositionService)

	mockPositionService.On("Create", mock.Anything, mock.Anything).Return(nil, positions.ErrPositionAlreadyExists)

	w := serve(handler.Create, http.MethodPost, "/v1/position", `{"title": "CEO"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "position already exists", *decode(t, w).Message)
}

func TestPositionHandler_Update_NoData(t *testing.T) {
	mockPositionService := new(MockPositionService)
	handler := NewPositionHandler(mockPositionService)

	mockPositionService.On("Update", mock.Anything, uint(1), &positions.UpdatePosition{}).Return(nil, shared.ErrNoUpdateData)

	w := serve(handler.Update, http.MethodPatch, "/v1/position/1", `{}`, seq("1"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "no data to update", *decode(t, w).Message)
	mockPositionService.AssertExpectations(t)
}

func TestPositionHandler_Delete_NotFound(t *testing.T) {
	mockPositionService := new(MockPositionService)
	handler := NewPositionHandler(mockPositionService)

	mockPositionService.On("Delete", mock.Anything, uint(5)).Return(positions.ErrPositionNotFound)

	w := serve(handler.Delete, http.MethodDelete, "/v1/position/5", "", seq("5"))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRankHandler_ListAndUpdate(t *testing.T) {
	mockRankService := new(MockRankService)
	handler := NewRankHandler(mockRankService)

	rank := &ranks.Rank{Seq: 2, Title: "Division head", CreatedAt: time.Now().UTC(), UpdatedAt: time.Now().UTC()}
	mockRankService.On("List", mock.Anything, shared.NewPageQuery()).Return([]*ranks.Rank{rank}, int64(1), nil)
	mockRankService.On("Update", mock.Anything, uint(2), &ranks.UpdateRank{Title: strPtr("Head of division")}).
		Return(&ranks.Rank{Seq: 2, Title: "Head of division"}, nil)

	w := serve(handler.List, http.MethodGet, "/v1/rank", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Division head")
	assert.EqualValues(t, 1, decode(t, w).Data["total_pages"])

	w = serve(handler.Update, http.MethodPatch, "/v1/rank/2", `{"title": "Head of division"}`, seq("2"))
	assert.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Head of division", body.Data["title"])
	assert.Equal(t, "Rank updated successfully", *body.Message)

	mockRankService.AssertExpectations(t)
}

func TestRankHandler_Create_TitleRequired(t *testing.T) {
	mockRankService := new(MockRankService)
	handler := NewRankHandler(mockRankService)

	w := serve(handler.Create, http.MethodPost, "/v1/rank", `{"description": "no title"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "field required", decode(t, w).Data["title"])
}

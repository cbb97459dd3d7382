package edit_blocks

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ProfileService/internal/domain"
	"github.com/m04kA/SMC-ProfileService/internal/service/blocks"
	editBlocks "github.com/m04kA/SMC-ProfileService/internal/usecase/edit_blocks"
	"github.com/m04kA/SMC-ProfileService/pkg/logger"
)

type fakeUseCase struct {
	err error

	gotPageType  domain.PageType
	gotBlockType domain.BlockType
	gotPatch     domain.Patch
	gotDirection blocks.Direction
	gotFrom      int
	gotTo        int
}

func (f *fakeUseCase) response(pageType domain.PageType) (*editBlocks.Response, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &editBlocks.Response{
		BusinessID: "biz-1",
		Page:       domain.Page{Type: pageType, Slug: string(pageType), Settings: domain.Settings{Blocks: []domain.Block{}}},
	}, nil
}

func (f *fakeUseCase) AddBlock(_ context.Context, _ string, pageType domain.PageType, blockType domain.BlockType) (*editBlocks.Response, error) {
	f.gotPageType, f.gotBlockType = pageType, blockType
	resp, err := f.response(pageType)
	if err != nil {
		return nil, err
	}
	resp.Block = &domain.Block{ID: "new", Type: blockType, Content: domain.TextBlock{}}
	return resp, nil
}

func (f *fakeUseCase) UpdateBlock(_ context.Context, _ string, pageType domain.PageType, _ string, patch domain.Patch) (*editBlocks.Response, error) {
	f.gotPageType, f.gotPatch = pageType, patch
	return f.response(pageType)
}

func (f *fakeUseCase) RemoveBlock(_ context.Context, _ string, pageType domain.PageType, _ string) (*editBlocks.Response, error) {
	f.gotPageType = pageType
	return f.response(pageType)
}

func (f *fakeUseCase) MoveBlock(_ context.Context, _ string, pageType domain.PageType, _ string, direction blocks.Direction) (*editBlocks.Response, error) {
	f.gotPageType, f.gotDirection = pageType, direction
	return f.response(pageType)
}

func (f *fakeUseCase) ReorderBlocks(_ context.Context, _ string, pageType domain.PageType, from, to int) (*editBlocks.Response, error) {
	f.gotPageType, f.gotFrom, f.gotTo = pageType, from, to
	return f.response(pageType)
}

func (f *fakeUseCase) UpdateSettings(_ context.Context, _ string, pageType domain.PageType, _, _ string) (*editBlocks.Response, error) {
	f.gotPageType = pageType
	return f.response(pageType)
}

func newRouter(uc *fakeUseCase) *mux.Router {
	h := NewHandler(uc, logger.NewNop())
	r := mux.NewRouter()
	base := "/businesses/{businessId}/pages/{pageType}"
	r.HandleFunc(base+"/blocks", h.AddBlock).Methods(http.MethodPost)
	r.HandleFunc(base+"/blocks/reorder", h.ReorderBlocks).Methods(http.MethodPost)
	r.HandleFunc(base+"/blocks/{blockId}", h.UpdateBlock).Methods(http.MethodPatch)
	r.HandleFunc(base+"/blocks/{blockId}", h.RemoveBlock).Methods(http.MethodDelete)
	r.HandleFunc(base+"/blocks/{blockId}/move", h.MoveBlock).Methods(http.MethodPost)
	r.HandleFunc(base+"/settings", h.UpdateSettings).Methods(http.MethodPut)
	r.HandleFunc("/block-types", h.BlockTypes).Methods(http.MethodGet)
	return r
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestAddBlock(t *testing.T) {
	uc := &fakeUseCase{}
	rec := do(newRouter(uc), http.MethodPost, "/businesses/biz-1/pages/Shop/blocks", `{"type":"text"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, domain.PageTypeShop, uc.gotPageType)
	assert.Equal(t, domain.BlockTypeText, uc.gotBlockType)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.JSONEq(t, `{"id":"new","type":"text","title":"","content":"","align":""}`, string(body["block"]))
}

func TestAddBlock_BadRequests(t *testing.T) {
	r := newRouter(&fakeUseCase{})

	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPost, "/businesses/biz-1/pages/blog/blocks", `{"type":"text"}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPost, "/businesses/biz-1/pages/shop/blocks", `{}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPost, "/businesses/biz-1/pages/shop/blocks", `{`).Code)
}

func TestUpdateBlock_PassesPatch(t *testing.T) {
	uc := &fakeUseCase{}
	rec := do(newRouter(uc), http.MethodPatch, "/businesses/biz-1/pages/storefront/blocks/b1", `{"email":"a@b.test","isOpen247":true}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.Patch{"email": "a@b.test", "isOpen247": true}, uc.gotPatch)
}

func TestUpdateBlock_NullBody(t *testing.T) {
	rec := do(newRouter(&fakeUseCase{}), http.MethodPatch, "/businesses/biz-1/pages/storefront/blocks/b1", `null`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMoveAndReorder(t *testing.T) {
	uc := &fakeUseCase{}
	r := newRouter(uc)

	rec := do(r, http.MethodPost, "/businesses/biz-1/pages/storefront/blocks/b1/move", `{"direction":"up"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, blocks.DirectionUp, uc.gotDirection)

	rec = do(r, http.MethodPost, "/businesses/biz-1/pages/storefront/blocks/reorder", `{"fromIndex":0,"toIndex":2}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, uc.gotFrom)
	assert.Equal(t, 2, uc.gotTo)

	rec = do(r, http.MethodPost, "/businesses/biz-1/pages/storefront/blocks/reorder", `{"fromIndex":0}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "validation", err: editBlocks.ErrValidation, status: http.StatusBadRequest},
		{name: "business not found", err: editBlocks.ErrBusinessNotFound, status: http.StatusNotFound},
		{name: "block not found", err: editBlocks.ErrBlockNotFound, status: http.StatusNotFound},
		{name: "invalid stored profile", err: editBlocks.ErrInvalidProfile, status: http.StatusConflict},
		{name: "remote failure", err: editBlocks.ErrRemoteFailure, status: http.StatusServiceUnavailable},
		{name: "unexpected", err: errors.New("boom"), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(newRouter(&fakeUseCase{err: tt.err}), http.MethodDelete, "/businesses/biz-1/pages/storefront/blocks/b1", "")
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestBlockTypes(t *testing.T) {
	rec := do(newRouter(&fakeUseCase{}), http.MethodGet, "/block-types", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body BlockTypesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, blocks.SupportedTypes(), body.Types)
	assert.Contains(t, body.Types, domain.BlockTypeText)
}

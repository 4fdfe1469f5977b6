package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"inventory-api/internal/domain"
	"inventory-api/internal/service"
	httpez "inventory-api/internal/transport/http/ez"
)

type ItemHandler struct {
	items    *service.ItemService
	activity *service.ActivityService
}

func NewItemHandler(items *service.ItemService, activity *service.ActivityService) *ItemHandler {
	return &ItemHandler{items: items, activity: activity}
}

type createItemReq struct {
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	Stock       *float64 `json:"stock"`
}

type stockReq struct {
	Type     string  `json:"type"`
	Quantity float64 `json:"quantity"`
}

// Mount 鉴权分组：/items 下全部接口
func (h *ItemHandler) Mount(e httpez.EZ) {
	httpez.RegisterAction(e, httpez.Action[createItemReq, *domain.Item]{
		Method:  http.MethodPost,
		Path:    "/items",
		Binder:  httpez.BindJSON,
		Auth:    true,
		Status:  http.StatusCreated,
		Message: "Item created successfully",
		Handler: func(c *gin.Context, in *createItemReq) (*domain.Item, error) {
			return h.items.Create(c.Request.Context(), httpez.UserID(c), service.CreateItemInput{
				Name:        in.Name,
				Description: in.Description,
				Stock:       in.Stock,
			})
		},
	})

	httpez.RegisterAction(e, httpez.Action[struct{}, []domain.Item]{
		Method:  http.MethodGet,
		Path:    "/items",
		Binder:  httpez.BindNone,
		Auth:    true,
		Message: "Items fetched successfully",
		Handler: func(c *gin.Context, _ *struct{}) ([]domain.Item, error) {
			return h.items.List(c.Request.Context(), httpez.UserID(c))
		},
	})

	httpez.RegisterAction(e, httpez.Action[struct{}, *domain.Item]{
		Method:  http.MethodGet,
		Path:    "/items/:id",
		Binder:  httpez.BindNone,
		Auth:    true,
		Message: "Item fetched successfully",
		Handler: func(c *gin.Context, _ *struct{}) (*domain.Item, error) {
			return h.items.Get(c.Request.Context(), c.Param("id"), httpez.UserID(c))
		},
	})

	httpez.RegisterAction(e, httpez.Action[domain.ItemPatch, *domain.Item]{
		Method:  http.MethodPatch,
		Path:    "/items/:id",
		Binder:  httpez.BindJSON,
		Auth:    true,
		Message: "Item updated successfully",
		Handler: func(c *gin.Context, in *domain.ItemPatch) (*domain.Item, error) {
			return h.items.UpdateDetails(c.Request.Context(), c.Param("id"), httpez.UserID(c), *in)
		},
	})

	httpez.RegisterAction(e, httpez.Action[stockReq, *service.StockResult]{
		Method:  http.MethodPatch,
		Path:    "/items/:id/stock",
		Binder:  httpez.BindJSON,
		Auth:    true,
		Message: "Stock updated successfully",
		Handler: func(c *gin.Context, in *stockReq) (*service.StockResult, error) {
			return h.items.UpdateStock(c.Request.Context(), c.Param("id"), httpez.UserID(c), service.StockChange{
				Type:     in.Type,
				Quantity: in.Quantity,
			})
		},
	})

	httpez.RegisterAction(e, httpez.Action[struct{}, []domain.ActivityLog]{
		Method:  http.MethodGet,
		Path:    "/items/:id/activities",
		Binder:  httpez.BindNone,
		Auth:    true,
		Message: "Activity logs fetched successfully",
		Handler: func(c *gin.Context, _ *struct{}) ([]domain.ActivityLog, error) {
			return h.activity.ListForItem(c.Request.Context(), c.Param("id"), httpez.UserID(c))
		},
	})

	// 删除成功 data 为 null
	httpez.RegisterAction(e, httpez.Action[struct{}, any]{
		Method:  http.MethodDelete,
		Path:    "/items/:id",
		Binder:  httpez.BindNone,
		Auth:    true,
		Message: "Item deleted successfully",
		Handler: func(c *gin.Context, _ *struct{}) (any, error) {
			return nil, h.items.Delete(c.Request.Context(), c.Param("id"), httpez.UserID(c))
		},
	})
}

package handler

import "github.com/Shubham-3256/millets-cafe/internal/core/ports"

type orderItemRequest struct {
	MenuItemID string  `json:"menuItemId"`
	Name       string  `json:"name"  validate:"required"`
	Price      float64 `json:"price" validate:"gte=0"`
	Qty        int     `json:"qty"   validate:"gte=1"`
}

type placeOrderRequest struct {
	Items []orderItemRequest `json:"items" validate:"required,min=1,dive"`
}

type bookTableRequest struct {
	Name   string `json:"name"   validate:"required"`
	Date   string `json:"date"   validate:"required,datetime=2006-01-02"`
	Time   string `json:"time"   validate:"required,datetime=15:04"`
	Guests int    `json:"guests" validate:"gte=1,lte=20"`
}

type submitMessageRequest struct {
	Name    string `json:"name"    validate:"required"`
	Email   string `json:"email"   validate:"required,email"`
	Message string `json:"message" validate:"required,min=5"`
}

type setStatusRequest struct {
	Status string `json:"status"`
}

type menuItemRequest struct {
	Name        string  `json:"name"        validate:"required"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"       validate:"gt=0"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image"       validate:"omitempty,url"`
}

type menuUpdateRequest struct {
	Name        *string  `json:"name"        validate:"omitempty,min=1"`
	Category    *string  `json:"category"`
	Price       *float64 `json:"price"       validate:"omitempty,gt=0"`
	Description *string  `json:"description"`
	ImageURL    *string  `json:"image"       validate:"omitempty,url"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func toPlaceOrderInput(req placeOrderRequest, userID, key string) ports.PlaceOrderInput {
	items := make([]ports.OrderItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, ports.OrderItemInput{
			MenuItemID: it.MenuItemID,
			Name:       it.Name,
			Price:      it.Price,
			Qty:        it.Qty,
		})
	}
	return ports.PlaceOrderInput{UserID: userID, Items: items, IdempotencyKey: key}
}

func toBookTableInput(req bookTableRequest, userID, key string) ports.BookTableInput {
	return ports.BookTableInput{
		UserID:         userID,
		Name:           req.Name,
		Date:           req.Date,
		Time:           req.Time,
		Guests:         req.Guests,
		IdempotencyKey: key,
	}
}

func toMenuItemInput(req menuItemRequest) ports.MenuItemInput {
	return ports.MenuItemInput{
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}
}

func toMenuUpdate(req menuUpdateRequest) ports.MenuUpdate {
	return ports.MenuUpdate{
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}
}

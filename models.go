// models.go

package main

type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Price       int    `json:"price"`
	Image       string `json:"image"`
	Description string `json:"description"`
	Visible     *bool  `json:"visible,omitempty"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
}

type CreateProductRequest struct {
	Name        string `json:"name"`
	Price       int    `json:"price"`
	Image       string `json:"image"`
	Description string `json:"description"`
	Visible     *bool  `json:"visible"`
}

// UpdateProductRequest carries a partial edit; nil fields are left untouched.
type UpdateProductRequest struct {
	Name        *string `json:"name"`
	Price       *int    `json:"price"`
	Image       *string `json:"image"`
	Description *string `json:"description"`
	Visible     *bool   `json:"visible"`
}

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

var validOrderStatuses = map[OrderStatus]struct{}{
	OrderStatusPending:   {},
	OrderStatusCompleted: {},
	OrderStatusCancelled: {},
}

func ToOrderStatus(s string) (OrderStatus, error) {
	status := OrderStatus(s)
	if _, ok := validOrderStatuses[status]; ok {
		return status, nil
	}
	return "", ErrInvalidStatus
}

type Order struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Phone        string      `json:"phone"`
	Address      string      `json:"address"`
	ProductID    string      `json:"productId"`
	ProductName  string      `json:"productName"`
	ProductPrice int         `json:"productPrice"`
	Status       OrderStatus `json:"status"`
	CreatedAt    string      `json:"createdAt"`
	UpdatedAt    string      `json:"updatedAt,omitempty"`
}

type CreateOrderRequest struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	ProductID    string `json:"productId"`
	ProductName  string `json:"productName"`
	ProductPrice int    `json:"productPrice"`
}

type UpdateOrderRequest struct {
	Name         *string `json:"name"`
	Phone        *string `json:"phone"`
	Address      *string `json:"address"`
	ProductID    *string `json:"productId"`
	ProductName  *string `json:"productName"`
	ProductPrice *int    `json:"productPrice"`
	Status       *string `json:"status"`
}

type Stats struct {
	TotalProducts   int `json:"totalProducts"`
	TotalOrders     int `json:"totalOrders"`
	PendingOrders   int `json:"pendingOrders"`
	CompletedOrders int `json:"completedOrders"`
}

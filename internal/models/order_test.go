package models

import "testing"

func TestOrderCreateRequest_Validate(t *testing.T) {
	validItems := []OrderItem{{ProductID: 1, Quantity: 2, Price: 79990}}

	tests := []struct {
		name    string
		req     OrderCreateRequest
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid request",
			req:     OrderCreateRequest{Phone: "+79211396943", Items: validItems, DiscountPercent: 10},
			wantErr: false,
		},
		{
			name:    "missing phone",
			req:     OrderCreateRequest{Items: validItems},
			wantErr: true,
			errMsg:  "phone is required",
		},
		{
			name:    "empty items",
			req:     OrderCreateRequest{Phone: "+79211396943"},
			wantErr: true,
			errMsg:  "order must contain at least one item",
		},
		{
			name: "zero quantity item",
			req: OrderCreateRequest{
				Phone: "+79211396943",
				Items: []OrderItem{{ProductID: 1, Quantity: 0, Price: 100}},
			},
			wantErr: true,
			errMsg:  "item quantity must be positive",
		},
		{
			name: "negative price item",
			req: OrderCreateRequest{
				Phone: "+79211396943",
				Items: []OrderItem{{ProductID: 1, Quantity: 1, Price: -5}},
			},
			wantErr: true,
			errMsg:  "item price cannot be negative",
		},
		{
			name:    "discount above top rate",
			req:     OrderCreateRequest{Phone: "+79211396943", Items: validItems, DiscountPercent: 20},
			wantErr: true,
			errMsg:  "discount percent out of range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr && err.Error() != tt.errMsg {
				t.Errorf("Validate() error = %v, want %v", err.Error(), tt.errMsg)
			}
		})
	}
}

func TestNewOrderItems(t *testing.T) {
	cart := &Cart{}
	cart.AddProduct(Product{ID: 1, Name: "iPhone 15", Condition: ConditionNew, Price: 79990, Stock: 10})
	cart.UpdateQuantity(1, 2)
	cart.AddProduct(Product{ID: 7, Name: "iPad Air", Condition: ConditionUsed, Price: 45000, Stock: 3})

	items := NewOrderItems(cart)

	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].ProductID != 1 || items[0].Quantity != 2 || items[0].Price != 79990 {
		t.Errorf("unexpected first item: %+v", items[0])
	}
	if items[1].ProductID != 7 || items[1].Quantity != 1 || items[1].Price != 45000 {
		t.Errorf("unexpected second item: %+v", items[1])
	}
}

func TestOrder_Validate(t *testing.T) {
	tests := []struct {
		name    string
		order   Order
		wantErr bool
	}{
		{
			name:    "valid order",
			order:   Order{ID: 1, CustomerPhone: "+79211396943", TotalAmount: 9000, Status: OrderPending},
			wantErr: false,
		},
		{
			name:    "missing phone",
			order:   Order{ID: 2, TotalAmount: 9000, Status: OrderPending},
			wantErr: true,
		},
		{
			name:    "negative total",
			order:   Order{ID: 3, CustomerPhone: "+79211396943", TotalAmount: -1, Status: OrderPending},
			wantErr: true,
		},
		{
			name:    "unknown status",
			order:   Order{ID: 4, CustomerPhone: "+79211396943", TotalAmount: 100, Status: "shipped"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.order.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Order.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestOrder_GetStatusDisplayName(t *testing.T) {
	tests := []struct {
		status OrderStatus
		want   string
	}{
		{OrderPending, "Ожидает"},
		{OrderConfirmed, "Подтвержден"},
		{OrderCompleted, "Выполнен"},
		{OrderCancelled, "Отменен"},
		{"unknown", "unknown"},
	}

	for _, tt := range tests {
		o := Order{Status: tt.status}
		if got := o.GetStatusDisplayName(); got != tt.want {
			t.Errorf("GetStatusDisplayName() for %q = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestOrder_CreatedTime(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		wantOK bool
	}{
		{name: "RFC3339", value: "2024-06-01T12:30:00Z", wantOK: true},
		{name: "python isoformat with microseconds", value: "2024-06-01T12:30:00.123456", wantOK: true},
		{name: "python isoformat without fraction", value: "2024-06-01T12:30:00", wantOK: true},
		{name: "empty", value: "", wantOK: false},
		{name: "garbage", value: "yesterday", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := Order{CreatedAt: tt.value}
			if _, ok := o.CreatedTime(); ok != tt.wantOK {
				t.Errorf("CreatedTime() ok = %v, want %v", ok, tt.wantOK)
			}
		})
	}
}

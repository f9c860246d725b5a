package models

import "testing"

func TestProduct_Validate(t *testing.T) {
	tests := []struct {
		name    string
		product Product
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid new product",
			product: Product{
				ID: 1, Name: "iPhone 15", Category: "iPhone",
				Condition: ConditionNew, Price: 79990, Stock: 5,
			},
			wantErr: false,
		},
		{
			name: "valid used product",
			product: Product{
				ID: 2, Name: "MacBook Pro 14", Category: "Mac",
				Condition: ConditionUsed, Price: 129990, Stock: 1,
			},
			wantErr: false,
		},
		{
			name: "missing name",
			product: Product{
				ID: 3, Condition: ConditionNew, Price: 100, Stock: 1,
			},
			wantErr: true,
			errMsg:  "product name is required",
		},
		{
			name: "negative price",
			product: Product{
				ID: 4, Name: "AirPods", Condition: ConditionNew, Price: -1, Stock: 1,
			},
			wantErr: true,
			errMsg:  "product price cannot be negative",
		},
		{
			name: "negative stock",
			product: Product{
				ID: 5, Name: "AirPods", Condition: ConditionNew, Price: 100, Stock: -1,
			},
			wantErr: true,
			errMsg:  "product stock cannot be negative",
		},
		{
			name: "invalid condition",
			product: Product{
				ID: 6, Name: "AirPods", Condition: "refurbished", Price: 100, Stock: 1,
			},
			wantErr: true,
			errMsg:  "invalid product condition",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.product.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Product.Validate() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr && err.Error() != tt.errMsg {
				t.Errorf("Product.Validate() error = %v, want %v", err.Error(), tt.errMsg)
			}
		})
	}
}

func TestProduct_StockHelpers(t *testing.T) {
	inStock := Product{Stock: 10}
	lowStock := Product{Stock: 2}
	outOfStock := Product{Stock: 0}

	if !inStock.IsAvailable() || inStock.IsLowStock() {
		t.Error("product with stock 10 should be available and not low")
	}
	if !lowStock.IsAvailable() || !lowStock.IsLowStock() {
		t.Error("product with stock 2 should be available and low")
	}
	if outOfStock.IsAvailable() || outOfStock.IsLowStock() {
		t.Error("product with stock 0 should be neither available nor low")
	}
}

func TestFilterByCondition(t *testing.T) {
	products := []Product{
		{ID: 1, Condition: ConditionNew},
		{ID: 2, Condition: ConditionUsed},
		{ID: 3, Condition: ConditionNew},
	}

	tests := []struct {
		name      string
		condition string
		wantIDs   []int
	}{
		{name: "all keeps everything", condition: "all", wantIDs: []int{1, 2, 3}},
		{name: "empty keeps everything", condition: "", wantIDs: []int{1, 2, 3}},
		{name: "new only", condition: "new", wantIDs: []int{1, 3}},
		{name: "used only", condition: "used", wantIDs: []int{2}},
		{name: "unknown matches nothing", condition: "broken", wantIDs: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterByCondition(products, tt.condition)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("got %d products, want %d", len(got), len(tt.wantIDs))
			}
			for i, p := range got {
				if p.ID != tt.wantIDs[i] {
					t.Errorf("product %d: ID = %d, want %d", i, p.ID, tt.wantIDs[i])
				}
			}
		})
	}
}

package dto

// CreateSalesTransactionDTO уходит на сервер multipart-формой,
// ключи — канонические, с подчёркиваниями.
type CreateSalesTransactionDTO struct {
	MenuItemID      int64  `form:"menu_item_id" validate:"required,gt=0"`
	Quantity        int    `form:"quantity" validate:"required,gte=1"`
	TransactionDate string `form:"transaction_date" validate:"required"`
}

package sales

import "github.com/shopspring/decimal"

// LineTotal total de una línea de ticket: cantidad × precio unitario.
func LineTotal(quantity int, unitPrice decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

// RecomputeLine aplica un cambio parcial de cantidad y/o precio sobre los valores actuales.
// Los operandos nil conservan el valor almacenado. changed es false si no hubo cambio de operandos,
// en cuyo caso el total almacenado no debe tocarse.
func RecomputeLine(curQty int, curPrice decimal.Decimal, newQty *int, newPrice *decimal.Decimal) (qty int, price, total decimal.Decimal, changed bool) {
	qty, price = curQty, curPrice
	if newQty == nil && newPrice == nil {
		return qty, price, LineTotal(qty, price), false
	}
	if newQty != nil {
		qty = *newQty
	}
	if newPrice != nil {
		price = *newPrice
	}
	return qty, price, LineTotal(qty, price), true
}

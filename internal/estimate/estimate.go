// Package estimate переводит количество товаров во время сборки.
package estimate

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// PerItem - время обработки одной единицы товара
const PerItem = 5 * time.Minute

var (
	perItemMinutes = decimal.NewFromInt(int64(PerItem / time.Minute))
	minutesPerHour = decimal.NewFromInt(60)
	minutesPerDay  = decimal.NewFromInt(24 * 60)
)

// Minutes - полное время обработки в целых минутах, остаток меньше минуты отбрасывается.
// Результат не ограничен диапазоном int64.
func Minutes(items decimal.Decimal) decimal.Decimal {
	return items.Mul(perItemMinutes).Floor()
}

// Format - "<days> days <hours> hours <minutes> minutes", все три части выводятся всегда
func Format(items decimal.Decimal) string {
	days, rest := Minutes(items).QuoRem(minutesPerDay, 0)
	hours, minutes := rest.QuoRem(minutesPerHour, 0)

	return fmt.Sprintf("%s days %s hours %s minutes", days, hours, minutes)
}

package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// AccountType clasifica una cuenta del libro (debe coincidir con el CHECK de la tabla accounts).
type AccountType string

const (
	AccountTypeCustomer AccountType = "CUSTOMER"
	AccountTypeSupplier AccountType = "SUPPLIER"
	AccountTypeExpense  AccountType = "EXPENSE"
	AccountTypeAsset    AccountType = "ASSET"
)

// AccountTypes lista los tipos válidos en el orden en que se documentan.
var AccountTypes = []AccountType{
	AccountTypeCustomer,
	AccountTypeSupplier,
	AccountTypeExpense,
	AccountTypeAsset,
}

// ParseAccountType normaliza s (sin distinguir mayúsculas) y reporta si es un tipo válido.
func ParseAccountType(s string) (AccountType, bool) {
	t := AccountType(strings.ToUpper(strings.TrimSpace(s)))
	for _, valid := range AccountTypes {
		if t == valid {
			return t, true
		}
	}
	return "", false
}

// MaxOpeningBalance límite exclusivo del saldo inicial en valor absoluto (columna NUMERIC(18,2)).
var MaxOpeningBalance = decimal.New(1, 16)

// ValidOpeningBalance informa si d, redondeado a 2 decimales, cabe en la columna opening_balance.
func ValidOpeningBalance(d decimal.Decimal) bool {
	return d.Round(2).Abs().LessThan(MaxOpeningBalance)
}

// Account representa una cuenta contable (cliente, proveedor, gasto o activo) de un único negocio.
// No existen operaciones de actualización ni borrado de cuentas.
type Account struct {
	ID             int64
	BusinessID     int64
	Name           string
	Address        string
	Phone          string
	Type           AccountType
	OpeningBalance decimal.Decimal
	CreatedAt      time.Time
}

// Package model defines database models for persistence layer.
package model

// All returns every model managed by auto-migration, parents first.
func All() []any {
	return []any{
		&UserModel{},
		&FinanceModel{},
		&AlertModel{},
		&ChatMessageModel{},
	}
}

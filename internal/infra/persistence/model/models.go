// Package model holds the GORM persistence models.
package model

// All returns every persistence model, in dependency order, for schema migration and code generation.
func All() []any {
	return []any{
		&CropModel{},
		&FarmModel{},
		&PlantedCropModel{},
		&ProductModel{},
		&OrderModel{},
		&FarmOrderModel{},
		&OrderItemModel{},
	}
}

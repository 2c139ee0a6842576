package main

import (
	"harvest/internal/infra/persistence/model"

	"gorm.io/gen"
)

// Writes typed query builders for crops, farms, planted crops, products and orders.
func main() {
	g := gen.NewGenerator(gen.Config{
		OutPath:       "./internal/infra/persistence/postgres/query",
		Mode:          gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable: true,
	})

	g.ApplyBasic(model.All()...)
	g.Execute()
}

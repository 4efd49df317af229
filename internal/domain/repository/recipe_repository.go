package repository

import "github.com/jhoicas/Costeo-api/internal/domain/entity"

// RecipeRepository define el puerto para resolver recetas.
type RecipeRepository interface {
	// ListByProductAndSize devuelve las líneas ordenadas de la receta para el
	// par exacto (producto, tamaño). Lista vacía = no existe receta; el caller
	// decide si eso es error (venta) o esperado (merma de insumo crudo).
	ListByProductAndSize(finishedProductID, sizeVariant string) ([]*entity.RecipeLine, error)
}

package animals

import (
	"context"
	"strings"
)

// Repository es el registro de animales: dueño de los registros y de su índice por nombre.
// Los nombres se comparan recortados y sin distinguir mayúsculas.
type Repository interface {
	Add(ctx context.Context, a Animal) error
	FindByName(ctx context.Context, name string) (Animal, error)
	Exists(ctx context.Context, name string) (bool, error)
	// List devuelve perros y luego monos, cada grupo en orden de inserción.
	List(ctx context.Context) ([]Animal, error)
	// Update aplica fn de forma atómica; si fn falla no se guarda nada.
	Update(ctx context.Context, name string, fn func(a *Animal) error) (Animal, error)
	Count(ctx context.Context) (int, error)
}

// NameKey es la clave del índice por nombre.
func NameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

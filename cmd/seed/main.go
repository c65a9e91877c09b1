// seed carga productos desde archivos JSON y los inserta en lote (todo o nada).
//
// Uso: go run ./cmd/seed [ruta/carpeta-json]
// Por defecto busca archivos *.json en ./data. Cada archivo puede contener un
// producto o un arreglo de productos con la forma de CreateProductRequest.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/tu-usuario/tienda-api/internal/application/dto"
	"github.com/tu-usuario/tienda-api/internal/application/usecase"
	"github.com/tu-usuario/tienda-api/internal/domain/catalog"
	"github.com/tu-usuario/tienda-api/internal/domain/entity"
	inframongo "github.com/tu-usuario/tienda-api/internal/infrastructure/mongo"
	"github.com/tu-usuario/tienda-api/pkg/config"
)

func main() {
	dir := "./data"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	productos, err := cargarCarpeta(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar JSON: %v\n", err)
		os.Exit(1)
	}
	if len(productos) == 0 {
		fmt.Fprintln(os.Stderr, "no hay productos que insertar")
		os.Exit(1)
	}

	// Orden por valor numérico del ID (el string "10.23" ordena como 10.23,
	// no lexicográficamente) para una carga determinista.
	sort.SliceStable(productos, func(i, j int) bool {
		a, errA := entity.ParseProductID(productos[i].ID)
		b, errB := entity.ParseProductID(productos[j].ID)
		if errA != nil || errB != nil {
			return productos[i].ID < productos[j].ID
		}
		return a.LessThan(b)
	})

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, db, err := inframongo.Connect(ctx, cfg.Mongo)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conectar a MongoDB: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	uc := usecase.NewProductUseCase(inframongo.NewProductRepository(db))
	admin := &catalog.Caller{ID: "seed", Role: entity.RoleAdmin}
	out, err := uc.CreateMany(ctx, admin, productos)
	if err != nil {
		fmt.Fprintf(os.Stderr, "insertar lote: %v (ningún producto quedó persistido)\n", err)
		os.Exit(1)
	}
	fmt.Printf("insertados %d productos\n", len(out))
}

// cargarCarpeta lee todos los *.json de la carpeta y combina su contenido:
// cada archivo puede ser un objeto o un arreglo.
func cargarCarpeta(dir string) ([]dto.CreateProductRequest, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var productos []dto.CreateProductRequest
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		raw, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", e.Name(), err)
		}
		var lista []dto.CreateProductRequest
		if err := json.Unmarshal(raw, &lista); err == nil {
			productos = append(productos, lista...)
			continue
		}
		var uno dto.CreateProductRequest
		if err := json.Unmarshal(raw, &uno); err != nil {
			return nil, fmt.Errorf("%s: %w", e.Name(), err)
		}
		productos = append(productos, uno)
	}
	return productos, nil
}

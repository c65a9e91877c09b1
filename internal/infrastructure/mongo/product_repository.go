package mongo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tu-usuario/tienda-api/internal/domain/catalog"
	"github.com/tu-usuario/tienda-api/internal/domain/entity"
	"github.com/tu-usuario/tienda-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// productDoc forma persistida de un producto. El _id es el ID de negocio
// (string numérico-ordenable); idNum guarda su valor numérico para ordenar
// como número y desempatar la paginación de forma estable.
type productDoc struct {
	ID          string    `bson:"_id"`
	IDNum       float64   `bson:"id_num"`
	Descripcion string    `bson:"descripcion"`
	Cantidad    int       `bson:"cantidad"`
	Precio      float64   `bson:"precio"`
	Color       string    `bson:"color"`
	Talla       string    `bson:"talla"`
	Imagen      string    `bson:"imagen"`
	Categoria   string    `bson:"categoria"`
	Estado      string    `bson:"estado"`
	Vendedor    string    `bson:"vendedor"`
	CreatedAt   time.Time `bson:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at"`
}

// ProductRepo implementación del puerto ProductRepository sobre MongoDB.
type ProductRepo struct {
	col *mongo.Collection
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(db *mongo.Database) *ProductRepo {
	return &ProductRepo{col: db.Collection(colProducts)}
}

// Create persiste un producto nuevo. Un _id repetido devuelve ErrDuplicate.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	doc, err := toDoc(p)
	if err != nil {
		return err
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return mapErr("insert product", err)
	}
	return nil
}

// CreateMany inserta el lote dentro de una transacción: cualquier fallo
// (duplicado, validación del servidor, pérdida de conexión) aborta y ningún
// documento del lote queda persistido.
func (r *ProductRepo) CreateMany(ctx context.Context, ps []*entity.Product) error {
	docs := make([]interface{}, 0, len(ps))
	for _, p := range ps {
		doc, err := toDoc(p)
		if err != nil {
			return err
		}
		docs = append(docs, doc)
	}

	sess, err := r.col.Database().Client().StartSession()
	if err != nil {
		return mapErr("start session", err)
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return r.col.InsertMany(sc, docs)
	})
	if err != nil {
		return mapErr("insert batch", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. nil sin error = no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	var doc productDoc
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, mapErr("get product", err)
	}
	return fromDoc(&doc), nil
}

// Update reemplaza los campos mutables; el _id nunca cambia.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	update := bson.M{"$set": bson.M{
		"descripcion": p.Descripcion,
		"cantidad":    p.Cantidad,
		"precio":      p.Precio,
		"color":       p.Color,
		"talla":       p.Talla,
		"imagen":      p.Imagen,
		"categoria":   p.Categoria,
		"estado":      p.Estado,
		"updated_at":  p.UpdatedAt,
	}}
	if _, err := r.col.UpdateByID(ctx, p.ID, update); err != nil {
		return mapErr("update product", err)
	}
	return nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.col.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return mapErr("delete product", err)
	}
	return nil
}

// Search ejecuta el predicado como un pipeline con $facet: la página y el
// total salen de la misma ejecución, sin ventana para que una escritura
// concurrente los desalinee.
func (r *ProductRepo) Search(ctx context.Context, crit catalog.Criteria, page catalog.PageRequest) ([]*entity.Product, int64, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: buildMatch(crit)}},
	}
	if crit.Orden == catalog.SortRelevance {
		pipeline = append(pipeline,
			bson.D{{Key: "$addFields", Value: bson.M{"score": bson.M{"$meta": "textScore"}}}},
			bson.D{{Key: "$sort", Value: bson.D{{Key: "score", Value: -1}, {Key: "id_num", Value: -1}}}},
		)
	} else {
		dir := -1
		if crit.Orden == catalog.SortOldest {
			dir = 1
		}
		pipeline = append(pipeline,
			bson.D{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: dir}, {Key: "id_num", Value: dir}}}},
		)
	}
	pipeline = append(pipeline, bson.D{{Key: "$facet", Value: bson.M{
		"items": []bson.M{
			{"$skip": page.Offset()},
			{"$limit": page.Limit},
		},
		"total": []bson.M{
			{"$count": "count"},
		},
	}}})

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, 0, mapErr("search products", err)
	}
	defer cur.Close(ctx)

	var out []struct {
		Items []productDoc `bson:"items"`
		Total []struct {
			Count int64 `bson:"count"`
		} `bson:"total"`
	}
	if err := cur.All(ctx, &out); err != nil {
		return nil, 0, mapErr("decode search", err)
	}
	if len(out) == 0 {
		return nil, 0, nil
	}
	items := make([]*entity.Product, 0, len(out[0].Items))
	for i := range out[0].Items {
		items = append(items, fromDoc(&out[0].Items[i]))
	}
	var total int64
	if len(out[0].Total) > 0 {
		total = out[0].Total[0].Count
	}
	return items, total, nil
}

// CountByCategoriaEstado agrupa las coincidencias del predicado por
// (categoría, estado). La normalización de nulos y el rollup los hace el dominio.
func (r *ProductRepo) CountByCategoriaEstado(ctx context.Context, crit catalog.Criteria) ([]catalog.GroupCount, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: buildMatch(crit)}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id": bson.M{
				"categoria": bson.M{"$ifNull": []interface{}{"$categoria", ""}},
				"estado":    bson.M{"$ifNull": []interface{}{"$estado", ""}},
			},
			"count": bson.M{"$sum": 1},
		}}},
	}
	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, mapErr("count by categoria/estado", err)
	}
	defer cur.Close(ctx)

	var rows []struct {
		ID struct {
			Categoria string `bson:"categoria"`
			Estado    string `bson:"estado"`
		} `bson:"_id"`
		Count int64 `bson:"count"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, mapErr("decode counts", err)
	}
	groups := make([]catalog.GroupCount, 0, len(rows))
	for _, row := range rows {
		groups = append(groups, catalog.GroupCount{
			Categoria: row.ID.Categoria,
			Estado:    row.ID.Estado,
			Count:     row.Count,
		})
	}
	return groups, nil
}

// buildMatch traduce el predicado neutral a BSON. Cada término de búsqueda va
// entre comillas como frase: así $text exige que coincidan todos (AND) en vez
// de cualquiera (OR, su comportamiento por defecto).
func buildMatch(crit catalog.Criteria) bson.M {
	match := bson.M{}
	if crit.ConBusqueda() {
		frases := make([]string, 0, len(crit.Terminos))
		for _, t := range crit.Terminos {
			frases = append(frases, fmt.Sprintf("%q", t))
		}
		match["$text"] = bson.M{"$search": strings.Join(frases, " ")}
	}
	if crit.Categoria != nil {
		match["categoria"] = *crit.Categoria
	}
	if crit.Vendedor != nil {
		match["vendedor"] = *crit.Vendedor
	}
	if crit.MinPrecio != nil || crit.MaxPrecio != nil {
		precio := bson.M{}
		if crit.MinPrecio != nil {
			precio["$gte"] = *crit.MinPrecio
		}
		if crit.MaxPrecio != nil {
			precio["$lte"] = *crit.MaxPrecio
		}
		match["precio"] = precio
	}
	if !crit.Estados.SinRestriccion() {
		if len(crit.Estados.Estados) == 1 {
			match["estado"] = crit.Estados.Estados[0]
		} else {
			match["estado"] = bson.M{"$in": crit.Estados.Estados}
		}
	}
	return match
}

func toDoc(p *entity.Product) (*productDoc, error) {
	key, err := entity.ParseProductID(p.ID)
	if err != nil {
		return nil, err
	}
	num, _ := key.Float64()
	return &productDoc{
		ID:          p.ID,
		IDNum:       num,
		Descripcion: p.Descripcion,
		Cantidad:    p.Cantidad,
		Precio:      p.Precio,
		Color:       p.Color,
		Talla:       p.Talla,
		Imagen:      p.Imagen,
		Categoria:   p.Categoria,
		Estado:      p.Estado,
		Vendedor:    p.Vendedor,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}, nil
}

func fromDoc(d *productDoc) *entity.Product {
	return &entity.Product{
		ID:          d.ID,
		Descripcion: d.Descripcion,
		Cantidad:    d.Cantidad,
		Precio:      d.Precio,
		Color:       d.Color,
		Talla:       d.Talla,
		Imagen:      d.Imagen,
		Categoria:   d.Categoria,
		Estado:      d.Estado,
		Vendedor:    d.Vendedor,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/tu-usuario/tienda-api/pkg/config"
)

// Connect abre el cliente de MongoDB con límites de pool y verifica la
// conexión con un ping. El reintento de escrituras lo maneja el driver.
func Connect(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, *mongo.Database, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetMaxPoolSize(25).
		SetMinPoolSize(2).
		SetMaxConnIdleTime(30 * time.Minute).
		SetRetryWrites(true)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("conectar a MongoDB: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("ping MongoDB: %w", err)
	}
	return client, client.Database(cfg.Database), nil
}

// EnsureIndexes crea los índices que el catálogo necesita:
//   - texto sobre descripcion/categoria/color para la búsqueda por relevancia
//   - categoria+estado para listados filtrados y estadísticas
//   - email único en users
//
// El _id de products es el ID de negocio, así que su unicidad ya está garantizada.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	products := db.Collection(colProducts)
	_, err := products.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "descripcion", Value: "text"},
				{Key: "categoria", Value: "text"},
				{Key: "color", Value: "text"},
			},
			Options: options.Index().SetName("busqueda_texto").SetDefaultLanguage("spanish"),
		},
		{
			Keys:    bson.D{{Key: "categoria", Value: 1}, {Key: "estado", Value: 1}},
			Options: options.Index().SetName("categoria_estado"),
		},
		{
			Keys:    bson.D{{Key: "vendedor", Value: 1}},
			Options: options.Index().SetName("vendedor"),
		},
	})
	if err != nil {
		return fmt.Errorf("índices de products: %w", err)
	}

	users := db.Collection(colUsers)
	_, err = users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetName("email_unico").SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("índices de users: %w", err)
	}
	return nil
}

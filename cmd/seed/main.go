package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os/signal"
	"syscall"
	"time"

	"github.com/SergeyBogomolovv/ecommerce-service/internal/config"
	"github.com/SergeyBogomolovv/ecommerce-service/internal/entities"
	"github.com/SergeyBogomolovv/ecommerce-service/internal/mongodb"
	"github.com/SergeyBogomolovv/ecommerce-service/internal/repo"

	"golang.org/x/sync/errgroup"
)

var names = []string{
	"Keyboard", "Mouse", "Monitor", "Headphones", "Webcam",
	"USB Hub", "Desk Lamp", "Laptop Stand", "Microphone", "Dock Station",
}

func main() {
	var (
		mongoURI string
		database string
		count    int
		workers  int
	)

	flag.StringVar(&mongoURI, "mongo-uri", "mongodb://localhost:27017", "MongoDB connection URI")
	flag.StringVar(&database, "db", "ecommerce", "database name")
	flag.IntVar(&count, "count", 20, "number of products to seed")
	flag.IntVar(&workers, "workers", 4, "number of concurrent inserts")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if err := run(ctx, mongoURI, database, count, workers); err != nil {
		log.Fatalf("seed failed: %v", err)
	}
	log.Printf("seeded %d products", count)
}

func run(ctx context.Context, mongoURI, database string, count, workers int) error {
	db, err := mongodb.New(ctx, config.Mongo{
		URI:            mongoURI,
		Database:       database,
		ConnectTimeout: 10 * time.Second,
	})
	if err != nil {
		return err
	}
	defer db.Client().Disconnect(context.Background())

	products := repo.NewProductRepo(db)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := 0; i < count; i++ {
		product := randomProduct(i)
		g.Go(func() error {
			created, err := products.Insert(ctx, product)
			if err != nil {
				return err
			}
			log.Printf("created product %s (%s)", created.ID, created.Name)
			return nil
		})
	}

	return g.Wait()
}

func randomProduct(n int) entities.Product {
	return entities.Product{
		Name:     fmt.Sprintf("%s #%d", names[rand.Intn(len(names))], n+1),
		Price:    float64(rand.Intn(20000)) / 100,
		Quantity: rand.Intn(50) + 1,
	}
}

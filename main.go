package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Equatrans/MicroGreen-Labs-App/auth"
	"github.com/Equatrans/MicroGreen-Labs-App/cart"
	"github.com/Equatrans/MicroGreen-Labs-App/imagegen"
	"github.com/Equatrans/MicroGreen-Labs-App/routes"
	"github.com/Equatrans/MicroGreen-Labs-App/store"
)

func main() {
	log.Println("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()

	// Init DB + record store
	db := initDatabase()
	s, err := store.New(db, storeQuota())
	if err != nil {
		log.Fatalf("❌ Store init failed: %v", err)
	}

	// Warm the bootstrap records so the first request never pays for seeding
	log.Printf("📦 Catalog ready: %d products, %d equipment, %d reviews",
		len(s.Products()), len(s.Equipment()), len(s.Reviews()))

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	carts := cart.NewRegistry()
	routes.SetupRoutes(r, s, carts, imagegen.FromEnv(), auth.PolicyFromEnv())

	// Start snapshot routine at 2 AM daily, keep 4 days of snapshots
	snapshotDir := os.Getenv("SNAPSHOT_DIR")
	if snapshotDir == "" {
		snapshotDir = "backup/store"
	}
	go startDailySnapshotAtFixedTime(s, snapshotDir, 4*24*time.Hour, 2, 0)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initDatabase sets up the GORM DB connection. Postgres when configured,
// otherwise an embedded sqlite file for single-box deployments.
func initDatabase() *gorm.DB {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
		if err != nil {
			log.Fatalf("❌ DB connection failed: %v", err)
		}
		return db
	}

	if host := os.Getenv("DB_HOST"); host != "" {
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			host, os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_NAME"), os.Getenv("DB_PORT"),
		)
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			log.Fatalf("❌ Failed to connect DB: %v", err)
		}
		return db
	}

	path := os.Getenv("STORE_PATH")
	if path == "" {
		path = "microgreen.db"
	}
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Failed to open local store %s: %v", path, err)
	}
	return db
}

// storeQuota reads the record store byte budget, defaulting to 5 MiB.
func storeQuota() int64 {
	raw := os.Getenv("STORE_QUOTA_BYTES")
	if raw == "" {
		return store.DefaultQuota
	}
	quota, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || quota <= 0 {
		log.Printf("⚠️ Invalid STORE_QUOTA_BYTES %q, using default", raw)
		return store.DefaultQuota
	}
	return quota
}

// startDailySnapshotAtFixedTime dumps the record store daily at a fixed
// hour and removes old snapshots.
func startDailySnapshotAtFixedTime(s *store.Store, snapshotDir string, retention time.Duration, hour, min int) {
	for {
		now := time.Now()
		next := time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, now.Location())
		if !next.After(now) {
			next = next.Add(24 * time.Hour)
		}
		sleepDuration := next.Sub(now)
		log.Printf("⏳ Next store snapshot scheduled at: %s", next.Format("2006-01-02 15:04:05"))
		time.Sleep(sleepDuration)

		timestamp := time.Now().Format("2006-01-02_15-04-05")
		destDir := filepath.Join(snapshotDir, timestamp)

		if err := s.Snapshot(destDir); err != nil {
			log.Printf("❌ Failed to snapshot store: %v", err)
		} else {
			log.Printf("✅ Store snapshot written to %s", destDir)
		}

		cleanupOldSnapshots(snapshotDir, retention)
	}
}

// cleanupOldSnapshots removes snapshot folders older than retention duration
func cleanupOldSnapshots(snapshotDir string, retention time.Duration) {
	entries, err := os.ReadDir(snapshotDir)
	if err != nil {
		log.Printf("❌ Failed to read snapshot directory: %v", err)
		return
	}

	cutoff := time.Now().Add(-retention)

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		folderPath := filepath.Join(snapshotDir, entry.Name())
		info, err := os.Stat(folderPath)
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.RemoveAll(folderPath); err != nil {
				log.Printf("❌ Failed to remove old snapshot %s: %v", folderPath, err)
			} else {
				log.Printf("🗑️ Removed old snapshot: %s", folderPath)
			}
		}
	}
}

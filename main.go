package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/crebase/listing-finder/pkg/common"
	"github.com/crebase/listing-finder/pkg/server"
	"github.com/crebase/listing-finder/pkg/storage"
	"github.com/crebase/listing-finder/pkg/tracking"
)

var listenAddress = ":8080"

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("no .env loaded: %v", err)
	}

	dataPath := os.Getenv("DATA_PATH")
	if dataPath == "" {
		dataPath = "data"
	}
	redisUrl := os.Getenv("REDIS_URL")
	redisPassword := os.Getenv("REDIS_PASSWORD")
	rabbitUrl := os.Getenv("RABBIT_URL")
	if addr := os.Getenv("LISTEN_ADDRESS"); addr != "" {
		listenAddress = addr
	}

	db := storage.NewDiskStorage(dataPath)
	listings, err := db.LoadListings()
	if err != nil {
		log.Printf("starting with an empty listing set: %v", err)
	}

	ws := &server.WebServer{Listings: listings}

	if redisUrl != "" {
		ws.Redis = redis.NewClient(&redis.Options{
			Addr:     redisUrl,
			Password: redisPassword,
		})
		log.Printf("saved filters backed by redis at %s", redisUrl)
	}

	if rabbitUrl != "" {
		trk, err := tracking.NewRabbitTracking(rabbitUrl)
		if err != nil {
			log.Printf("tracking disabled: %v", err)
		} else {
			ws.Tracking = trk
			defer trk.Close()
		}
	}

	mux := ws.CreateHandler()
	mux.Handle("/metrics", promhttp.Handler())

	timeouts := common.LoadTimeoutConfig(common.TimeoutConfig{
		ReadHeader: 5 * time.Second,
		Read:       30 * time.Second,
		Write:      30 * time.Second,
		Idle:       120 * time.Second,
		Shutdown:   15 * time.Second,
	})
	srv := common.NewServerWithTimeouts(&http.Server{
		Addr:    listenAddress,
		Handler: mux,
	}, timeouts)

	common.RunServerWithShutdown(srv, "listing finder", timeouts.Shutdown)
}

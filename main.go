package main

import (
	"log"

	"train-booking-cli/cli"
	"train-booking-cli/config"
	"train-booking-cli/services"
	"train-booking-cli/storage"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Printf("Starting BCC Train Booking CLI")

	// Load persisted state, seeding the train schedule on first run
	store := storage.Open(cfg)

	// Wire the engine: inventory and ledger share the store, the booking
	// service orchestrates both
	inventory := services.NewInventory(store)
	ledger := services.NewLedger(store)
	bookings := services.NewBookingService(store, inventory, ledger)
	auth := services.NewAuth(store)

	cli.New(auth, bookings).Run()
}

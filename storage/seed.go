package storage

import (
	"fmt"
	"math/rand"
	"strings"

	"train-booking-cli/models"
)

var trainPrefixes = []string{"Rajdhani", "Shatabdi", "Duronto", "Garib Rath", "Superfast"}

var trainSuffixes = []string{"Express", "Special"}

var departureMinutes = []int{0, 15, 30, 45}

// SeedTrains generates the synthetic schedule: 2-6 trains for every ordered
// station pair, with times on the quarter hour, prices rounded to 10 and a
// "(D+n)" marker on arrivals past midnight.
func SeedTrains() map[string][]models.Train {
	db := make(map[string][]models.Train)

	for _, from := range models.Stations {
		for _, to := range models.Stations {
			if from == to {
				continue
			}

			routeTrains := make([]models.Train, 0, 6)
			for i := 0; i < 2+rand.Intn(5); i++ {
				depHour := rand.Intn(24)
				depMin := departureMinutes[rand.Intn(len(departureMinutes))]
				departure := fmt.Sprintf("%02d:%02d", depHour, depMin)

				travelHours := 4 + rand.Intn(25)
				arrHour := (depHour + travelHours) % 24
				arrMin := departureMinutes[rand.Intn(len(departureMinutes))]
				arrival := fmt.Sprintf("%02d:%02d", arrHour, arrMin)
				if days := (depHour + travelHours) / 24; days > 0 {
					arrival += fmt.Sprintf(" (D+%d)", days)
				}

				routeTrains = append(routeTrains, models.Train{
					ID:        fmt.Sprintf("%s%s%d", stationCode(from), stationCode(to), 100+rand.Intn(900)),
					Name:      trainPrefixes[rand.Intn(len(trainPrefixes))] + " " + trainSuffixes[rand.Intn(len(trainSuffixes))],
					Departure: departure,
					Arrival:   arrival,
					Price:     float64((300 + rand.Intn(4701)) / 10 * 10),
					Seats:     10 + rand.Intn(191),
				})
			}

			db[models.RouteKey(from, to)] = routeTrains
		}
	}

	return db
}

// stationCode returns the two-letter prefix used in generated train IDs
func stationCode(station string) string {
	return strings.ToUpper(station[:2])
}

// Package cli implements the interactive terminal frontend: menus, prompts
// and rendering. It owns all input validation and re-prompting; the service
// layer only ever sees parsed, range-checked values.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"train-booking-cli/models"
	"train-booking-cli/services"
)

// App is the terminal application. currentUser is empty while logged out.
type App struct {
	in       *bufio.Reader
	auth     *services.Auth
	bookings *services.BookingService

	currentUser string
}

// New builds the terminal app around the given services
func New(auth *services.Auth, bookings *services.BookingService) *App {
	return &App{
		in:       bufio.NewReader(os.Stdin),
		auth:     auth,
		bookings: bookings,
	}
}

// Run drives the main menu loop until the user exits
func (a *App) Run() {
	fmt.Println()
	fmt.Println("========================================")
	fmt.Println("   Welcome to the BCC Train Booking CLI")
	fmt.Println("========================================")

	for {
		if a.currentUser != "" {
			a.userMenu()
		}

		fmt.Println("\n--- Main Menu ---")
		fmt.Println("1. Register")
		fmt.Println("2. Login")
		fmt.Println("3. Exit")

		switch a.readLine("Enter your choice (1-3): ") {
		case "1":
			a.register()
		case "2":
			a.login()
		case "3":
			fmt.Println("\nThank you for using BCC Train Services!")
			return
		default:
			fmt.Println("Invalid choice. Please enter 1, 2, or 3.")
		}
	}
}

// userMenu shows the dashboard while a user is logged in
func (a *App) userMenu() {
	for a.currentUser != "" {
		fmt.Printf("\n--- %s's Dashboard ---\n", a.currentUser)
		fmt.Println("1. Search & Book Train")
		fmt.Println("2. View My Bookings")
		fmt.Println("3. Cancel or Modify a Booking")
		fmt.Println("4. Logout")

		switch a.readLine("Enter your choice (1-4): ") {
		case "1":
			a.searchAndBook()
		case "2":
			a.viewBookings()
		case "3":
			a.cancelBooking()
		case "4":
			fmt.Printf("\nLogging out %s...\n", a.currentUser)
			a.currentUser = ""
			fmt.Println("You have been logged out.")
			return
		default:
			fmt.Println("Invalid choice. Please enter 1, 2, 3, or 4.")
		}
	}
}

func (a *App) register() {
	fmt.Println("\n--- Register New User ---")
	username := a.readLine("Enter new username: ")
	if username == "" {
		fmt.Println("Username cannot be empty.")
		return
	}
	password := a.readPassword("Enter new password: ")
	confirm := a.readPassword("Confirm password: ")
	if password == "" {
		fmt.Println("Password cannot be empty.")
		return
	}
	if password != confirm {
		fmt.Println("Passwords do not match. Registration failed.")
		return
	}
	if err := a.auth.Register(username, password); err != nil {
		if errors.Is(err, services.ErrUserExists) {
			fmt.Println("Username already exists. Please try another.")
		} else {
			fmt.Printf("Registration failed: %v\n", err)
		}
		return
	}
	fmt.Printf("User '%s' registered successfully!\n", username)
}

func (a *App) login() {
	fmt.Println("\n--- User Login ---")
	username := a.readLine("Username: ")
	password := a.readPassword("Password: ")
	if err := a.auth.Authenticate(username, password); err != nil {
		fmt.Println("Invalid username or password.")
		return
	}
	a.currentUser = username
	fmt.Printf("\nWelcome, %s!\n", username)
}

// searchAndBook walks the user from route selection to a confirmed booking
func (a *App) searchAndBook() {
	fmt.Println("\n--- Search for Trains ---")

	from, ok := a.chooseStation("Select 'From' Station:")
	if !ok {
		fmt.Println("Search cancelled.")
		return
	}
	to, ok := a.chooseStation("Select 'To' Station:")
	if !ok {
		fmt.Println("Search cancelled.")
		return
	}
	if from == to {
		fmt.Println("From and To stations cannot be the same.")
		return
	}

	date, travelDate, ok := a.readTravelDate()
	if !ok {
		fmt.Println("Search cancelled.")
		return
	}

	trains := a.bookings.SearchTrains(from, to)
	if len(trains) == 0 {
		fmt.Printf("\nSorry, no trains found for %s to %s.\n", from, to)
		return
	}
	printTrains(from, to, date, trains)

	for {
		choice := a.readLine("\nEnter the number (#) of the train to book (or '0' to cancel): ")
		if choice == "0" {
			fmt.Println("Booking cancelled.")
			return
		}
		idx, err := strconv.Atoi(choice)
		if err != nil {
			fmt.Println("Invalid input. Please enter a number.")
			continue
		}
		if idx < 1 || idx > len(trains) {
			fmt.Println("Invalid train number.")
			continue
		}
		train := trains[idx-1]

		fmt.Printf("\n--- Ticket Selection (Available: %d) ---\n", train.Seats)
		counts, ok := a.readTicketCounts()
		if !ok {
			continue
		}
		total := counts.Total()
		if total == 0 {
			fmt.Println("You must book at least one ticket.")
			continue
		}
		if total > train.Seats {
			fmt.Printf("Total tickets (%d) exceeds available seats (%d).\n", total, train.Seats)
			continue
		}

		// Pricing is deterministic, so the preview shown here matches what
		// Create will record.
		pricing := services.CalculatePrice(train.Price, travelDate, counts)
		printConfirmation(train, from, to, date, pricing)

		if a.readLine("\nConfirm booking? (y/n): ") != "y" {
			fmt.Println("Booking cancelled.")
			return
		}

		booking, warnings, err := a.bookings.Create(models.BookingRequest{
			Username:   a.currentUser,
			From:       from,
			To:         to,
			TravelDate: date,
			TrainID:    train.ID,
			Counts:     counts,
		})
		if err != nil {
			fmt.Printf("Booking failed: %v\n", err)
			return
		}
		for _, w := range warnings {
			fmt.Printf("\nWarning: %s\n", w)
		}
		fmt.Println("\nBooking Confirmed!")
		fmt.Printf("Your Booking ID is: %s\n", booking.BookingID)
		fmt.Println("Thank you for booking with BCC!")
		return
	}
}

func (a *App) viewBookings() {
	fmt.Println("\n--- My Bookings ---")
	list := a.bookings.FindBookings(a.currentUser)
	if len(list) == 0 {
		fmt.Println("You have no bookings.")
		return
	}
	for i, b := range list {
		printBooking(i+1, b)
	}
}

// cancelBooking handles both partial and full cancellation of one booking
func (a *App) cancelBooking() {
	fmt.Println("\n--- Cancel or Modify a Booking ---")
	list := a.bookings.FindBookings(a.currentUser)
	if len(list) == 0 {
		fmt.Println("You have no bookings to cancel.")
		return
	}

	fmt.Println("Your current bookings:")
	for i, b := range list {
		c := b.Pricing.Counts
		fmt.Printf("\n  --- Booking #%d | ID: %s ---\n", i+1, b.BookingID)
		fmt.Printf("  Tickets Remaining: %d\n", b.TicketTotal)
		fmt.Printf("    Adults: %d | Infants: %d | Children: %d | Seniors: %d\n",
			c.Adult, c.Infant, c.Child, c.Senior)
	}
	fmt.Println("\n" + divider(80))

	for {
		choice := a.readLine(fmt.Sprintf("Enter the number (#) of the booking to modify (1-%d) (or '0' to go back): ", len(list)))
		if choice == "0" {
			fmt.Println("Modification aborted.")
			return
		}
		idx, err := strconv.Atoi(choice)
		if err != nil {
			fmt.Println("Invalid input. Please enter a number.")
			continue
		}
		if idx < 1 || idx > len(list) {
			fmt.Println("Invalid number. Please try again.")
			continue
		}
		booking := list[idx-1]
		if booking.TicketTotal == 0 {
			fmt.Println("This booking has 0 tickets remaining.")
			continue
		}

		fmt.Printf("\n--- Enter number of tickets to cancel (Current Total: %d) ---\n", booking.TicketTotal)
		cancel := a.readCancelCounts(booking.Pricing.Counts)
		total := cancel.Total()
		if total == 0 {
			fmt.Println("No seats selected for cancellation. Modification aborted.")
			return
		}

		var prompt string
		if total == booking.TicketTotal {
			prompt = fmt.Sprintf("Are you sure you want to cancel ALL %d tickets? (y/n): ", total)
		} else {
			prompt = fmt.Sprintf("Are you sure you want to cancel %d tickets? (y/n): ", total)
		}
		if a.readLine(prompt) != "y" {
			fmt.Println("Cancellation aborted.")
			return
		}

		summary, warnings, err := a.bookings.Cancel(a.currentUser, booking.BookingID, cancel)
		if err != nil {
			fmt.Printf("Cancellation failed: %v\n", err)
			return
		}
		for _, w := range warnings {
			fmt.Printf("Warning: %s\n", w)
		}
		printRefund(summary)
		return
	}
}

// readTravelDate prompts until a valid future date is entered. It returns
// the raw string, the parsed date and false when the user cancels.
func (a *App) readTravelDate() (string, time.Time, bool) {
	for {
		value := a.readLine("\nEnter Date (YYYY-MM-DD) (or 'c' to cancel): ")
		if value == "c" || value == "C" {
			return "", time.Time{}, false
		}
		d, err := services.ValidateTravelDate(value)
		if err != nil {
			fmt.Printf("%v. Please use YYYY-MM-DD and a date that is not in the past.\n", err)
			continue
		}
		return value, d, true
	}
}

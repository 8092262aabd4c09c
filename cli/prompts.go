package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"train-booking-cli/models"
)

// readLine prints a prompt and returns one trimmed input line
func (a *App) readLine(prompt string) string {
	fmt.Print(prompt)
	line, _ := a.in.ReadString('\n')
	return strings.TrimSpace(line)
}

// readPassword reads a credential without echoing it when stdin is a
// terminal. Piped input falls back to a plain line read so scripted runs
// still work.
func (a *App) readPassword(prompt string) string {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return a.readLine(prompt)
	}
	fmt.Print(prompt)
	raw, err := term.ReadPassword(fd)
	fmt.Println()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(raw))
}

// chooseStation shows the numbered station list, five per line, and returns
// the chosen name. The second return is false when the user cancels.
func (a *App) chooseStation(prompt string) (string, bool) {
	fmt.Printf("\n%s\n", prompt)
	for i, station := range models.Stations {
		sep := "\t"
		if (i+1)%5 == 0 {
			sep = "\n"
		}
		fmt.Printf("  %d. %s%s", i+1, station, sep)
	}
	fmt.Println("\n\n(Enter '0' or 'c' to cancel)")

	for {
		choice := a.readLine(fmt.Sprintf("Enter number (1-%d): ", len(models.Stations)))
		if choice == "0" || strings.EqualFold(choice, "c") {
			return "", false
		}
		n, err := strconv.Atoi(choice)
		if err != nil || n < 1 || n > len(models.Stations) {
			fmt.Println("Invalid number. Please try again.")
			continue
		}
		return models.Stations[n-1], true
	}
}

// readTicketCounts asks for all four category counts. An empty answer means
// zero; any non-numeric or negative answer aborts the selection so the user
// can pick a train again.
func (a *App) readTicketCounts() (models.TicketCounts, bool) {
	var counts models.TicketCounts
	prompts := []struct {
		label string
		dst   *int
	}{
		{"Number of Adult tickets (Full Price): ", &counts.Adult},
		{"Number of Infant tickets (0-5 yrs, FREE): ", &counts.Infant},
		{"Number of Child tickets (5-12 yrs, 50% Off): ", &counts.Child},
		{"Number of Senior Citizen tickets (30% Off): ", &counts.Senior},
	}
	for _, p := range prompts {
		n, err := a.readCount(p.label)
		if err != nil || n < 0 {
			fmt.Println("Invalid input. Please enter a valid number for each category.")
			return models.TicketCounts{}, false
		}
		*p.dst = n
	}
	return counts, true
}

// readCancelCounts asks, for each category with remaining tickets, how many
// to cancel, re-prompting until the answer is within range.
func (a *App) readCancelCounts(remaining models.TicketCounts) models.TicketCounts {
	var cancel models.TicketCounts
	prompts := []struct {
		label string
		left  int
		dst   *int
	}{
		{"Adult", remaining.Adult, &cancel.Adult},
		{"Infant (FREE)", remaining.Infant, &cancel.Infant},
		{"Child (50% Off)", remaining.Child, &cancel.Child},
		{"Senior (30% Off)", remaining.Senior, &cancel.Senior},
	}
	for _, p := range prompts {
		if p.left == 0 {
			continue
		}
		for {
			n, err := a.readCount(fmt.Sprintf("Cancel %s (Remaining: %d): ", p.label, p.left))
			if err != nil {
				fmt.Println("Invalid input. Please enter a number.")
				continue
			}
			if n < 0 || n > p.left {
				fmt.Printf("Invalid input. Must be between 0 and %d.\n", p.left)
				continue
			}
			*p.dst = n
			break
		}
	}
	return cancel
}

// readCount reads one integer answer, treating an empty line as zero
func (a *App) readCount(prompt string) (int, error) {
	answer := a.readLine(prompt)
	if answer == "" {
		return 0, nil
	}
	return strconv.Atoi(answer)
}

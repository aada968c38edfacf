package shell

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/openshelf/library-circulation-go/circulation"
	"github.com/openshelf/library-circulation-go/core"
	"github.com/openshelf/library-circulation-go/journal"
)

// Session drives one interactive console session against the desk.
type Session struct {
	desk    *circulation.Desk
	journal *journal.Journal
	in      *bufio.Reader
	out     io.Writer
	eof     bool
}

// NewSession creates a session reading commands from in and printing to out.
// The journal may be nil; the recent-activity view then reports nothing.
func NewSession(desk *circulation.Desk, j *journal.Journal, in io.Reader, out io.Writer) *Session {
	return &Session{
		desk:    desk,
		journal: j,
		in:      bufio.NewReader(in),
		out:     out,
	}
}

// Login prompts for patron ID and credential and authenticates against the
// desk. A failed login prints a message and reports false - the caller ends
// the session (normal termination, exit code 0).
func (s *Session) Login() (*core.Patron, bool) {
	fmt.Fprintln(s.out, "Login")
	patronID := s.readInt("Patron ID: ")
	fmt.Fprint(s.out, "Password: ")
	credential := s.readLine()

	patron, ok := s.desk.Authenticate(patronID, credential)
	if !ok {
		fmt.Fprintln(s.out, "Authentication failed.")
		return nil, false
	}

	fmt.Fprintf(s.out, "Welcome, %s!\n", patron.Username())

	return patron, true
}

// Run loops over the menu until the patron exits.
func (s *Session) Run(patron *core.Patron) {
	for {
		fmt.Fprintln(s.out, "\nMenu:")
		fmt.Fprintln(s.out, "1. Show all items")
		fmt.Fprintln(s.out, "2. Borrow item")
		fmt.Fprintln(s.out, "3. Return item")
		fmt.Fprintln(s.out, "4. Reserve item")
		fmt.Fprintln(s.out, "5. Show all patrons")
		fmt.Fprintln(s.out, "6. Pay fine")
		fmt.Fprintln(s.out, "7. Cancel reservation")
		fmt.Fprintln(s.out, "8. Recent activity")
		fmt.Fprintln(s.out, "0. Exit")

		switch s.readInt("Choice: ") {
		case 1:
			s.showItems()
		case 2:
			s.borrow(patron)
		case 3:
			s.returnItem(patron)
		case 4:
			s.reserve(patron)
		case 5:
			s.showPatrons()
		case 6:
			s.payFine(patron)
		case 7:
			s.cancelHold(patron)
		case 8:
			s.recentActivity()
		case 0:
			fmt.Fprintln(s.out, "Goodbye!")
			return
		default:
			fmt.Fprintln(s.out, "Invalid choice.")
		}
	}
}

func (s *Session) showItems() {
	for _, item := range s.desk.Items() {
		RenderItem(s.out, item)
	}
}

func (s *Session) showPatrons() {
	for _, patron := range s.desk.Patrons() {
		RenderPatron(s.out, patron)
	}
}

func (s *Session) borrow(patron *core.Patron) {
	itemID := s.readInt("Enter Item ID to borrow: ")
	if err := s.desk.Borrow(patron.ID(), itemID); err != nil {
		fmt.Fprintln(s.out, "Error:", err)
		return
	}
	fmt.Fprintln(s.out, "Item borrowed successfully.")
}

func (s *Session) returnItem(patron *core.Patron) {
	itemID := s.readInt("Enter Item ID to return: ")
	receipt, err := s.desk.Return(patron.ID(), itemID)
	if err != nil {
		fmt.Fprintln(s.out, "Error:", err)
		return
	}

	if receipt.Fine.IsPositive() {
		fmt.Fprintf(s.out, "Late return fine: %s\n", receipt.Fine.String())
	}
	fmt.Fprintln(s.out, "Item returned successfully.")

	if receipt.Notified {
		fmt.Fprintf(s.out, "Notification: patron %d can now borrow item %d\n", receipt.NotifiedPatronID, itemID)
	}
}

func (s *Session) reserve(patron *core.Patron) {
	itemID := s.readInt("Enter Item ID to reserve: ")
	if err := s.desk.Reserve(patron.ID(), itemID); err != nil {
		fmt.Fprintln(s.out, "Error:", err)
		return
	}
	fmt.Fprintln(s.out, "Item reserved successfully.")
}

func (s *Session) cancelHold(patron *core.Patron) {
	itemID := s.readInt("Enter Item ID to cancel reservation for: ")
	if err := s.desk.CancelHold(patron.ID(), itemID); err != nil {
		fmt.Fprintln(s.out, "Error:", err)
		return
	}
	fmt.Fprintln(s.out, "Reservation cancelled if it existed.")
}

func (s *Session) payFine(patron *core.Patron) {
	amount := s.readAmount("Amount to pay: ")
	if err := s.desk.PayFine(patron.ID(), amount); err != nil {
		fmt.Fprintln(s.out, "Error:", err)
		return
	}
	fmt.Fprintf(s.out, "Payment accepted. Outstanding fines: %s\n", patron.FineBalance().String())
}

func (s *Session) recentActivity() {
	if s.journal == nil || s.journal.Len() == 0 {
		fmt.Fprintln(s.out, "No recorded activity.")
		return
	}

	for _, entry := range s.journal.Recent(0) {
		RenderEntry(s.out, entry)
	}
}

func (s *Session) readLine() string {
	line, err := s.in.ReadString('\n')
	line = strings.TrimRight(line, "\r\n")
	if err != nil && line == "" {
		s.eof = true
	}

	return line
}

// readInt prompts until a parsable integer is entered.
// Exhausted input reads as 0, so EOF falls through to the exit paths.
func (s *Session) readInt(prompt string) int {
	for {
		fmt.Fprint(s.out, prompt)
		raw := strings.TrimSpace(s.readLine())
		if s.eof {
			return 0
		}

		n, err := strconv.Atoi(raw)
		if err != nil {
			fmt.Fprintln(s.out, "Please enter a number.")
			continue
		}

		return n
	}
}

// readAmount prompts until a parsable non-negative monetary amount is entered.
func (s *Session) readAmount(prompt string) decimal.Decimal {
	for {
		fmt.Fprint(s.out, prompt)
		raw := strings.TrimSpace(s.readLine())
		if s.eof {
			return decimal.Zero
		}

		amount, err := decimal.NewFromString(raw)
		if err != nil || amount.IsNegative() {
			fmt.Fprintln(s.out, "Please enter a non-negative amount, e.g. 12.50.")
			continue
		}

		return amount
	}
}

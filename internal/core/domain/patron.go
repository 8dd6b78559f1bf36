package domain

// Patron represents a person who can borrow and reserve items
type Patron struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Contact string `json:"contact"`
	Tier    Tier   `json:"tier"`

	// Loans and Reservations hold references shared with the ledger;
	// the patron does not own the underlying records.
	Loans        []*LoanRecord  `json:"-"`
	Reservations []*Reservation `json:"-"`
}

// NewPatron creates a patron with no loans or reservations
func NewPatron(id, name, email, contact string, tier Tier) *Patron {
	return &Patron{
		ID:      id,
		Name:    name,
		Email:   email,
		Contact: contact,
		Tier:    tier,
	}
}

// ActiveLoanCount returns the number of loans not yet returned
func (p *Patron) ActiveLoanCount() int {
	count := 0
	for _, rec := range p.Loans {
		if rec.Active() {
			count++
		}
	}
	return count
}

// AddLoan appends a loan record reference
func (p *Patron) AddLoan(rec *LoanRecord) {
	p.Loans = append(p.Loans, rec)
}

// AddReservation appends an active reservation reference
func (p *Patron) AddReservation(res *Reservation) {
	p.Reservations = append(p.Reservations, res)
}

// RemoveReservation drops the reservation reference by id
func (p *Patron) RemoveReservation(reservationID string) {
	for idx, res := range p.Reservations {
		if res.ID == reservationID {
			p.Reservations = append(p.Reservations[:idx], p.Reservations[idx+1:]...)
			return
		}
	}
}

// Librarian represents a system operator. Librarians manage the catalog
// and reports and do not borrow items, so they sit outside the patron set.
type Librarian struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Contact string `json:"contact"`
}

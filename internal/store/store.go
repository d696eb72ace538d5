// Package store defines the store record, the unit entity of the catalog.
package store

import (
	"strings"
	"unicode/utf8"
)

// WorkingHoursAllDay is the working-hours value for a store that never closes.
const WorkingHoursAllDay = "24/7"

// ShortPhoneMaxLen is the exclusive upper bound on a short phone number's length.
const ShortPhoneMaxLen = 5

// UkrainianMobilePrefix is the prefix of a Ukrainian mobile number.
const UkrainianMobilePrefix = "380"

// Store represents one business listing.
type Store struct {
	Name           string   `json:"name"`
	Address        string   `json:"address"`
	Phones         []string `json:"phones"` // Insertion order, duplicates allowed
	Specialization string   `json:"specialization"`
	WorkingHours   string   `json:"working_hours"`
}

// New creates a store with no phone numbers.
func New(name, address, specialization, workingHours string) Store {
	return Store{
		Name:           name,
		Address:        address,
		Phones:         []string{},
		Specialization: specialization,
		WorkingHours:   workingHours,
	}
}

// AddPhone appends a phone number.
func (s *Store) AddPhone(phone string) {
	s.Phones = append(s.Phones, phone)
}

// WorksEverydayWithoutBreak reports whether the store is open 24/7.
func (s Store) WorksEverydayWithoutBreak() bool {
	return strings.EqualFold(s.WorkingHours, WorkingHoursAllDay)
}

// HasShortPhoneNumber reports whether any phone number has fewer than
// ShortPhoneMaxLen characters.
func (s Store) HasShortPhoneNumber() bool {
	for _, phone := range s.Phones {
		if utf8.RuneCountInString(phone) < ShortPhoneMaxLen {
			return true
		}
	}
	return false
}

// HasUkrainianMobileNumber reports whether any phone number starts with 380.
func (s Store) HasUkrainianMobileNumber() bool {
	for _, phone := range s.Phones {
		if strings.HasPrefix(phone, UkrainianMobilePrefix) {
			return true
		}
	}
	return false
}

// City returns the sort key derived from the address: everything before the
// first space, or the whole address if it has none.
func (s Store) City() string {
	city, _, _ := strings.Cut(s.Address, " ")
	return city
}

// String renders the store on a single line.
func (s Store) String() string {
	var sb strings.Builder
	sb.WriteString("Store{name='")
	sb.WriteString(s.Name)
	sb.WriteString("', address='")
	sb.WriteString(s.Address)
	sb.WriteString("', phones=[")
	sb.WriteString(strings.Join(s.Phones, ", "))
	sb.WriteString("], specialization='")
	sb.WriteString(s.Specialization)
	sb.WriteString("', workingHours='")
	sb.WriteString(s.WorkingHours)
	sb.WriteString("'}")
	return sb.String()
}
